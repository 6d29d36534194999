package binance

import (
	"net/http"
	"time"

	"nakula/pkg/core"
)

// OrderBook is the request builder for order book snapshots.
type OrderBook struct {
	*ParamBuilder
}

// Limit caps the number of levels returned. Default 100; max 5000.
func (b OrderBook) Limit(n int) OrderBook {
	b.params.Limit = &n
	return b
}

// OrderBook fetches the order book for a symbol.
func (c *MarketDataClient) OrderBook(symbol string) OrderBook {
	b := c.builder(http.MethodGet, "/api/v3/depth")
	b.params.Symbol = &symbol
	return OrderBook{b}
}

// Trades is the request builder for recent trades.
type Trades struct {
	*ParamBuilder
}

// Limit caps the number of trades returned. Default 500; max 1000.
func (b Trades) Limit(n int) Trades {
	b.params.Limit = &n
	return b
}

// Trades fetches recent trades for a symbol.
func (c *MarketDataClient) Trades(symbol string) Trades {
	b := c.builder(http.MethodGet, "/api/v3/trades")
	b.params.Symbol = &symbol
	return Trades{b}
}

// HistoricalTrades is the request builder for older trades.
type HistoricalTrades struct {
	*ParamBuilder
}

// FromID sets the trade id to fetch from. Defaults to the most recent trades.
func (b HistoricalTrades) FromID(id int64) HistoricalTrades {
	b.params.FromID = &id
	return b
}

// Limit caps the number of trades returned. Default 500; max 1000.
func (b HistoricalTrades) Limit(n int) HistoricalTrades {
	b.params.Limit = &n
	return b
}

// HistoricalTrades fetches older trades for a symbol.
func (c *MarketDataClient) HistoricalTrades(symbol string) HistoricalTrades {
	b := c.builder(http.MethodGet, "/api/v3/historicalTrades")
	b.params.Symbol = &symbol
	return HistoricalTrades{b}
}

// AggTrades is the request builder for compressed, aggregate trades.
type AggTrades struct {
	*ParamBuilder
}

// FromID filters by aggregate trade ids greater than or equal to id.
func (b AggTrades) FromID(id int64) AggTrades {
	b.params.FromID = &id
	return b
}

// StartTime bounds the window from below.
func (b AggTrades) StartTime(t time.Time) AggTrades {
	ms := t.UnixMilli()
	b.params.StartTime = &ms
	return b
}

// EndTime bounds the window from above.
func (b AggTrades) EndTime(t time.Time) AggTrades {
	ms := t.UnixMilli()
	b.params.EndTime = &ms
	return b
}

// Limit caps the number of aggregate trades returned. Default 500; max 1000.
func (b AggTrades) Limit(n int) AggTrades {
	b.params.Limit = &n
	return b
}

// AggTrades fetches aggregate trades for a symbol. Trades that fill at the
// same time, from the same order, at the same price are merged.
func (c *MarketDataClient) AggTrades(symbol string) AggTrades {
	b := c.builder(http.MethodGet, "/api/v3/aggTrades")
	b.params.Symbol = &symbol
	return AggTrades{b}
}

// Klines is the request builder for candlestick bars.
type Klines struct {
	*ParamBuilder
}

// StartTime bounds the window from below.
func (b Klines) StartTime(t time.Time) Klines {
	ms := t.UnixMilli()
	b.params.StartTime = &ms
	return b
}

// EndTime bounds the window from above.
func (b Klines) EndTime(t time.Time) Klines {
	ms := t.UnixMilli()
	b.params.EndTime = &ms
	return b
}

// Limit caps the number of klines returned. Default 500; max 1000.
func (b Klines) Limit(n int) Klines {
	b.params.Limit = &n
	return b
}

// Klines fetches candlestick bars for a symbol. Klines are uniquely
// identified by their open time.
func (c *MarketDataClient) Klines(symbol string, interval core.Interval) Klines {
	b := c.builder(http.MethodGet, "/api/v3/klines")
	b.params.Symbol = &symbol
	b.params.Interval = &interval
	return Klines{b}
}

// AvgPrice is the request builder for the current average price.
type AvgPrice struct {
	*ParamBuilder
}

// AvgPrice fetches the current average price for a symbol.
func (c *MarketDataClient) AvgPrice(symbol string) AvgPrice {
	b := c.builder(http.MethodGet, "/api/v3/avgPrice")
	b.params.Symbol = &symbol
	return AvgPrice{b}
}

// Ticker24h is the request builder for 24 hour rolling window statistics.
type Ticker24h struct {
	*ParamBuilder
}

// Symbol filters by symbol. All symbols are returned by default, which is
// a heavy request.
func (b Ticker24h) Symbol(symbol string) Ticker24h {
	b.params.Symbol = &symbol
	return b
}

// Ticker24h fetches 24 hour rolling window price change statistics.
func (c *MarketDataClient) Ticker24h() Ticker24h {
	return Ticker24h{c.builder(http.MethodGet, "/api/v3/ticker/24hr")}
}

// TickerPrice is the request builder for latest prices.
type TickerPrice struct {
	*ParamBuilder
}

// Symbol filters by symbol. All symbols are returned by default.
func (b TickerPrice) Symbol(symbol string) TickerPrice {
	b.params.Symbol = &symbol
	return b
}

// TickerPrice fetches the latest price for a symbol or all symbols.
func (c *MarketDataClient) TickerPrice() TickerPrice {
	return TickerPrice{c.builder(http.MethodGet, "/api/v3/ticker/price")}
}

// BookTicker is the request builder for best book prices.
type BookTicker struct {
	*ParamBuilder
}

// Symbol filters by symbol. All symbols are returned by default.
func (b BookTicker) Symbol(symbol string) BookTicker {
	b.params.Symbol = &symbol
	return b
}

// BookTicker fetches the best bid/ask price and quantity on the order book.
func (c *MarketDataClient) BookTicker() BookTicker {
	return BookTicker{c.builder(http.MethodGet, "/api/v3/ticker/bookTicker")}
}

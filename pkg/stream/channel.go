package stream

import (
	"strings"

	"nakula/pkg/core"
)

// Level is the number of order book levels in a partial depth stream.
type Level int

// Partial depth levels supported by the exchange.
const (
	Five Level = iota
	Ten
	Twenty
)

// String returns the wire representation of the level.
func (l Level) String() string {
	return [...]string{"5", "10", "20"}[l]
}

// Speed is the update interval of a depth stream.
type Speed int

// Depth stream update speeds supported by the exchange.
const (
	HundredMillis Speed = iota
	ThousandMillis
)

// String returns the wire representation of the speed.
func (s Speed) String() string {
	return [...]string{"100ms", "1000ms"}[s]
}

// Channel is one exchange data stream, addressable by its topic string.
// The set of channels is closed: values are built only through the
// constructors below. Rendering is deterministic, so the topic doubles as
// the comparison key against the "stream" field of incoming frames.
type Channel struct {
	topic string
}

// Topic returns the lowercase wire topic, e.g. "bnbusdt@kline_1m".
func (c Channel) Topic() string {
	return c.topic
}

// String returns the topic.
func (c Channel) String() string {
	return c.topic
}

// Matches reports whether stream names this channel.
func (c Channel) Matches(stream string) bool {
	return c.topic == stream
}

// AggTrade streams compressed trades for a symbol.
func AggTrade(symbol string) Channel {
	return Channel{strings.ToLower(symbol) + "@aggTrade"}
}

// Trade streams raw trades for a symbol.
func Trade(symbol string) Channel {
	return Channel{strings.ToLower(symbol) + "@trade"}
}

// Kline streams candlesticks for a symbol at an interval.
func Kline(symbol string, interval core.Interval) Channel {
	return Channel{strings.ToLower(symbol) + "@kline_" + interval.String()}
}

// MiniTicker streams the abbreviated 24h ticker for a symbol.
func MiniTicker(symbol string) Channel {
	return Channel{strings.ToLower(symbol) + "@miniTicker"}
}

// Ticker streams the full 24h ticker for a symbol.
func Ticker(symbol string) Channel {
	return Channel{strings.ToLower(symbol) + "@ticker"}
}

// BookTicker streams best bid/ask updates for a symbol.
func BookTicker(symbol string) Channel {
	return Channel{strings.ToLower(symbol) + "@bookTicker"}
}

// Depth streams order book diffs for a symbol at the given speed.
func Depth(symbol string, speed Speed) Channel {
	return Channel{strings.ToLower(symbol) + "@depth@" + speed.String()}
}

// PartialDepth streams top-of-book snapshots for a symbol at the given
// level and speed.
func PartialDepth(symbol string, level Level, speed Speed) Channel {
	return Channel{strings.ToLower(symbol) + "@depth" + level.String() + "@" + speed.String()}
}

// UserData streams private user-data events. It is the only channel
// addressed by a listen key instead of a symbol; the key is the topic.
func UserData(listenKey string) Channel {
	return Channel{listenKey}
}

// Symbol-less aggregate streams.
var (
	// AllMiniTickers streams abbreviated tickers for every symbol.
	AllMiniTickers = Channel{"!miniTicker@arr"}
	// AllTickers streams full tickers for every symbol.
	AllTickers = Channel{"!ticker@arr"}
	// AllBookTickers streams best bid/ask updates for every symbol.
	AllBookTickers = Channel{"!bookTicker"}
)

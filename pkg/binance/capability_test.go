package binance

import (
	"reflect"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nakula/pkg/core"
)

// Methods promoted from the embedded dispatch builder, present on every
// endpoint type.
var dispatchMethods = []string{"JSON", "Response", "Text"}

func methodNames(v any) []string {
	t := reflect.TypeOf(v)
	names := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		names = append(names, t.Method(i).Name)
	}
	sort.Strings(names)
	return names
}

// Each endpoint type must expose exactly the setters its endpoint accepts,
// nothing more. Fields outside the set are unreachable at compile time; this
// pins the exported surface so a refactor cannot widen it silently.
func TestEndpointMethodSets(t *testing.T) {
	market, err := NewMarketDataClient("k", BaseURL)
	require.NoError(t, err)
	account, err := NewAccountClient("k", "s", BaseURL)
	require.NoError(t, err)
	general, err := NewGeneralClient(BaseURL)
	require.NoError(t, err)
	withdraw, err := NewWithdrawClient("k", "s", BaseURL)
	require.NoError(t, err)
	userData, err := NewUserDataClient("k", BaseURL)
	require.NoError(t, err)

	tests := []struct {
		name    string
		builder any
		setters []string
	}{
		{"Ping", general.Ping(), nil},
		{"ServerTime", general.ServerTime(), nil},
		{"ExchangeInfo", general.ExchangeInfo(), nil},

		{"OrderBook", market.OrderBook("BNBUSDT"), []string{"Limit"}},
		{"Trades", market.Trades("BNBUSDT"), []string{"Limit"}},
		{"HistoricalTrades", market.HistoricalTrades("BNBUSDT"), []string{"FromID", "Limit"}},
		{"AggTrades", market.AggTrades("BNBUSDT"), []string{"EndTime", "FromID", "Limit", "StartTime"}},
		{"Klines", market.Klines("BNBUSDT", core.OneMinute), []string{"EndTime", "Limit", "StartTime"}},
		{"AvgPrice", market.AvgPrice("BNBUSDT"), nil},
		{"Ticker24h", market.Ticker24h(), []string{"Symbol"}},
		{"TickerPrice", market.TickerPrice(), []string{"Symbol"}},
		{"BookTicker", market.BookTicker(), []string{"Symbol"}},

		{"LimitOrder", account.LimitOrder("BNBUSDT", core.SideBuy, 1, 1, true), []string{
			"IcebergQty", "LimitMaker", "NewClientOrderID", "RecvWindow", "ResponseType",
			"StopLoss", "StopLossLimit", "TakeProfit", "TakeProfitLimit", "TimeInForce",
		}},
		{"MarketOrder", account.MarketOrder("BNBUSDT", core.SideBuy, 1, true), []string{
			"NewClientOrderID", "RecvWindow", "ResponseType",
		}},
		{"OrderStatus", account.OrderStatus("BNBUSDT", OrderID(1)), []string{"RecvWindow"}},
		{"CancelOrder", account.CancelOrder("BNBUSDT", OrderID(1)), []string{"NewClientOrderID", "RecvWindow"}},
		{"OpenOrders", account.OpenOrders(), []string{"RecvWindow", "Symbol"}},
		{"AllOrders", account.AllOrders("BNBUSDT"), []string{"EndTime", "FromOrderID", "Limit", "RecvWindow", "StartTime"}},
		{"OCO", account.OCO("BNBUSDT", core.SideSell, 2, 1, 1), []string{
			"LimitClientOrderID", "LimitIcebergQty", "ListClientOrderID", "RecvWindow",
			"ResponseType", "StopClientOrderID", "StopIcebergQty", "StopLimitPrice",
		}},
		{"CancelOCO", account.CancelOCO("BNBUSDT", OrderID(1)), []string{"NewClientOrderID", "RecvWindow"}},
		{"OCOStatus", account.OCOStatus(OrderID(1)), []string{"RecvWindow"}},
		{"AllOCO", account.AllOCO(), []string{"EndTime", "FromID", "Limit", "RecvWindow", "StartTime"}},
		{"OpenOCO", account.OpenOCO(), []string{"RecvWindow"}},
		{"Account", account.Account(), []string{"RecvWindow"}},
		{"AccountTrades", account.AccountTrades("BNBUSDT"), []string{"EndTime", "FromID", "Limit", "RecvWindow", "StartTime"}},

		{"StartStream", userData.StartStream(), nil},
		{"KeepAlive", userData.KeepAlive("key"), nil},
		{"CloseStream", userData.CloseStream("key"), nil},

		{"Withdraw", withdraw.Withdraw("BTC", "addr", 0.1), []string{"AddressTag", "Name", "RecvWindow"}},
		{"DepositHistory", withdraw.DepositHistory(), []string{"Asset", "EndTime", "RecvWindow", "StartTime", "Status"}},
		{"WithdrawHistory", withdraw.WithdrawHistory(), []string{"Asset", "EndTime", "Page", "RecvWindow", "StartTime", "Status"}},
		{"DepositAddress", withdraw.DepositAddress("BTC"), []string{"RecvWindow"}},
		{"AccountStatus", withdraw.AccountStatus(), []string{"RecvWindow"}},
		{"SystemStatus", withdraw.SystemStatus(), nil},
		{"TradeFee", withdraw.TradeFee(), []string{"RecvWindow", "Symbol"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := append([]string{}, dispatchMethods...)
			want = append(want, tt.setters...)
			sort.Strings(want)
			assert.Equal(t, want, methodNames(tt.builder))
		})
	}
}

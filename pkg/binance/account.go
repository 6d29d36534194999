package binance

import (
	"net/http"
	"time"

	"nakula/pkg/core"
)

// ID identifies an order either by the exchange-assigned order id or by the
// client-assigned order id. Exactly one of the two is set.
type ID struct {
	orderID  *int64
	clientID *string
}

// OrderID identifies an order by its exchange-assigned id.
func OrderID(id int64) ID {
	return ID{orderID: &id}
}

// ClientOrderID identifies an order by its client-assigned id.
func ClientOrderID(id string) ID {
	return ID{clientID: &id}
}

func orderPath(execute bool) string {
	if execute {
		return "/api/v3/order"
	}
	return "/api/v3/order/test"
}

// LimitOrder is the request builder for limit orders. The order type is
// preset to LIMIT with GTC time in force; the stop variants below rewrite
// the type together with the stop price, since the two travel together on
// the wire.
type LimitOrder struct {
	*ParamBuilder
}

// TimeInForce overrides the default GTC time in force.
func (b LimitOrder) TimeInForce(tif core.TimeInForce) LimitOrder {
	b.params.TimeInForce = &tif
	return b
}

// IcebergQty hides part of the order quantity. An iceberg order must be
// good-til-canceled, so this also forces GTC.
func (b LimitOrder) IcebergQty(qty float64) LimitOrder {
	gtc := core.GTC
	b.params.IcebergQty = &qty
	b.params.TimeInForce = &gtc
	return b
}

// NewClientOrderID sets a caller-chosen id for the order.
func (b LimitOrder) NewClientOrderID(id string) LimitOrder {
	b.params.NewClientOrderID = &id
	return b
}

// StopLoss converts the order to STOP_LOSS at the given stop price.
func (b LimitOrder) StopLoss(stopPrice float64) LimitOrder {
	t := core.TypeStopLoss
	b.params.OrderType = &t
	b.params.StopPrice = &stopPrice
	return b
}

// StopLossLimit converts the order to STOP_LOSS_LIMIT at the given stop price.
func (b LimitOrder) StopLossLimit(stopPrice float64) LimitOrder {
	t := core.TypeStopLossLimit
	b.params.OrderType = &t
	b.params.StopPrice = &stopPrice
	return b
}

// TakeProfit converts the order to TAKE_PROFIT at the given stop price.
func (b LimitOrder) TakeProfit(stopPrice float64) LimitOrder {
	t := core.TypeTakeProfit
	b.params.OrderType = &t
	b.params.StopPrice = &stopPrice
	return b
}

// TakeProfitLimit converts the order to TAKE_PROFIT_LIMIT at the given stop price.
func (b LimitOrder) TakeProfitLimit(stopPrice float64) LimitOrder {
	t := core.TypeTakeProfitLimit
	b.params.OrderType = &t
	b.params.StopPrice = &stopPrice
	return b
}

// LimitMaker converts the order to LIMIT_MAKER.
func (b LimitOrder) LimitMaker() LimitOrder {
	t := core.TypeLimitMaker
	b.params.OrderType = &t
	return b
}

// ResponseType selects the order placement response verbosity.
func (b LimitOrder) ResponseType(rt core.ResponseType) LimitOrder {
	b.params.NewOrderRespType = &rt
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b LimitOrder) RecvWindow(ms int) LimitOrder {
	b.params.RecvWindow = &ms
	return b
}

// LimitOrder places a limit order. With execute false the order goes to the
// test endpoint and is validated but not placed.
func (c *AccountClient) LimitOrder(symbol string, side core.OrderSide, price, quantity float64, execute bool) LimitOrder {
	b := c.builder(http.MethodPost, orderPath(execute))
	b.sign = true
	t := core.TypeLimit
	tif := core.GTC
	b.params.Symbol = &symbol
	b.params.Side = &side
	b.params.OrderType = &t
	b.params.Price = &price
	b.params.Quantity = &quantity
	b.params.TimeInForce = &tif
	return LimitOrder{b}
}

// MarketOrder is the request builder for market orders.
type MarketOrder struct {
	*ParamBuilder
}

// NewClientOrderID sets a caller-chosen id for the order.
func (b MarketOrder) NewClientOrderID(id string) MarketOrder {
	b.params.NewClientOrderID = &id
	return b
}

// ResponseType selects the order placement response verbosity.
func (b MarketOrder) ResponseType(rt core.ResponseType) MarketOrder {
	b.params.NewOrderRespType = &rt
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b MarketOrder) RecvWindow(ms int) MarketOrder {
	b.params.RecvWindow = &ms
	return b
}

// MarketOrder places a market order. With execute false the order goes to
// the test endpoint and is validated but not placed.
func (c *AccountClient) MarketOrder(symbol string, side core.OrderSide, quantity float64, execute bool) MarketOrder {
	b := c.builder(http.MethodPost, orderPath(execute))
	b.sign = true
	t := core.TypeMarket
	b.params.Symbol = &symbol
	b.params.Side = &side
	b.params.OrderType = &t
	b.params.Quantity = &quantity
	return MarketOrder{b}
}

// OrderStatus is the request builder for order status queries.
type OrderStatus struct {
	*ParamBuilder
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b OrderStatus) RecvWindow(ms int) OrderStatus {
	b.params.RecvWindow = &ms
	return b
}

// OrderStatus checks an order's status.
func (c *AccountClient) OrderStatus(symbol string, id ID) OrderStatus {
	b := c.builder(http.MethodGet, "/api/v3/order")
	b.sign = true
	b.params.Symbol = &symbol
	b.params.OrderID = id.orderID
	b.params.OrigClientOrderID = id.clientID
	return OrderStatus{b}
}

// CancelOrder is the request builder for order cancellation.
type CancelOrder struct {
	*ParamBuilder
}

// NewClientOrderID sets a caller-chosen id for the cancel itself.
func (b CancelOrder) NewClientOrderID(id string) CancelOrder {
	b.params.NewClientOrderID = &id
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b CancelOrder) RecvWindow(ms int) CancelOrder {
	b.params.RecvWindow = &ms
	return b
}

// CancelOrder cancels an active order.
func (c *AccountClient) CancelOrder(symbol string, id ID) CancelOrder {
	b := c.builder(http.MethodDelete, "/api/v3/order")
	b.sign = true
	b.params.Symbol = &symbol
	b.params.OrderID = id.orderID
	b.params.OrigClientOrderID = id.clientID
	return CancelOrder{b}
}

// OpenOrders is the request builder for open order listings.
type OpenOrders struct {
	*ParamBuilder
}

// Symbol filters by symbol. All symbols are returned by default, which is
// a heavy request.
func (b OpenOrders) Symbol(symbol string) OpenOrders {
	b.params.Symbol = &symbol
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b OpenOrders) RecvWindow(ms int) OpenOrders {
	b.params.RecvWindow = &ms
	return b
}

// OpenOrders lists open orders.
func (c *AccountClient) OpenOrders() OpenOrders {
	b := c.builder(http.MethodGet, "/api/v3/openOrders")
	b.sign = true
	return OpenOrders{b}
}

// AllOrders is the request builder for the full order history of a symbol.
type AllOrders struct {
	*ParamBuilder
}

// FromOrderID starts the listing at the given order id.
func (b AllOrders) FromOrderID(id int64) AllOrders {
	b.params.OrderID = &id
	return b
}

// StartTime bounds the window from below.
func (b AllOrders) StartTime(t time.Time) AllOrders {
	ms := t.UnixMilli()
	b.params.StartTime = &ms
	return b
}

// EndTime bounds the window from above.
func (b AllOrders) EndTime(t time.Time) AllOrders {
	ms := t.UnixMilli()
	b.params.EndTime = &ms
	return b
}

// Limit caps the number of orders returned. Default 500; max 1000.
func (b AllOrders) Limit(n int) AllOrders {
	b.params.Limit = &n
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b AllOrders) RecvWindow(ms int) AllOrders {
	b.params.RecvWindow = &ms
	return b
}

// AllOrders lists all orders for a symbol: active, canceled, and filled.
func (c *AccountClient) AllOrders(symbol string) AllOrders {
	b := c.builder(http.MethodGet, "/api/v3/allOrders")
	b.sign = true
	b.params.Symbol = &symbol
	return AllOrders{b}
}

// OCO is the request builder for one-cancels-the-other order lists.
type OCO struct {
	*ParamBuilder
}

// ListClientOrderID sets a caller-chosen id for the whole order list.
func (b OCO) ListClientOrderID(id string) OCO {
	b.params.ListClientOrderID = &id
	return b
}

// LimitClientOrderID sets a caller-chosen id for the limit leg.
func (b OCO) LimitClientOrderID(id string) OCO {
	b.params.LimitClientOrderID = &id
	return b
}

// StopClientOrderID sets a caller-chosen id for the stop leg.
func (b OCO) StopClientOrderID(id string) OCO {
	b.params.StopClientOrderID = &id
	return b
}

// LimitIcebergQty hides part of the limit leg quantity.
func (b OCO) LimitIcebergQty(qty float64) OCO {
	b.params.LimitIcebergQty = &qty
	return b
}

// StopIcebergQty hides part of the stop leg quantity.
func (b OCO) StopIcebergQty(qty float64) OCO {
	b.params.StopIcebergQty = &qty
	return b
}

// StopLimitPrice turns the stop leg into a stop-limit. The exchange requires
// a time in force alongside the stop limit price, so the two are set together.
func (b OCO) StopLimitPrice(price float64, tif core.TimeInForce) OCO {
	b.params.StopLimitPrice = &price
	b.params.StopLimitTimeInForce = &tif
	return b
}

// ResponseType selects the order placement response verbosity.
func (b OCO) ResponseType(rt core.ResponseType) OCO {
	b.params.NewOrderRespType = &rt
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b OCO) RecvWindow(ms int) OCO {
	b.params.RecvWindow = &ms
	return b
}

// OCO places a one-cancels-the-other order list.
func (c *AccountClient) OCO(symbol string, side core.OrderSide, price, stopPrice, quantity float64) OCO {
	b := c.builder(http.MethodPost, "/api/v3/order/oco")
	b.sign = true
	b.params.Symbol = &symbol
	b.params.Side = &side
	b.params.Price = &price
	b.params.StopPrice = &stopPrice
	b.params.Quantity = &quantity
	return OCO{b}
}

// CancelOCO is the request builder for canceling an order list.
type CancelOCO struct {
	*ParamBuilder
}

// NewClientOrderID sets a caller-chosen id for the cancel itself.
func (b CancelOCO) NewClientOrderID(id string) CancelOCO {
	b.params.NewClientOrderID = &id
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b CancelOCO) RecvWindow(ms int) CancelOCO {
	b.params.RecvWindow = &ms
	return b
}

// CancelOCO cancels an entire order list. The ID addresses the list: an
// order id maps to orderListId, a client id to listClientOrderId.
func (c *AccountClient) CancelOCO(symbol string, id ID) CancelOCO {
	b := c.builder(http.MethodDelete, "/api/v3/orderList")
	b.sign = true
	b.params.Symbol = &symbol
	b.params.OrderListID = id.orderID
	b.params.ListClientOrderID = id.clientID
	return CancelOCO{b}
}

// OCOStatus is the request builder for order list status queries.
type OCOStatus struct {
	*ParamBuilder
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b OCOStatus) RecvWindow(ms int) OCOStatus {
	b.params.RecvWindow = &ms
	return b
}

// OCOStatus retrieves a specific order list.
func (c *AccountClient) OCOStatus(id ID) OCOStatus {
	b := c.builder(http.MethodGet, "/api/v3/orderList")
	b.sign = true
	b.params.OrderListID = id.orderID
	b.params.OrigClientOrderID = id.clientID
	return OCOStatus{b}
}

// AllOCO is the request builder for order list history.
type AllOCO struct {
	*ParamBuilder
}

// FromID starts the listing at the given order list id.
func (b AllOCO) FromID(id int64) AllOCO {
	b.params.FromID = &id
	return b
}

// StartTime bounds the window from below.
func (b AllOCO) StartTime(t time.Time) AllOCO {
	ms := t.UnixMilli()
	b.params.StartTime = &ms
	return b
}

// EndTime bounds the window from above.
func (b AllOCO) EndTime(t time.Time) AllOCO {
	ms := t.UnixMilli()
	b.params.EndTime = &ms
	return b
}

// Limit caps the number of order lists returned. Default 500; max 1000.
func (b AllOCO) Limit(n int) AllOCO {
	b.params.Limit = &n
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b AllOCO) RecvWindow(ms int) AllOCO {
	b.params.RecvWindow = &ms
	return b
}

// AllOCO lists all order lists.
func (c *AccountClient) AllOCO() AllOCO {
	b := c.builder(http.MethodGet, "/api/v3/allOrderList")
	b.sign = true
	return AllOCO{b}
}

// OpenOCO is the request builder for open order lists.
type OpenOCO struct {
	*ParamBuilder
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b OpenOCO) RecvWindow(ms int) OpenOCO {
	b.params.RecvWindow = &ms
	return b
}

// OpenOCO lists open order lists.
func (c *AccountClient) OpenOCO() OpenOCO {
	b := c.builder(http.MethodGet, "/api/v3/openOrderList")
	b.sign = true
	return OpenOCO{b}
}

// Account is the request builder for account information.
type Account struct {
	*ParamBuilder
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b Account) RecvWindow(ms int) Account {
	b.params.RecvWindow = &ms
	return b
}

// Account fetches current account information, including balances.
func (c *AccountClient) Account() Account {
	b := c.builder(http.MethodGet, "/api/v3/account")
	b.sign = true
	return Account{b}
}

// AccountTrades is the request builder for the account trade list.
type AccountTrades struct {
	*ParamBuilder
}

// FromID starts the listing at the given trade id.
func (b AccountTrades) FromID(id int64) AccountTrades {
	b.params.FromID = &id
	return b
}

// StartTime bounds the window from below.
func (b AccountTrades) StartTime(t time.Time) AccountTrades {
	ms := t.UnixMilli()
	b.params.StartTime = &ms
	return b
}

// EndTime bounds the window from above.
func (b AccountTrades) EndTime(t time.Time) AccountTrades {
	ms := t.UnixMilli()
	b.params.EndTime = &ms
	return b
}

// Limit caps the number of trades returned. Default 500; max 1000.
func (b AccountTrades) Limit(n int) AccountTrades {
	b.params.Limit = &n
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b AccountTrades) RecvWindow(ms int) AccountTrades {
	b.params.RecvWindow = &ms
	return b
}

// AccountTrades lists trades for a symbol on this account.
func (c *AccountClient) AccountTrades(symbol string) AccountTrades {
	b := c.builder(http.MethodGet, "/api/v3/myTrades")
	b.sign = true
	b.params.Symbol = &symbol
	return AccountTrades{b}
}

package binance

import "github.com/cockroachdb/apd/v3"

// Typed response models for the endpoints with stable shapes. Prices and
// quantities arrive as decimal strings and are decoded into apd.Decimal;
// they are never parsed through float64.

// ServerTimeResponse is the reply from the server time endpoint.
type ServerTimeResponse struct {
	ServerTime int64 `json:"serverTime"`
}

// OrderAck is the minimal reply to a placed order (newOrderRespType ACK).
type OrderAck struct {
	Symbol        string `json:"symbol"`
	OrderID       int64  `json:"orderId"`
	OrderListID   int64  `json:"orderListId"`
	ClientOrderID string `json:"clientOrderId"`
	TransactTime  int64  `json:"transactTime"`
}

// OrderResult is the full order reply (newOrderRespType RESULT or FULL,
// and the order status endpoint).
type OrderResult struct {
	Symbol        string      `json:"symbol"`
	OrderID       int64       `json:"orderId"`
	OrderListID   int64       `json:"orderListId"`
	ClientOrderID string      `json:"clientOrderId"`
	TransactTime  int64       `json:"transactTime,omitempty"`
	Price         apd.Decimal `json:"price"`
	OrigQty       apd.Decimal `json:"origQty"`
	ExecutedQty   apd.Decimal `json:"executedQty"`
	Status        string      `json:"status"`
	TimeInForce   string      `json:"timeInForce"`
	Type          string      `json:"type"`
	Side          string      `json:"side"`
	Fills         []Fill      `json:"fills,omitempty"`
}

// Fill is one execution of a placed order (newOrderRespType FULL).
type Fill struct {
	Price           apd.Decimal `json:"price"`
	Qty             apd.Decimal `json:"qty"`
	Commission      apd.Decimal `json:"commission"`
	CommissionAsset string      `json:"commissionAsset"`
}

// PriceTicker is one symbol's latest price.
type PriceTicker struct {
	Symbol string      `json:"symbol"`
	Price  apd.Decimal `json:"price"`
}

// BookTickerEntry is the best bid/ask for one symbol.
type BookTickerEntry struct {
	Symbol   string      `json:"symbol"`
	BidPrice apd.Decimal `json:"bidPrice"`
	BidQty   apd.Decimal `json:"bidQty"`
	AskPrice apd.Decimal `json:"askPrice"`
	AskQty   apd.Decimal `json:"askQty"`
}

// AvgPriceResponse is the current average price for a symbol.
type AvgPriceResponse struct {
	Mins  int         `json:"mins"`
	Price apd.Decimal `json:"price"`
}

// Balance is one asset's balance on the account endpoint.
type Balance struct {
	Asset  string      `json:"asset"`
	Free   apd.Decimal `json:"free"`
	Locked apd.Decimal `json:"locked"`
}

// AccountInfo is the reply from the account endpoint.
type AccountInfo struct {
	MakerCommission  int64     `json:"makerCommission"`
	TakerCommission  int64     `json:"takerCommission"`
	BuyerCommission  int64     `json:"buyerCommission"`
	SellerCommission int64     `json:"sellerCommission"`
	CanTrade         bool      `json:"canTrade"`
	CanWithdraw      bool      `json:"canWithdraw"`
	CanDeposit       bool      `json:"canDeposit"`
	UpdateTime       int64     `json:"updateTime"`
	AccountType      string    `json:"accountType"`
	Balances         []Balance `json:"balances"`
}

// ListenKeyResponse is the reply from the user-data stream start endpoint.
type ListenKeyResponse struct {
	ListenKey string `json:"listenKey"`
}

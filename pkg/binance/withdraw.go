package binance

import (
	"net/http"
	"time"
)

// Withdraw is the request builder for asset withdrawals.
type Withdraw struct {
	*ParamBuilder
}

// AddressTag sets the secondary address identifier required by some assets
// (XRP, XMR, EOS and similar).
func (b Withdraw) AddressTag(tag string) Withdraw {
	b.params.AddressTag = &tag
	return b
}

// Name sets a description for the withdrawal address.
func (b Withdraw) Name(name string) Withdraw {
	b.params.Name = &name
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b Withdraw) RecvWindow(ms int) Withdraw {
	b.params.RecvWindow = &ms
	return b
}

// Withdraw submits a withdrawal of amount of asset to address.
func (c *WithdrawClient) Withdraw(asset, address string, amount float64) Withdraw {
	b := c.builder(http.MethodPost, "/wapi/v3/withdraw.html")
	b.sign = true
	b.params.Asset = &asset
	b.params.Address = &address
	b.params.Amount = &amount
	return Withdraw{b}
}

// DepositHistory is the request builder for the deposit history.
type DepositHistory struct {
	*ParamBuilder
}

// Asset filters by asset.
func (b DepositHistory) Asset(asset string) DepositHistory {
	b.params.Asset = &asset
	return b
}

// Status filters by deposit status (0 pending, 1 success).
func (b DepositHistory) Status(status int) DepositHistory {
	b.params.Status = &status
	return b
}

// StartTime bounds the window from below.
func (b DepositHistory) StartTime(t time.Time) DepositHistory {
	ms := t.UnixMilli()
	b.params.StartTime = &ms
	return b
}

// EndTime bounds the window from above.
func (b DepositHistory) EndTime(t time.Time) DepositHistory {
	ms := t.UnixMilli()
	b.params.EndTime = &ms
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b DepositHistory) RecvWindow(ms int) DepositHistory {
	b.params.RecvWindow = &ms
	return b
}

// DepositHistory fetches the deposit history.
func (c *WithdrawClient) DepositHistory() DepositHistory {
	b := c.builder(http.MethodGet, "/wapi/v3/depositHistory.html")
	b.sign = true
	return DepositHistory{b}
}

// WithdrawHistory is the request builder for the withdrawal history.
type WithdrawHistory struct {
	*ParamBuilder
}

// Asset filters by asset.
func (b WithdrawHistory) Asset(asset string) WithdrawHistory {
	b.params.Asset = &asset
	return b
}

// Status filters by withdrawal status (0 email sent through 6 completed).
func (b WithdrawHistory) Status(status int) WithdrawHistory {
	b.params.Status = &status
	return b
}

// StartTime bounds the window from below.
func (b WithdrawHistory) StartTime(t time.Time) WithdrawHistory {
	ms := t.UnixMilli()
	b.params.StartTime = &ms
	return b
}

// EndTime bounds the window from above.
func (b WithdrawHistory) EndTime(t time.Time) WithdrawHistory {
	ms := t.UnixMilli()
	b.params.EndTime = &ms
	return b
}

// Page selects the result page.
func (b WithdrawHistory) Page(page int) WithdrawHistory {
	b.params.Page = &page
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b WithdrawHistory) RecvWindow(ms int) WithdrawHistory {
	b.params.RecvWindow = &ms
	return b
}

// WithdrawHistory fetches the withdrawal history.
func (c *WithdrawClient) WithdrawHistory() WithdrawHistory {
	b := c.builder(http.MethodGet, "/wapi/v3/withdrawHistory.html")
	b.sign = true
	return WithdrawHistory{b}
}

// DepositAddress is the request builder for deposit address lookups.
type DepositAddress struct {
	*ParamBuilder
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b DepositAddress) RecvWindow(ms int) DepositAddress {
	b.params.RecvWindow = &ms
	return b
}

// DepositAddress fetches the deposit address for an asset.
func (c *WithdrawClient) DepositAddress(asset string) DepositAddress {
	b := c.builder(http.MethodGet, "/wapi/v3/depositAddress.html")
	b.sign = true
	b.params.Asset = &asset
	return DepositAddress{b}
}

// AccountStatus is the request builder for the account status detail.
type AccountStatus struct {
	*ParamBuilder
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b AccountStatus) RecvWindow(ms int) AccountStatus {
	b.params.RecvWindow = &ms
	return b
}

// AccountStatus fetches the account status detail.
func (c *WithdrawClient) AccountStatus() AccountStatus {
	b := c.builder(http.MethodGet, "/wapi/v3/accountStatus.html")
	b.sign = true
	return AccountStatus{b}
}

// SystemStatus is the request builder for the system status probe.
type SystemStatus struct {
	*ParamBuilder
}

// SystemStatus fetches the exchange system status (normal or maintenance).
func (c *WithdrawClient) SystemStatus() SystemStatus {
	return SystemStatus{c.builder(http.MethodGet, "/wapi/v3/systemStatus.html")}
}

// TradeFee is the request builder for trade fee lookups.
type TradeFee struct {
	*ParamBuilder
}

// Symbol filters by symbol.
func (b TradeFee) Symbol(symbol string) TradeFee {
	b.params.Symbol = &symbol
	return b
}

// RecvWindow sets the processing-latency tolerance in milliseconds.
func (b TradeFee) RecvWindow(ms int) TradeFee {
	b.params.RecvWindow = &ms
	return b
}

// TradeFee fetches the trade fee schedule.
func (c *WithdrawClient) TradeFee() TradeFee {
	b := c.builder(http.MethodGet, "/wapi/v3/tradeFee.html")
	b.sign = true
	return TradeFee{b}
}

package core

// OrderSide represents the direction of an order (buy or sell).
type OrderSide int

// Order side constants define the direction of a trade.
const (
	// SideBuy indicates an order to purchase an asset.
	SideBuy OrderSide = iota
	// SideSell indicates an order to sell an asset.
	SideSell
)

// String returns the wire representation of the order side ("BUY" or "SELL").
func (s OrderSide) String() string {
	return [...]string{"BUY", "SELL"}[s]
}

// MarshalJSON implements json.Marshaler for OrderSide.
func (s OrderSide) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderSide.
// It accepts both uppercase and lowercase formats.
func (s *OrderSide) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"BUY"`, `"buy"`:
		*s = SideBuy
	case `"SELL"`, `"sell"`:
		*s = SideSell
	}
	return nil
}

// OrderType represents the type of order to place on the exchange.
type OrderType int

// Order type constants define how an order is executed.
const (
	// TypeMarket executes immediately at the best available price.
	TypeMarket OrderType = iota
	// TypeLimit executes at a specified price or better.
	TypeLimit
	// TypeStopLoss triggers a market order when price reaches the stop price.
	TypeStopLoss
	// TypeStopLossLimit triggers a limit order when price reaches the stop price.
	TypeStopLossLimit
	// TypeTakeProfit triggers a market order when price reaches the target.
	TypeTakeProfit
	// TypeTakeProfitLimit triggers a limit order when price reaches the target.
	TypeTakeProfitLimit
	// TypeLimitMaker is a limit order rejected unless it would rest on the book.
	TypeLimitMaker
)

// String returns the wire representation of the order type.
func (t OrderType) String() string {
	return [...]string{
		"MARKET",
		"LIMIT",
		"STOP_LOSS",
		"STOP_LOSS_LIMIT",
		"TAKE_PROFIT",
		"TAKE_PROFIT_LIMIT",
		"LIMIT_MAKER",
	}[t]
}

// MarshalJSON implements json.Marshaler for OrderType.
func (t OrderType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderType.
// It accepts both uppercase and lowercase formats.
func (t *OrderType) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"MARKET"`, `"market"`:
		*t = TypeMarket
	case `"LIMIT"`, `"limit"`:
		*t = TypeLimit
	case `"STOP_LOSS"`, `"stop_loss"`:
		*t = TypeStopLoss
	case `"STOP_LOSS_LIMIT"`, `"stop_loss_limit"`:
		*t = TypeStopLossLimit
	case `"TAKE_PROFIT"`, `"take_profit"`:
		*t = TypeTakeProfit
	case `"TAKE_PROFIT_LIMIT"`, `"take_profit_limit"`:
		*t = TypeTakeProfitLimit
	case `"LIMIT_MAKER"`, `"limit_maker"`:
		*t = TypeLimitMaker
	}
	return nil
}

// TimeInForce defines how long an order remains active.
type TimeInForce int

// Time in force constants define order lifetime behavior.
const (
	// GTC (Good Till Canceled) keeps the order active until filled or canceled.
	GTC TimeInForce = iota
	// IOC (Immediate Or Cancel) requires immediate execution; the unfilled portion is canceled.
	IOC
	// FOK (Fill Or Kill) requires complete immediate execution or cancellation.
	FOK
)

// String returns the wire representation of the time in force.
func (t TimeInForce) String() string {
	return [...]string{"GTC", "IOC", "FOK"}[t]
}

// MarshalJSON implements json.Marshaler for TimeInForce.
func (t TimeInForce) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for TimeInForce.
// It accepts both uppercase and lowercase formats.
func (t *TimeInForce) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"GTC"`, `"gtc"`:
		*t = GTC
	case `"IOC"`, `"ioc"`:
		*t = IOC
	case `"FOK"`, `"fok"`:
		*t = FOK
	}
	return nil
}

// ResponseType selects how much detail the exchange returns for a placed order.
type ResponseType int

// Response type constants define order placement response verbosity.
const (
	// RespAck returns only the order id assignment.
	RespAck ResponseType = iota
	// RespResult returns the order without fill details.
	RespResult
	// RespFull returns the order including individual fills.
	RespFull
)

// String returns the wire representation of the response type.
func (r ResponseType) String() string {
	return [...]string{"ACK", "RESULT", "FULL"}[r]
}

// MarshalJSON implements json.Marshaler for ResponseType.
func (r ResponseType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// Interval represents a candlestick aggregation period.
type Interval int

// Kline interval constants, from one minute up to one month.
const (
	OneMinute Interval = iota
	ThreeMinutes
	FiveMinutes
	FifteenMinutes
	ThirtyMinutes
	OneHour
	TwoHours
	FourHours
	SixHours
	EightHours
	TwelveHours
	OneDay
	ThreeDays
	OneWeek
	OneMonth
)

// String returns the wire representation of the interval (e.g. "1m", "1h", "1M").
func (i Interval) String() string {
	return [...]string{
		"1m", "3m", "5m", "15m", "30m",
		"1h", "2h", "4h", "6h", "8h", "12h",
		"1d", "3d", "1w", "1M",
	}[i]
}

// MarshalJSON implements json.Marshaler for Interval.
func (i Interval) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

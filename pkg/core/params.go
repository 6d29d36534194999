package core

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
)

// Parameters is the single wide record holding every optional field used by
// any endpoint. A fresh record backs each outbound request; per-endpoint
// builders expose only the subset of fields their endpoint accepts.
//
// Timestamp and Signature are engine-owned: they are populated together by
// one Sign call immediately before serialization and are never set by callers.
type Parameters struct {
	Symbol               *string
	Limit                *int
	FromID               *int64
	StartTime            *int64
	EndTime              *int64
	Interval             *Interval
	Side                 *OrderSide
	OrderType            *OrderType
	Price                *float64
	Quantity             *float64
	StopPrice            *float64
	IcebergQty           *float64
	TimeInForce          *TimeInForce
	NewClientOrderID     *string
	NewOrderRespType     *ResponseType
	OrderID              *int64
	OrigClientOrderID    *string
	ListClientOrderID    *string
	LimitClientOrderID   *string
	StopClientOrderID    *string
	LimitIcebergQty      *float64
	StopIcebergQty       *float64
	StopLimitPrice       *float64
	StopLimitTimeInForce *TimeInForce
	OrderListID          *int64
	ListenKey            *string
	Address              *string
	AddressTag           *string
	Name                 *string
	Asset                *string
	Status               *int
	Page                 *int
	Amount               *float64
	RecvWindow           *int
	Timestamp            *int64
	Signature            *string
}

// Encode serializes the record to the exchange's canonical query encoding:
// fields in declaration order, absent fields omitted, camelCase names with
// the historical exception of "type" for the order type. The same encoding
// is used for query strings, form bodies, and the signing input, so the
// order here is the canonical order.
func (p *Parameters) Encode() string {
	var b strings.Builder
	add := func(key, value string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	if p.Symbol != nil {
		add("symbol", *p.Symbol)
	}
	if p.Limit != nil {
		add("limit", strconv.Itoa(*p.Limit))
	}
	if p.FromID != nil {
		add("fromId", strconv.FormatInt(*p.FromID, 10))
	}
	if p.StartTime != nil {
		add("startTime", strconv.FormatInt(*p.StartTime, 10))
	}
	if p.EndTime != nil {
		add("endTime", strconv.FormatInt(*p.EndTime, 10))
	}
	if p.Interval != nil {
		add("interval", p.Interval.String())
	}
	if p.Side != nil {
		add("side", p.Side.String())
	}
	if p.OrderType != nil {
		add("type", p.OrderType.String())
	}
	if p.Price != nil {
		add("price", formatFloat(*p.Price))
	}
	if p.Quantity != nil {
		add("quantity", formatFloat(*p.Quantity))
	}
	if p.StopPrice != nil {
		add("stopPrice", formatFloat(*p.StopPrice))
	}
	if p.IcebergQty != nil {
		add("icebergQty", formatFloat(*p.IcebergQty))
	}
	if p.TimeInForce != nil {
		add("timeInForce", p.TimeInForce.String())
	}
	if p.NewClientOrderID != nil {
		add("newClientOrderId", *p.NewClientOrderID)
	}
	if p.NewOrderRespType != nil {
		add("newOrderRespType", p.NewOrderRespType.String())
	}
	if p.OrderID != nil {
		add("orderId", strconv.FormatInt(*p.OrderID, 10))
	}
	if p.OrigClientOrderID != nil {
		add("origClientOrderId", *p.OrigClientOrderID)
	}
	if p.ListClientOrderID != nil {
		add("listClientOrderId", *p.ListClientOrderID)
	}
	if p.LimitClientOrderID != nil {
		add("limitClientOrderId", *p.LimitClientOrderID)
	}
	if p.StopClientOrderID != nil {
		add("stopClientOrderId", *p.StopClientOrderID)
	}
	if p.LimitIcebergQty != nil {
		add("limitIcebergQty", formatFloat(*p.LimitIcebergQty))
	}
	if p.StopIcebergQty != nil {
		add("stopIcebergQty", formatFloat(*p.StopIcebergQty))
	}
	if p.StopLimitPrice != nil {
		add("stopLimitPrice", formatFloat(*p.StopLimitPrice))
	}
	if p.StopLimitTimeInForce != nil {
		add("stopLimitTimeInForce", p.StopLimitTimeInForce.String())
	}
	if p.OrderListID != nil {
		add("orderListId", strconv.FormatInt(*p.OrderListID, 10))
	}
	if p.ListenKey != nil {
		add("listenKey", *p.ListenKey)
	}
	if p.Address != nil {
		add("address", *p.Address)
	}
	if p.AddressTag != nil {
		add("addressTag", *p.AddressTag)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Asset != nil {
		add("asset", *p.Asset)
	}
	if p.Status != nil {
		add("status", strconv.Itoa(*p.Status))
	}
	if p.Page != nil {
		add("page", strconv.Itoa(*p.Page))
	}
	if p.Amount != nil {
		add("amount", formatFloat(*p.Amount))
	}
	if p.RecvWindow != nil {
		add("recvWindow", strconv.Itoa(*p.RecvWindow))
	}
	if p.Timestamp != nil {
		add("timestamp", strconv.FormatInt(*p.Timestamp, 10))
	}
	if p.Signature != nil {
		add("signature", *p.Signature)
	}

	return b.String()
}

// Sign stamps the record with ts (milliseconds since epoch), computes the
// HMAC-SHA256 of the canonical encoding using secret as the key, and stores
// the lowercase hex digest in Signature. Both fields are set by this one
// call; signing the same field set with the same secret and ts is
// deterministic.
func (p *Parameters) Sign(secret string, ts int64) error {
	if secret == "" {
		return Signing(ErrInvalidKey)
	}

	p.Timestamp = &ts
	p.Signature = nil

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(p.Encode()))
	sig := hex.EncodeToString(mac.Sum(nil))

	p.Signature = &sig
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package binance

import "net/http"

// Ping is the request builder for connectivity tests. It takes no options.
type Ping struct {
	*ParamBuilder
}

// Ping tests connectivity to the REST API.
func (c *GeneralClient) Ping() Ping {
	return Ping{c.builder(http.MethodGet, "/api/v3/ping")}
}

// ServerTime is the request builder for the exchange clock endpoint.
type ServerTime struct {
	*ParamBuilder
}

// ServerTime fetches the current exchange time.
func (c *GeneralClient) ServerTime() ServerTime {
	return ServerTime{c.builder(http.MethodGet, "/api/v3/time")}
}

// ExchangeInfo is the request builder for exchange trading rules.
type ExchangeInfo struct {
	*ParamBuilder
}

// ExchangeInfo fetches current trading rules and symbol information.
func (c *GeneralClient) ExchangeInfo() ExchangeInfo {
	return ExchangeInfo{c.builder(http.MethodGet, "/api/v3/exchangeInfo")}
}

// Package binance provides typed clients for the Binance REST API.
//
// Each client exposes thin per-endpoint methods that return a request
// builder; the builder carries exactly the optional setters the endpoint
// accepts, so setting an unsupported field is a compile error rather than
// a runtime rejection.
//
// Example usage:
//
//	client, err := binance.NewMarketDataClient("<api-key>", binance.BaseURL)
//	book, err := client.OrderBook("BNBUSDT").Limit(5).Text(ctx)
package binance

import (
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"nakula/pkg/core"
)

// BaseURL is the binance.us REST endpoint.
const BaseURL = "https://api.binance.us"

// Overridable time source, so signing tests can pin the timestamp.
var timeNowMillis = func() int64 { return time.Now().UnixMilli() }

type client struct {
	http   *resty.Client
	creds  core.Credentials
	logger zerolog.Logger
}

func newClient(cfg *core.Config) (*client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	httpc := resty.New()
	httpc.SetBaseURL(cfg.BaseURL)
	if cfg.Timeout > 0 {
		httpc.SetTimeout(cfg.Timeout)
	}
	httpc.AddContentTypeEncoder("application/json", func(w io.Writer, v any) error {
		data, err := sonic.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	httpc.AddContentTypeDecoder("application/json", func(r io.Reader, v any) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		return sonic.Unmarshal(data, v)
	})

	c := &client{
		http:   httpc,
		logger: zerolog.Nop(),
	}
	if cfg.Credentials != nil {
		c.creds = *cfg.Credentials
	}
	return c, nil
}

func (c *client) builder(method, path string) *ParamBuilder {
	return &ParamBuilder{
		method: method,
		path:   path,
		apiKey: c.creds.APIKey,
		secret: c.creds.SecretKey,
		http:   c.http,
		logger: c.logger,
	}
}

// SetLogger installs a logger for the warn-and-return path on unexpected
// response statuses. The default logger discards everything.
func (c *client) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// GeneralClient accesses the unauthenticated connectivity endpoints.
type GeneralClient struct {
	*client
}

// NewGeneralClient creates a client for the general endpoints. No
// credentials are required.
func NewGeneralClient(baseURL string) (*GeneralClient, error) {
	c, err := newClient(core.DefaultConfig(baseURL))
	if err != nil {
		return nil, err
	}
	return &GeneralClient{client: c}, nil
}

// MarketDataClient accesses the public market-data endpoints. The API key
// is attached as a header but requests are not signed.
type MarketDataClient struct {
	*client
}

// NewMarketDataClient creates a client for the market-data endpoints.
func NewMarketDataClient(apiKey, baseURL string) (*MarketDataClient, error) {
	cfg := core.DefaultConfig(baseURL).
		WithCredentials(&core.Credentials{APIKey: apiKey})
	c, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return &MarketDataClient{client: c}, nil
}

// AccountClient accesses the signed trading and account endpoints.
type AccountClient struct {
	*client
}

// NewAccountClient creates a client for the account endpoints. Both the
// API key and the secret key are required.
func NewAccountClient(apiKey, secretKey, baseURL string) (*AccountClient, error) {
	cfg := core.DefaultConfig(baseURL).
		WithCredentials(&core.Credentials{APIKey: apiKey, SecretKey: secretKey})
	c, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return &AccountClient{client: c}, nil
}

// Market returns a market-data client sharing this client's transport and
// API key.
func (c *AccountClient) Market() *MarketDataClient {
	return &MarketDataClient{client: c.client}
}

// General returns a general client sharing this client's transport.
func (c *AccountClient) General() *GeneralClient {
	return &GeneralClient{client: c.client}
}

// UserDataClient manages user-data stream listen keys. Requests carry the
// API key header but are not signed.
type UserDataClient struct {
	*client
}

// NewUserDataClient creates a client for the user-data stream endpoints.
func NewUserDataClient(apiKey, baseURL string) (*UserDataClient, error) {
	cfg := core.DefaultConfig(baseURL).
		WithCredentials(&core.Credentials{APIKey: apiKey})
	c, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return &UserDataClient{client: c}, nil
}

// WithdrawClient accesses the signed wallet endpoints.
type WithdrawClient struct {
	*client
}

// NewWithdrawClient creates a client for the wallet endpoints. Both the
// API key and the secret key are required.
func NewWithdrawClient(apiKey, secretKey, baseURL string) (*WithdrawClient, error) {
	cfg := core.DefaultConfig(baseURL).
		WithCredentials(&core.Credentials{APIKey: apiKey, SecretKey: secretKey})
	c, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return &WithdrawClient{client: c}, nil
}

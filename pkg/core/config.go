package core

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Credentials holds API authentication material. The API key is sent as a
// header; the secret key is only ever used to compute signatures and is
// never transmitted.
type Credentials struct {
	APIKey    string `json:"api_key"`
	SecretKey string `json:"secret_key"`
}

// Config contains the options for a client handle. A handle owns immutable
// configuration plus a shared HTTP transport; copying a handle never
// duplicates live socket state.
type Config struct {
	// BaseURL is the REST API endpoint, e.g. "https://api.binance.us".
	BaseURL string `json:"base_url" validate:"required,url"`
	// Credentials are optional; public market-data endpoints work without them.
	Credentials *Credentials `json:"credentials,omitempty"`
	// Timeout is the maximum duration for a single HTTP request.
	// Zero means no local deadline beyond the caller's context.
	Timeout time.Duration `json:"timeout" validate:"min=0"`
}

// DefaultConfig returns a Config pointed at baseURL with a 10s timeout.
func DefaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}

var validate = validator.New()

// Validate checks the config against its declared constraints.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

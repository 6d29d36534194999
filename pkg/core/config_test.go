package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig("https://api.binance.us")
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10*time.Second, cfg.Timeout)

	bad := DefaultConfig("not a url")
	assert.Error(t, bad.Validate())

	empty := DefaultConfig("")
	assert.Error(t, empty.Validate())
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig("https://api.binance.us").
		WithCredentials(&Credentials{APIKey: "key", SecretKey: "secret"}).
		WithTimeout(30 * time.Second)

	require.NoError(t, cfg.Validate())
	require.NotNil(t, cfg.Credentials)
	assert.Equal(t, "key", cfg.Credentials.APIKey)
	assert.Equal(t, "secret", cfg.Credentials.SecretKey)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

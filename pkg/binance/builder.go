package binance

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"nakula/pkg/core"
)

// ParamBuilder composes a parameter record, an HTTP verb and path, and
// optional credentials into one dispatched request. Per-endpoint builder
// types embed it to inherit the dispatch tail (Response, Text, JSON) while
// exposing only their endpoint's setters.
type ParamBuilder struct {
	params core.Parameters
	method string
	path   string
	sign   bool
	apiKey string
	secret string
	http   *resty.Client
	logger zerolog.Logger
}

// Response dispatches the request and classifies the reply.
//
// 2xx responses are returned as-is. 4xx responses fail with a *core.APIError
// carrying the status code, reason phrase, and raw body. Anything else
// (3xx, 5xx) is logged as a warning and still returned to the caller: the
// exchange's own 5xx bodies are not reliably parseable, so the library does
// not fail the call.
func (b *ParamBuilder) Response(ctx context.Context) (*resty.Response, error) {
	if b.sign {
		if err := b.params.Sign(b.secret, timeNowMillis()); err != nil {
			return nil, err
		}
	}

	r := b.http.R().SetContext(ctx)
	if b.apiKey != "" {
		r.SetHeader("X-MBX-APIKEY", b.apiKey)
	}

	// The encoded record goes out byte for byte: the server verifies the
	// signature over the serialization it receives, so nothing may reorder
	// the pairs after signing.
	encoded := b.params.Encode()
	url := b.path
	var resp *resty.Response
	var err error
	switch b.method {
	case http.MethodPost:
		r.SetHeader("Content-Type", "application/x-www-form-urlencoded")
		r.SetBody(encoded)
		resp, err = r.Post(url)
	case http.MethodPut:
		r.SetHeader("Content-Type", "application/x-www-form-urlencoded")
		r.SetBody(encoded)
		resp, err = r.Put(url)
	case http.MethodGet, http.MethodDelete:
		if encoded != "" {
			url += "?" + encoded
		}
		if b.method == http.MethodGet {
			resp, err = r.Get(url)
		} else {
			resp, err = r.Delete(url)
		}
	default:
		return nil, core.Transport(fmt.Errorf("unsupported http method: %s", b.method))
	}
	if err != nil {
		return nil, core.Transport(err)
	}

	code := resp.StatusCode()
	switch {
	case code >= 200 && code < 300:
		return resp, nil
	case code >= 400 && code < 500:
		return nil, &core.APIError{
			StatusCode: code,
			Reason:     http.StatusText(code),
			Body:       resp.String(),
		}
	default:
		b.logger.Warn().
			Int("status", code).
			Str("method", b.method).
			Str("path", b.path).
			Msg("unexpected response status")
		return resp, nil
	}
}

// Text dispatches the request and returns the response body as text.
func (b *ParamBuilder) Text(ctx context.Context) (string, error) {
	resp, err := b.Response(ctx)
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}

// JSON dispatches the request and decodes the response body into v.
func (b *ParamBuilder) JSON(ctx context.Context, v any) error {
	resp, err := b.Response(ctx)
	if err != nil {
		return err
	}
	if err := sonic.UnmarshalString(resp.String(), v); err != nil {
		return core.Serialization(err)
	}
	return nil
}

// Package growfy is the HTTP client for the Growfy scheduling API.
//
// Every call is bearer-authenticated with the credential the client was
// constructed with; nothing is read from ambient storage.
package growfy

import (
	"context"
	"time"

	"resty.dev/v3"

	"growdash/internal/core"
)

type Config struct {
	BaseURL     string
	AccessToken string

	ResponseMiddlewares []resty.ResponseMiddleware
}

type Client struct {
	client *resty.Client
}

func NewClient(cfg *Config) *Client {
	client := resty.NewWithTransportSettings(&resty.TransportSettings{
		DialerTimeout:         5 * time.Second,
		DialerKeepAlive:       15 * time.Second,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	})

	client.SetBaseURL(cfg.BaseURL)
	if cfg.AccessToken != "" {
		client.SetAuthToken(cfg.AccessToken)
	}

	for _, middleware := range cfg.ResponseMiddlewares {
		client.AddResponseMiddleware(middleware)
	}

	return &Client{
		client: client,
	}
}

// SetAuthToken swaps the bearer credential, used right after a login.
func (c *Client) SetAuthToken(token string) {
	c.client.SetAuthToken(token)
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.client.R().WithContext(ctx)
}

type errorEnvelope struct {
	Message string `json:"message"`
}

// check folds a resty result into the transport error taxonomy: network
// failures and non-success statuses both surface as *core.TransportError.
func check(res *resty.Response, err error) error {
	if err != nil {
		return &core.TransportError{Err: err}
	}
	if res.IsSuccess() {
		return nil
	}

	message := res.String()
	if e, ok := res.Error().(*errorEnvelope); ok && e.Message != "" {
		message = e.Message
	}

	return &core.TransportError{
		StatusCode: res.StatusCode(),
		Message:    message,
	}
}

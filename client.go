package popcat

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.popcat.xyz"

// Client is the Popcat API client. The zero value is not usable; construct
// with New. Clients hold no mutable per-call state and are safe for
// concurrent use.
type Client struct {
	baseURL   string
	transport Transport
	userAgent string
	pasteyKey string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API host, mainly for tests against fakes.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithTransport swaps the HTTP transport. The replacement owns timeout and
// connection-reuse policy.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithTimeout sets the round-trip timeout on the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.transport = newHTTPTransport(timeout) }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithPasteyKey supplies the API key for the Pastey code-paste service.
func WithPasteyKey(key string) Option {
	return func(c *Client) { c.pasteyKey = key }
}

// New creates a Client for api.popcat.xyz.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		transport: newHTTPTransport(DefaultTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API host.
func (c *Client) BaseURL() string { return c.baseURL }

// Call invokes a catalog endpoint by name: validate, build, send exactly
// once, interpret. Every typed method delegates here. Validation failures
// return before the transport is ever touched.
func (c *Client) Call(ctx context.Context, name string, args map[string]string) (Result, error) {
	ep, ok := Lookup(name)
	if !ok {
		return Result{}, &ValidationError{Reason: fmt.Sprintf("unknown endpoint %q", name)}
	}
	if ep.RequiresKey && c.pasteyKey == "" {
		return Result{}, &ValidationError{Reason: "endpoint " + name + " requires a Pastey API key"}
	}

	desc, err := buildRequest(ep, args)
	if err != nil {
		return Result{}, err
	}

	url := desc.URL(c.baseURL)
	body, err := desc.Body()
	if err != nil {
		return Result{}, &ValidationError{Reason: "cannot encode request body: " + err.Error()}
	}

	header := make(http.Header)
	header.Set("Accept", "application/json")
	if body != nil {
		header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		header.Set("User-Agent", c.userAgent)
	}
	if ep.RequiresKey {
		header.Set("Authorization", "Bearer "+c.pasteyKey)
	}

	status, respBody, err := c.transport.Send(ctx, desc.Method, url, body, header)
	if err != nil {
		return Result{}, &TransportError{Err: err}
	}
	return interpret(ep, url, status, respBody)
}

// callString invokes an endpoint whose result is a string payload.
func (c *Client) callString(ctx context.Context, name string, args map[string]string) (string, error) {
	res, err := c.Call(ctx, name, args)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

// callObject invokes an endpoint whose result is a decoded JSON object.
func (c *Client) callObject(ctx context.Context, name string, args map[string]string) (map[string]any, error) {
	res, err := c.Call(ctx, name, args)
	if err != nil {
		return nil, err
	}
	return res.Object(), nil
}

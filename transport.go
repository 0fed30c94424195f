package popcat

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single request round trip.
const DefaultTimeout = 30 * time.Second

// Transport performs the actual network I/O for one request. Any HTTP
// client satisfying this shape is acceptable; the library never retries,
// caches, or coalesces through it.
type Transport interface {
	Send(ctx context.Context, method, url string, body []byte, header http.Header) (status int, respBody []byte, err error)
}

type httpTransport struct {
	client *http.Client
}

func newHTTPTransport(timeout time.Duration) *httpTransport {
	baseTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		baseTransport = &http.Transport{}
	}
	transport := baseTransport.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	} else {
		transport.TLSClientConfig = transport.TLSClientConfig.Clone()
	}
	transport.TLSClientConfig.MinVersion = tls.VersionTLS12

	return &httpTransport{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Send performs exactly one attempt. Non-2xx statuses are not errors at this
// layer; classification happens in the interpreter.
func (t *httpTransport) Send(ctx context.Context, method, url string, body []byte, header http.Header) (int, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return 0, nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		slog.Debug("request failed", "method", method, "url", url, "error", err)
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	slog.Debug("request complete", "method", method, "url", url,
		"status", resp.StatusCode, "duration", time.Since(start))
	return resp.StatusCode, respBody, nil
}

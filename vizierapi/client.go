/*
Copyright 2022 GramLabs, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package vizierapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thestormforge/vizier-go/internal/version"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the per-request timeout used by new clients
const DefaultTimeout = 10 * time.Second

// Client is a generic HTTP client for accessing a Vizier API server
type Client interface {
	// URL returns the fully qualified URL of the specified endpoint (a path relative to the server address)
	URL(endpoint string) *url.URL
	// Do performs the request, returning the response and the fully read body; round trip failures are
	// reported as an `ErrTransport` error.
	Do(context.Context, *http.Request) (*http.Response, []byte, error)
}

// ClientOption is used to customize a new client
type ClientOption func(*httpClient)

// WithTimeout overrides the per-request timeout; zero disables the timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *httpClient) { c.client.Timeout = timeout }
}

// WithRateLimit limits the rate at which requests are sent; a zero limit leaves requests unlimited
func WithRateLimit(limit rate.Limit, burst int) ClientOption {
	return func(c *httpClient) {
		if limit <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithUserAgent sets the product and comment reported in the `User-Agent` header
func WithUserAgent(product, comment string) ClientOption {
	return func(c *httpClient) {
		c.product = product
		c.comment = comment
	}
}

// NewClient returns a new client for the Vizier API server at the supplied address. The supplied transport may
// be nil to use the default transport. An address that cannot be used as a base URL is reported as an
// `ErrInvalidIdentifier` error.
func NewClient(address string, transport http.RoundTripper, opts ...ClientOption) (Client, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, NewError(ErrInvalidIdentifier, err, "invalid server address %q", address)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, NewError(ErrInvalidIdentifier, nil, "invalid server address %q: scheme must be http or https", address)
	}
	if u.Host == "" {
		return nil, NewError(ErrInvalidIdentifier, nil, "invalid server address %q: missing host", address)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, NewError(ErrInvalidIdentifier, nil, "invalid server address %q: query and fragment are not allowed", address)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""

	hc := &httpClient{baseURL: *u}
	hc.client.Timeout = DefaultTimeout
	for _, opt := range opts {
		opt(hc)
	}
	hc.client.Transport = version.UserAgent(hc.product, hc.comment, transport)

	return hc, nil
}

// NewClientForConfig returns a new client using the current server, authorization and rate limit from the
// supplied configuration; the supplied context is used for any authentication requests.
func NewClientForConfig(ctx context.Context, cfg Config, transport http.RoundTripper, opts ...ClientOption) (Client, error) {
	address, err := cfg.Endpoint()
	if err != nil {
		return nil, err
	}

	limit, burst, err := cfg.RateLimit()
	if err != nil {
		return nil, err
	}

	rt, err := cfg.Authorize(ctx, transport)
	if err != nil {
		return nil, err
	}

	opts = append([]ClientOption{WithRateLimit(limit, burst)}, opts...)
	return NewClient(address, rt, opts...)
}

type httpClient struct {
	baseURL url.URL
	client  http.Client
	limiter *rate.Limiter
	product string
	comment string
}

func (c *httpClient) URL(ep string) *url.URL {
	u := c.baseURL
	u.Path = u.Path + "/" + strings.TrimLeft(ep, "/")
	return &u
}

func (c *httpClient) Do(ctx context.Context, req *http.Request) (*http.Response, []byte, error) {
	if ctx == nil {
		ctx = req.Context()
	}
	req = req.WithContext(ctx)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, nil, transportError(req, err)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, transportError(req, err)
	}
	defer resp.Body.Close()

	var body []byte
	done := make(chan struct{})
	go func() {
		body, err = io.ReadAll(resp.Body)
		close(done)
	}()

	select {
	case <-ctx.Done():
		_ = resp.Body.Close()
		<-done
		return resp, nil, transportError(req, ctx.Err())
	case <-done:
	}

	if err != nil {
		return resp, body, transportError(req, err)
	}
	return resp, body, nil
}

func transportError(req *http.Request, err error) error {
	e := NewError(ErrTransport, err, "%s %s: %v", req.Method, req.URL.Redacted(), unwrapURLError(err))
	e.Location = req.URL.String()
	return e
}

// unwrapURLError drops the redundant method and URL prefix the HTTP client adds to errors
func unwrapURLError(err error) error {
	if uerr, ok := err.(*url.Error); ok {
		return uerr.Err
	}
	return err
}

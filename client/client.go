package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Client wraps the std-lib *http.Client.
// It sets a private *http.Client using http.DefaultTransport, which
// can be customized via optional funcs.
type Client struct {
	c      *http.Client
	logger *slog.Logger
}

// Build instantiates a new *Client with the provided options.
func Build(optFns ...Option) (*Client, error) {
	client := &Client{
		c:      &http.Client{Timeout: DefaultTimeout},
		logger: slog.Default(),
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.client != nil {
		cpy := *opts.client
		client.c = &cpy
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}

	ua := DefaultUserAgent
	if opts.userAgent != "" {
		ua = opts.userAgent
	}
	client.c.Transport = userAgent{value: ua, base: transport}

	return client, nil
}

// Do fires the request and hands the response to fn, whatever its status code.
// The body is drained and closed once fn returns.
func (c *Client) Do(req *http.Request, fn ExecFn) error {
	resp, err := c.c.Do(req)
	if err != nil {
		return &TransportError{
			Method: req.Method,
			URL:    redact(req.URL),
			Err:    err,
		}
	}

	defer func() {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			c.logger.Error("failed to discard unused body", "error", err)
		}
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	if fn == nil {
		return nil
	}

	if err := fn(resp); err != nil {
		return fmt.Errorf("exec fn: %w", err)
	}

	return nil
}

// Request instantiates an *http.Request with the provided information.
// Content-Type defaults to `application/x-www-form-urlencoded` when a form
// is given via WithForm, and is left unset otherwise unless WithContentType is used.
func Request(ctx context.Context, reqURL *url.URL, method string, opts ...RequestOption) (*http.Request, error) {
	if reqURL == nil {
		return nil, fmt.Errorf("instantiating request: %w", ErrNilURL)
	}

	var settings requestOpts
	for _, opt := range opts {
		if err := opt(&settings); err != nil {
			return nil, err
		}
	}

	var body io.Reader
	var contentType string
	switch {
	case settings.form != nil:
		body = strings.NewReader(settings.form.Encode())
		contentType = ContentTypeForm
	case settings.body != nil:
		body = bytes.NewReader(settings.body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	if settings.contentType != nil {
		contentType = *settings.contentType
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for k, v := range settings.headers {
		for _, element := range v {
			req.Header.Add(k, element)
		}
	}

	return req, nil
}

// redact strips userinfo and the query from u so that errors never carry secrets.
func redact(u *url.URL) string {
	if u == nil {
		return ""
	}

	cpy := *u
	cpy.User = nil
	cpy.RawQuery = ""

	return cpy.String()
}

// Package crmtext is a client for the CRMText SMS/MMS marketing API.
//
// A [Conn] holds the endpoint and auth token and exposes one method per
// remote operation. Every call is a single form-encoded POST, and the XML
// reply is returned as an [xmltree.Element], normally named "response".
// The API reports its own failures inside that document; inspecting it is
// left to the caller.
//
//	conn, err := crmtext.Connect(crmtext.WithCredentials("user", "secret", "mystore"))
//	if err != nil { ... }
//	resp, err := conn.SendSMS(ctx, "15551234567", crmtext.WithMessage("Hello"))
//
// A Conn is immutable and safe for concurrent use.
package crmtext

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/crmtext/client"
	"github.com/adamwoolhether/crmtext/xmltree"
)

// DefaultEndpoint is the production CRMText REST endpoint.
const DefaultEndpoint = "https://restapi.crmtext.com/smapi/rest"

const (
	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 32 << 20 // 32MB

	// maxErrBodySize caps the body kept on a ParseError.
	maxErrBodySize = 4 << 10 // 4KB
)

// Conn is an authenticated handle on the CRMText API.
type Conn struct {
	endpoint *url.URL
	token    string
	client   *client.Client
	log      *slog.Logger
	tracer   trace.Tracer
}

// Connect validates the credentials and builds a Conn. It performs no I/O.
// Without WithAuthToken, all of username, password and keyword must be
// given through WithCredentials, or a *CredentialsError is returned.
func Connect(optFns ...Option) (*Conn, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	token := opts.token
	if token == "" {
		if missing := missingCredentials(opts.username, opts.password, opts.keyword); len(missing) > 0 {
			return nil, &CredentialsError{Missing: missing}
		}
		token = AuthToken(opts.username, opts.password, opts.keyword)
	}

	conn := Conn{
		token:  token,
		log:    slog.Default(),
		tracer: noop.NewTracerProvider().Tracer("no-op tracer"),
	}

	if opts.logger != nil {
		conn.log = opts.logger
	}

	if opts.tracer != nil {
		conn.tracer = opts.tracer
	}

	conn.endpoint = opts.endpoint
	if conn.endpoint == nil {
		u, err := url.Parse(DefaultEndpoint)
		if err != nil {
			return nil, fmt.Errorf("parsing default endpoint: %w", err)
		}
		conn.endpoint = u
	}

	clientOpts := append([]client.Option{client.WithLogger(conn.log)}, opts.clientOpts...)
	c, err := client.Build(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("building client: %w", err)
	}
	conn.client = c

	return &conn, nil
}

// Endpoint returns the URL requests are sent to.
func (c *Conn) Endpoint() string {
	return c.endpoint.String()
}

// Token returns the auth token sent with every request.
func (c *Conn) Token() string {
	return c.token
}

// do sends one API call and parses the reply. The status code does not
// gate parsing: the API reports errors inside the XML body.
func (c *Conn) do(ctx context.Context, method string, form url.Values) (*xmltree.Element, error) {
	reqID := uuid.NewString()

	ctx, span := c.tracer.Start(ctx, "crmtext."+method, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("crmtext.method", method),
		attribute.String("crmtext.request_id", reqID),
	)

	headers := http.Header{}
	headers.Set("Authorization", "Basic "+c.token)
	headers.Set("Accept", "application/xml, text/xml")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(headers))

	req, err := client.Request(ctx, c.endpoint, http.MethodPost, client.WithForm(form), client.WithHeaders(headers))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	log := c.log.With("method", method, "request_id", reqID)
	log.Debug("request started", "endpoint", c.endpoint.Host)
	start := time.Now()

	var root *xmltree.Element
	parse := func(resp *http.Response) error {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

		b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		if err != nil {
			return &TransportError{Method: req.Method, URL: c.endpoint.String(), Err: fmt.Errorf("reading body: %w", err)}
		}

		root, err = xmltree.ParseBytes(b)
		if err != nil {
			if len(b) > maxErrBodySize {
				b = b[:maxErrBodySize]
			}
			return &ParseError{StatusCode: resp.StatusCode, Body: string(b), Err: err}
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			log.Warn("unexpected status code", "statusCode", resp.StatusCode, "root", root.Name())
		}

		log.Debug("request completed", "statusCode", resp.StatusCode, "since", time.Since(start).String())

		return nil
	}

	if err := c.client.Do(req, parse); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Debug("request failed", "error", err, "since", time.Since(start).String())

		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return root, nil
}

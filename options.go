package crmtext

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/crmtext/client"
)

// Option defines optional settings for [Connect].
type Option func(*options) error

type options struct {
	token      string
	username   string
	password   string
	keyword    string
	endpoint   *url.URL
	clientOpts []client.Option
	logger     *slog.Logger
	tracer     trace.Tracer
}

// WithAuthToken uses a precomputed token, see [AuthToken].
// It takes precedence over WithCredentials.
func WithAuthToken(token string) Option {
	return func(o *options) error {
		o.token = token
		return nil
	}
}

// WithCredentials derives the auth token from the account's username,
// password and store keyword.
func WithCredentials(username, password, keyword string) Option {
	return func(o *options) error {
		o.username = username
		o.password = password
		o.keyword = keyword
		return nil
	}
}

// WithEndpoint overrides [DefaultEndpoint].
func WithEndpoint(endpoint string) Option {
	return func(o *options) error {
		u, err := url.Parse(endpoint)
		if err != nil {
			return fmt.Errorf("parsing endpoint: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("endpoint[%s] must be an absolute url", endpoint)
		}

		o.endpoint = u
		return nil
	}
}

// WithClientOptions passes options through to the underlying [client.Build],
// e.g. [client.WithTimeout] or [client.WithTransport].
func WithClientOptions(opts ...client.Option) Option {
	return func(o *options) error {
		o.clientOpts = append(o.clientOpts, opts...)
		return nil
	}
}

// WithLogger injects a custom logger. It is shared with the underlying client.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithTracer injects the tracer used to start one span per API call.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

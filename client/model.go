package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds a whole round trip, including reading the body.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when WithUserAgent is not used.
	DefaultUserAgent = "crmtext-go/" + Version

	// Version of this client library.
	Version = "0.1.0"

	// ContentTypeForm is set on requests built with WithForm.
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// ExecFn represents a func to operate on a response.
type ExecFn func(response *http.Response) error

// ErrNilURL is returned by Request when no URL is given.
var ErrNilURL = errors.New("url must not be nil")

// TransportError is returned by [Client.Do] when the round trip could
// not complete: DNS failures, refused connections, timeouts and the like.
// No response was received.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

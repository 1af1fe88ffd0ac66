package crmtext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adamwoolhether/crmtext/client"
)

var (
	// ErrMissingCredentials is wrapped by [CredentialsError].
	ErrMissingCredentials = errors.New("missing authentication credentials")
)

// CredentialsError is returned by [Connect] when neither an auth token nor a
// complete username, password and keyword triple was supplied.
type CredentialsError struct {
	// Missing names the triple members that were empty.
	Missing []string
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("%v: need an auth token or username, password and keyword (missing %s)",
		ErrMissingCredentials, strings.Join(e.Missing, ", "))
}

func (e *CredentialsError) Unwrap() error {
	return ErrMissingCredentials
}

// TransportError is returned when a request could not complete at the
// network level. Nothing is retried.
type TransportError = client.TransportError

// ParseError is returned when the response body is not a well-formed XML
// document. The status code is kept since the API may answer failures with
// a non-XML body.
type ParseError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing response: status %d: %v", e.StatusCode, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

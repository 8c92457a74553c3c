package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrAuthFailed        = errors.New("authentication failed")
	ErrTransport         = errors.New("transport failure")
	ErrHTTPStatus        = errors.New("unexpected http status")
	ErrEnvelope          = errors.New("server reported failure")
	ErrMalformedResponse = errors.New("malformed response")
	ErrDuplicateAccount  = errors.New("duplicate account id")
)

type HTTPStatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s: status %d", e.Endpoint, e.StatusCode)
}

func (e *HTTPStatusError) Unwrap() error {
	return ErrHTTPStatus
}

// Unauthorized reports whether the server rejected the bearer token.
func (e *HTTPStatusError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

type EnvelopeError struct {
	Endpoint string
	Code     int
	Message  string
}

func (e *EnvelopeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: code %d", e.Endpoint, e.Code)
	}
	return fmt.Sprintf("%s: code %d: %s", e.Endpoint, e.Code, e.Message)
}

func (e *EnvelopeError) Unwrap() error {
	return ErrEnvelope
}

// IsTokenRejected reports whether err means the bearer token is no longer
// accepted. Such sessions are not re-authenticated.
func IsTokenRejected(err error) bool {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr.Unauthorized()
	}
	var envErr *EnvelopeError
	if errors.As(err, &envErr) {
		return envErr.Code == http.StatusUnauthorized || envErr.Code == http.StatusForbidden
	}
	return false
}

package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind classifies a provider failure for logging and recovery decisions.
type Kind string

const (
	KindUnknown   Kind = "unknown"
	KindAuth      Kind = "auth"
	KindRateLimit Kind = "rate_limit"
	KindMalformed Kind = "malformed"
	KindNetwork   Kind = "network"
	KindTimeout   Kind = "timeout"
)

// Error wraps a provider failure with its kind. Callers recover locally; the
// kind only feeds logs and tests.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the failure kind from any error chain.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// classifyStatus maps an HTTP status code to a failure kind.
func classifyStatus(code int) Kind {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return KindAuth
	case code == http.StatusTooManyRequests:
		return KindRateLimit
	default:
		return KindUnknown
	}
}

// classifyTransport maps a round-trip error to timeout or network.
func classifyTransport(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}
	return KindNetwork
}

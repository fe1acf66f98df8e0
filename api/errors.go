package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an API failure by how the caller should react.
type ErrorKind int

const (
	// KindTransient errors are worth retrying: timeouts, connection
	// resets, and 5xx responses.
	KindTransient ErrorKind = iota
	// KindUnauthorized means the token is missing, invalid, or expired.
	// Retrying without a new token cannot succeed.
	KindUnauthorized
	// KindNotFound means the server does not know the requested resource.
	KindNotFound
	// KindMalformed means the response could not be mapped to the
	// expected shape. Retried like a transient error, but reported
	// separately so a flaky server reads differently from a flaky
	// network.
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindMalformed:
		return "malformed"
	}
	return "unknown"
}

// Fatal reports whether the kind ends a watch session immediately
// instead of being retried.
func (k ErrorKind) Fatal() bool {
	return k == KindUnauthorized || k == KindNotFound
}

// Error is a classified failure from one API call. Status is the HTTP
// status code, or 0 when the request never completed.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf classifies any error returned by a Client call. Errors that did
// not come from the API layer count as transient.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindTransient
}

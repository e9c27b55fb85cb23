package bookingcore

import (
	"errors"
	"fmt"
)

// NotFoundError means the referenced record does not exist upstream. Because
// the backend is eventually consistent this can be transient for records
// created moments ago, so callers retry before surfacing it.
type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{
		Code:    "notFound",
		Message: msg,
	}
}

// TransportError means the upstream call itself failed (network, timeout,
// server error). It is retriable and carries no business meaning.
type TransportError struct {
	Code    string
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

func NewTransportError(msg string, err error) error {
	return &TransportError{
		Code:    "transportError",
		Message: msg,
		Err:     err,
	}
}

// IsNotFound reports whether err classifies as a missing upstream record.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsTransport reports whether err classifies as a failed upstream call.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

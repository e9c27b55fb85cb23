package booking

import (
	"errors"
	"fmt"
)

// UnavailableError means the requested slot is no longer bookable. The
// orchestrator answers it with alternative slots instead of a dead end.
type UnavailableError struct {
	Code    string
	Message string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewUnavailableError(msg string) error {
	return &UnavailableError{
		Code:    "slotUnavailable",
		Message: msg,
	}
}

// IsUnavailable reports whether err classifies as a taken slot.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}

// SystemError is an unexpected internal failure. Only its generic message is
// shown to the visitor; detail stays in the logs.
type SystemError struct {
	Code    string
	Message string
	Err     error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SystemError) Unwrap() error { return e.Err }

func NewSystemError(msg string, err error) error {
	return &SystemError{
		Code:    "systemError",
		Message: msg,
		Err:     err,
	}
}

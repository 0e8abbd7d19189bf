package namesapi

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the API has no record with the requested id.
var ErrNotFound = errors.New("name not found")

// TransportError represents a network failure or a non-2xx response from the
// names API. StatusCode is zero when the request never got a response.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("names api %s: HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("names api %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError is returned before any request is made when the input
// cannot be sent to the API.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

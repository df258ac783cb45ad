package fetcher

import (
	"errors"
	"fmt"
)

var (
	// ErrStatusNotOK is returned when http response status is not 200 OK.
	ErrStatusNotOK = errors.New("response status is not OK")
	// ErrContentTypeNotSupported is returned when http response content type is not supported.
	ErrContentTypeNotSupported = errors.New("response content type is not supported")
	// ErrBodyNotReplayable is returned when request with body can't be sent again.
	ErrBodyNotReplayable = errors.New("request body can't be replayed")
)

// StatusError is returned when response has unexpected status.
type StatusError struct {
	StatusCode int
}

// Error returns error message.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrStatusNotOK, e.StatusCode)
}

// Unwrap returns ErrStatusNotOK.
func (e *StatusError) Unwrap() error {
	return ErrStatusNotOK
}

package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the chat endpoint could not be reached.
	ErrUnavailable = errors.New("chat endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("chat request timed out")

	// ErrInvalidOutput indicates the endpoint answered with something that
	// is not a chat response.
	ErrInvalidOutput = errors.New("invalid chat response")

	// ErrRetryExhausted indicates every attempt failed.
	ErrRetryExhausted = errors.New("chat retry attempts exhausted")
)

// StatusError is a non-200 answer from the chat endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chat endpoint returned status %d: %s", e.Code, e.Body)
}

// isClientError reports whether err is a 4xx answer, which a retry won't fix.
func isClientError(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code >= 400 && se.Code < 500
}

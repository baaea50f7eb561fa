package application

import (
	"errors"
	"fmt"
)

// AdapterError marks a failed capability adapter call. Handlers catch it at
// their boundary, post a failure notice, and never propagate it to the
// dispatch loop.
type AdapterError struct {
	Op  string
	Err error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

// NewAdapterError wraps an adapter failure with the operation that failed.
func NewAdapterError(op string, err error) *AdapterError {
	return &AdapterError{Op: op, Err: err}
}

// IsAdapterError reports whether err is (or wraps) an AdapterError.
func IsAdapterError(err error) bool {
	var ae *AdapterError
	return errors.As(err, &ae)
}

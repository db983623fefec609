package sysinfo

import "errors"

// ErrCapabilityAbsent is returned by a Host when the platform service
// behind a query is not available on this system (for example, a system
// library does not export the expected function).
var ErrCapabilityAbsent = errors.New("capability not available")

// QueryError records a failed host query together with the operation that
// issued it.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error { return e.Err }

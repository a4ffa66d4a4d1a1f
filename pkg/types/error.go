// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Err is the kind of a boundary failure. Exactly two kinds exist:
// parameters rejected locally before any HTTP call, and remote calls
// that failed or returned an unparseable payload. Callers match kinds
// with errors.Is.
type Err int

const (
	// ErrInvalidParameter marks locally detected misuse: out-of-range
	// limits, unrecognized sort options, malformed identifiers.
	ErrInvalidParameter Err = iota + 1

	// ErrRequestFailed marks a remote call that returned a non-success
	// status, failed at the network level, or produced a payload that
	// could not be parsed in the expected format.
	ErrRequestFailed
)

func (e Err) Error() string {
	switch e {
	case ErrInvalidParameter:
		return "invalid parameter"
	case ErrRequestFailed:
		return "request failed"
	}
	return fmt.Sprintf("error code %d", int(e))
}

// With annotates the error kind with detail.
func (e Err) With(args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

// Withf annotates the error kind with formatted detail.
func (e Err) Withf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

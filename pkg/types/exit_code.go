// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitOK reports success.
	ExitOK ExitCode = 0
	// ExitFailure covers usage errors, configuration failures and anything unclassified.
	ExitFailure ExitCode = 1
	// ExitInvalidURI reports text or components that do not form a valid URI.
	ExitInvalidURI ExitCode = 2
	// ExitInvalidOperation reports an operation that does not apply to the URI.
	ExitInvalidOperation ExitCode = 3
	// ExitAbsent reports a query without result, e.g. the path of a URI that has none.
	ExitAbsent ExitCode = 4
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// IsInputError returns true for the codes that blame the input rather than
// the environment: invalid URI, invalid operation and absent result.
func (c ExitCode) IsInputError() bool {
	return c == ExitInvalidURI || c == ExitInvalidOperation || c == ExitAbsent
}

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

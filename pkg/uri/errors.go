// SPDX-License-Identifier: MPL-2.0

package uri

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURI is the sentinel error wrapped by InvalidURIError.
	ErrInvalidURI = errors.New("invalid uri")

	// ErrInvalidOperation is the sentinel error wrapped by InvalidOperationError.
	ErrInvalidOperation = errors.New("invalid operation")
)

type (
	// InvalidURIError is returned when text cannot be split into URI
	// components or when components violate a URI invariant.
	InvalidURIError struct {
		// Field is the offending component name (see Component).
		Field string
		// Value is the offending input.
		Value string
		// Reason is a human-readable explanation.
		Reason string
	}

	// InvalidOperationError is returned when an operation does not apply to
	// the URI it was called on.
	InvalidOperationError struct {
		Op     string
		URI    URI
		Reason string
	}
)

// Error implements the error interface for InvalidURIError.
func (e *InvalidURIError) Error() string {
	return fmt.Sprintf("invalid uri: %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidURI for errors.Is() compatibility.
func (e *InvalidURIError) Unwrap() error { return ErrInvalidURI }

// Error implements the error interface for InvalidOperationError.
func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("invalid operation: cannot %s %s: %s", e.Op, e.URI, e.Reason)
}

// Unwrap returns ErrInvalidOperation for errors.Is() compatibility.
func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

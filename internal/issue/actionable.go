// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// ActionableError is a user-facing error: the operation that failed, the
	// URI, path or file it failed on, hints for fixing it and the catalogue
	// page that explains the failure kind.
	//
	// Build one with ErrorContext:
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("parse uri").
	//		WithResource("file:///tmp/x").
	//		WithSuggestion("Quote the URI so the shell keeps '#' and '?'").
	//		WithIssue(issue.InvalidURIId).
	//		Wrap(cause).
	//		BuildError()
	ActionableError struct {
		// Operation is a verb phrase such as "parse uri" or "load configuration".
		Operation string
		// Resource is the URI, path or file involved (optional).
		Resource string
		// Suggestions are remediation hints, one per line (optional).
		Suggestions []string
		// Issue is the catalogue page for this kind of failure (0 for none).
		Issue Id
		// Cause is the underlying error (optional).
		Cause error
	}

	// ErrorContext accumulates the fields of an ActionableError.
	ErrorContext struct {
		err ActionableError
	}
)

// NewErrorContext creates an empty ErrorContext.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// IdOf returns the catalogue page of the first ActionableError in err's
// chain, or 0.
func IdOf(err error) Id {
	var ae *ActionableError
	if errors.As(err, &ae) {
		return ae.Issue
	}
	return 0
}

// Error returns "failed to <operation>[: <resource>][: <cause>]". A resource
// containing whitespace, as file paths often do, is quoted.
func (e *ActionableError) Error() string {
	var msg strings.Builder
	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(quoteResource(e.Resource))
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}
	return msg.String()
}

// Unwrap returns the cause.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders Error followed by one "  • <suggestion>" line per
// suggestion. Verbose output also lists the cause chain, outermost first,
// with adjacent identical messages shown once.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, suggestion := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(suggestion)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		depth, prev := 1, ""
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			text := err.Error()
			if text == prev {
				continue
			}
			fmt.Fprintf(&msg, "\n  %d. %s", depth, text)
			depth++
			prev = text
		}
	}

	return msg.String()
}

// HasSuggestions reports whether any suggestion is attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// WithOperation sets the failed operation. It is required.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.err.Operation = op
	return c
}

// WithResource sets the URI, path or file involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.err.Resource = res
	return c
}

// WithSuggestion appends suggestions; empty strings are skipped.
func (c *ErrorContext) WithSuggestion(sugs ...string) *ErrorContext {
	for _, s := range sugs {
		if s != "" {
			c.err.Suggestions = append(c.err.Suggestions, s)
		}
	}
	return c
}

// WithIssue links the error to a catalogue page.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.err.Issue = id
	return c
}

// Wrap sets the cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.err.Cause = err
	return c
}

// Build returns the ActionableError, or nil when no operation is set. The
// context can keep being used; later changes do not affect the result.
func (c *ErrorContext) Build() *ActionableError {
	if c.err.Operation == "" {
		return nil
	}
	ae := c.err
	ae.Suggestions = slices.Clone(c.err.Suggestions)
	return &ae
}

// BuildError is Build returning an error interface, nil without an operation.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}

func quoteResource(res string) string {
	if strings.ContainsAny(res, " \t\r\n") {
		return strconv.Quote(res)
	}
	return res
}

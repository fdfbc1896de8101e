// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// DefaultMaxFileSize bounds the CUE files Decode accepts (1 MiB).
const DefaultMaxFileSize int64 = 1 << 20

var (
	// ErrSchemaViolation is the sentinel error wrapped by ValidationError.
	ErrSchemaViolation = errors.New("schema violation")
	// ErrFileTooLarge is returned by CheckFileSize.
	ErrFileTooLarge = errors.New("file too large")
)

type (
	// Violation is one failed constraint.
	Violation struct {
		// Path is the JSON-style path of the offending value, e.g. "ui.verbose".
		// It is empty for file-level problems such as syntax errors.
		Path string
		// Message is the CUE error text without the path prefix.
		Message string
	}

	// ValidationError reports every violation found in one file.
	ValidationError struct {
		File       string
		Violations []Violation
	}
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		lines = append(lines, v.String())
	}
	if len(lines) == 1 {
		return e.File + ": " + lines[0]
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.File, strings.Join(lines, "\n  "))
}

// Unwrap returns ErrSchemaViolation for errors.Is() compatibility.
func (e *ValidationError) Unwrap() error { return ErrSchemaViolation }

// String renders the violation as "path: message".
func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// FormatError converts err into a *ValidationError naming the CUE path of
// each failure. An error that does not come from CUE is wrapped with the file
// name instead; nil stays nil.
func FormatError(err error, file string) error {
	if err == nil {
		return nil
	}

	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", file, err)
	}

	verr := &ValidationError{File: file}
	for _, e := range list {
		p := jsonPath(cueerrors.Path(e))
		msg := e.Error()
		// CUE repeats the path at the start of some messages.
		if p != "" {
			if rest, ok := strings.CutPrefix(msg, p); ok {
				msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
			}
		}
		verr.Violations = append(verr.Violations, Violation{Path: p, Message: msg})
	}
	return verr
}

// jsonPath renders a CUE selector path such as ["rules", "0", "name"] as
// "rules[0].name".
func jsonPath(selectors []string) string {
	var b strings.Builder
	for i, sel := range selectors {
		switch {
		case i > 0 && isIndex(sel):
			b.WriteString("[" + sel + "]")
		case i > 0:
			b.WriteString("." + sel)
		default:
			b.WriteString(sel)
		}
	}
	return b.String()
}

func isIndex(sel string) bool {
	return sel != "" && strings.Trim(sel, "0123456789") == ""
}

// CheckFileSize returns an error wrapping ErrFileTooLarge when data is
// larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, file string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: %w: %d bytes exceeds the %d byte limit", file, ErrFileTooLarge, size, maxSize)
	}
	return nil
}

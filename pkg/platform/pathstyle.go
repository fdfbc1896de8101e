// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
)

const (
	// PathStylePOSIX uses forward slashes only; a backslash is an ordinary
	// filename character (e.g. /f\oo/ba\r.txt).
	PathStylePOSIX PathStyle = "posix"
	// PathStyleWindows treats backslash and forward slash as separators and
	// renders native paths with backslashes.
	PathStyleWindows PathStyle = "windows"

	// PathStyleAuto is accepted by ParsePathStyle and resolves to the style of
	// the running process.
	PathStyleAuto = "auto"
)

// ErrInvalidPathStyle is the sentinel error wrapped by InvalidPathStyleError.
var ErrInvalidPathStyle = errors.New("invalid path style")

// detectOnce caches the path style of the running process.
// runtime.GOOS is a compile-time constant, so the value never changes.
var detectOnce = sync.OnceValue(func() PathStyle {
	return PathStyleFor(runtime.GOOS)
})

type (
	// PathStyle selects the path conventions used for native path conversion.
	PathStyle string

	// InvalidPathStyleError is returned when a PathStyle value is not recognized.
	InvalidPathStyleError struct {
		Value PathStyle
	}
)

// DetectPathStyle returns the path style of the running process.
func DetectPathStyle() PathStyle {
	return detectOnce()
}

// PathStyleFor returns the path style used on the given GOOS.
// This is a pure function, independent of the cached detection state.
func PathStyleFor(goos string) PathStyle {
	if goos == Windows {
		return PathStyleWindows
	}
	return PathStylePOSIX
}

// ParsePathStyle parses a style name. "auto" and the empty string resolve to
// DetectPathStyle. Matching is case-insensitive.
func ParsePathStyle(name string) (PathStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PathStyleAuto:
		return DetectPathStyle(), nil
	case string(PathStylePOSIX):
		return PathStylePOSIX, nil
	case string(PathStyleWindows):
		return PathStyleWindows, nil
	default:
		return "", &InvalidPathStyleError{Value: PathStyle(name)}
	}
}

// String returns the string representation of the PathStyle.
func (s PathStyle) String() string { return string(s) }

// Validate returns an error if the PathStyle is not one of the known styles.
func (s PathStyle) Validate() error {
	switch s {
	case PathStylePOSIX, PathStyleWindows:
		return nil
	default:
		return &InvalidPathStyleError{Value: s}
	}
}

// IsWindows reports whether Windows path rules apply.
func (s PathStyle) IsWindows() bool { return s == PathStyleWindows }

// Separator returns the native path separator of the style.
func (s PathStyle) Separator() byte {
	if s.IsWindows() {
		return '\\'
	}
	return '/'
}

// ToSlash replaces native separators with forward slashes. It is the
// identity for POSIX, where a backslash is a valid filename character.
func (s PathStyle) ToSlash(p string) string {
	if s.IsWindows() {
		return strings.ReplaceAll(p, `\`, "/")
	}
	return p
}

// FromSlash replaces forward slashes with the native separator.
func (s PathStyle) FromSlash(p string) string {
	if s.IsWindows() {
		return strings.ReplaceAll(p, "/", `\`)
	}
	return p
}

// Error implements the error interface for InvalidPathStyleError.
func (e *InvalidPathStyleError) Error() string {
	return fmt.Sprintf("invalid path style %q (valid: auto, posix, windows)", e.Value)
}

// Unwrap returns ErrInvalidPathStyle for errors.Is() compatibility.
func (e *InvalidPathStyleError) Unwrap() error { return ErrInvalidPathStyle }

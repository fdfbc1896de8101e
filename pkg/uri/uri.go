// SPDX-License-Identifier: MPL-2.0

package uri

import (
	"regexp"
	"strings"
)

const (
	// FileScheme is the scheme of filesystem URIs.
	FileScheme = "file"
	// HTTPScheme is the scheme of http URIs.
	HTTPScheme = "http"
	// HTTPSScheme is the scheme of https URIs.
	HTTPSScheme = "https"
)

// schemePattern is the RFC 3986 scheme grammar: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*$`)

// rootedSchemes always carry a path starting with "/".
var rootedSchemes = map[string]bool{
	HTTPScheme:  true,
	HTTPSScheme: true,
	FileScheme:  true,
}

// URI is an immutable, validated URI. The zero value is not a valid URI;
// obtain one from New, Parse, MustParse or ForFile.
type URI struct {
	scheme    string
	authority string
	path      string
	query     string
	fragment  string
}

// New builds a URI from components.
//
// For the http, https and file schemes a path that does not start with "/"
// gets one prepended (an empty path becomes "/"). The result is then checked:
//   - the scheme must match [A-Za-z][A-Za-z0-9+.-]*
//   - with an authority, a non-empty path must start with "/"
//   - without an authority, the path must not start with "//"
//
// A violation returns an *InvalidURIError and the zero URI.
func New(c Components) (URI, error) {
	if rootedSchemes[c.Scheme] && !strings.HasPrefix(c.Path, "/") {
		c.Path = "/" + c.Path
	}

	u := URI{
		scheme:    c.Scheme,
		authority: c.Authority,
		path:      c.Path,
		query:     c.Query,
		fragment:  c.Fragment,
	}
	if err := u.Validate(); err != nil {
		return URI{}, err
	}
	return u, nil
}

// Validate checks the URI invariants. Values returned by this package always
// pass; the method exists for callers holding a URI of unknown origin (such
// as the zero value).
func (u URI) Validate() error {
	if u.scheme == "" {
		return &InvalidURIError{Field: string(ComponentScheme), Value: u.scheme, Reason: "a scheme is required"}
	}
	if !schemePattern.MatchString(u.scheme) {
		return &InvalidURIError{
			Field:  string(ComponentScheme),
			Value:  u.scheme,
			Reason: "must start with a letter followed by letters, digits, '+', '-' or '.'",
		}
	}
	if u.authority != "" && u.path != "" && !strings.HasPrefix(u.path, "/") {
		return &InvalidURIError{
			Field:  string(ComponentPath),
			Value:  u.path,
			Reason: "a path with an authority must start with '/'",
		}
	}
	if u.authority == "" && strings.HasPrefix(u.path, "//") {
		return &InvalidURIError{
			Field:  string(ComponentPath),
			Value:  u.path,
			Reason: "a path without an authority cannot start with '//'",
		}
	}
	return nil
}

// Scheme returns the scheme, e.g. "file".
func (u URI) Scheme() string { return u.scheme }

// Authority returns the decoded authority, e.g. "user@host:8080".
func (u URI) Authority() string { return u.authority }

// Path returns the decoded path.
func (u URI) Path() string { return u.path }

// Query returns the decoded query without the leading "?".
func (u URI) Query() string { return u.query }

// Fragment returns the decoded fragment without the leading "#".
func (u URI) Fragment() string { return u.fragment }

// Components returns the stored components.
func (u URI) Components() Components {
	return Components{
		Scheme:    u.scheme,
		Authority: u.authority,
		Path:      u.path,
		Query:     u.query,
		Fragment:  u.fragment,
	}
}

// IsZero reports whether u is the zero URI.
func (u URI) IsZero() bool { return u == URI{} }

// IsFile reports whether u uses the file scheme.
func (u URI) IsFile() bool { return u.scheme == FileScheme }

// Equal reports whether u and other have identical components.
func (u URI) Equal(other URI) bool { return u == other }

// SPDX-License-Identifier: MPL-2.0

package uri

import (
	"maps"
	"path"
	"slices"
	"strings"
)

// Change replaces or clears one component in Where.
type Change func(*Components)

// WithScheme replaces the scheme.
func WithScheme(v string) Change { return set(ComponentScheme, v) }

// WithAuthority replaces the authority.
func WithAuthority(v string) Change { return set(ComponentAuthority, v) }

// WithPath replaces the path.
func WithPath(v string) Change { return set(ComponentPath, v) }

// WithQuery replaces the query.
func WithQuery(v string) Change { return set(ComponentQuery, v) }

// WithFragment replaces the fragment.
func WithFragment(v string) Change { return set(ComponentFragment, v) }

// Without clears component c.
func Without(c Component) Change { return set(c, "") }

func set(c Component, v string) Change {
	return func(cs *Components) { cs.set(c, v) }
}

// Where returns a copy of u with the given changes applied. Components not
// mentioned keep their value. The result is validated like New; u itself is
// never modified.
func (u URI) Where(changes ...Change) (URI, error) {
	c := u.Components()
	for _, change := range changes {
		change(&c)
	}
	return New(c)
}

// WhereFields is the string-keyed form of Where, for callers driven by
// untyped input. A nil value clears the component, a non-nil value replaces
// it, and keys that do not name a component are ignored. Keys are applied in
// sorted order, so differently-cased duplicates resolve deterministically.
func (u URI) WhereFields(fields map[string]*string) (URI, error) {
	changes := make([]Change, 0, len(fields))
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		value := fields[name]
		c, ok := ParseComponent(name)
		if !ok {
			continue
		}
		if value == nil {
			changes = append(changes, Without(c))
			continue
		}
		changes = append(changes, set(c, *value))
	}
	return u.Where(changes...)
}

// Join returns a copy of u whose path is the cleaned concatenation of the
// current path and segment: "." and ".." are resolved and repeated slashes
// collapse. An absolute segment replaces the path. Only the path changes.
//
// Joining onto a URI without a path is an *InvalidOperationError.
func (u URI) Join(segment string) (URI, error) {
	if u.path == "" {
		return URI{}, &InvalidOperationError{Op: "join", URI: u, Reason: "uri has no path"}
	}

	var joined string
	if strings.HasPrefix(segment, "/") {
		joined = path.Clean(segment)
	} else {
		joined = path.Join(u.path, segment)
	}
	return u.Where(WithPath(joined))
}

// SPDX-License-Identifier: MPL-2.0

package uri

import "strings"

const (
	// ComponentScheme names the scheme component.
	ComponentScheme Component = "scheme"
	// ComponentAuthority names the authority component.
	ComponentAuthority Component = "authority"
	// ComponentPath names the path component.
	ComponentPath Component = "path"
	// ComponentQuery names the query component.
	ComponentQuery Component = "query"
	// ComponentFragment names the fragment component.
	ComponentFragment Component = "fragment"
)

type (
	// Component names one of the five stored URI components.
	Component string

	// Components is the plain input record for New. Every field is optional;
	// New decides whether the combination is a valid URI.
	Components struct {
		Scheme    string `json:"scheme" yaml:"scheme" toml:"scheme"`
		Authority string `json:"authority" yaml:"authority" toml:"authority"`
		Path      string `json:"path" yaml:"path" toml:"path"`
		Query     string `json:"query" yaml:"query" toml:"query"`
		Fragment  string `json:"fragment" yaml:"fragment" toml:"fragment"`
	}
)

// AllComponents lists the components in serialization order.
func AllComponents() []Component {
	return []Component{ComponentScheme, ComponentAuthority, ComponentPath, ComponentQuery, ComponentFragment}
}

// ParseComponent looks up a component by name (case-insensitive).
// Unknown names report ok=false; callers that accept loosely-typed input are
// expected to skip them.
func ParseComponent(name string) (Component, bool) {
	c := Component(strings.ToLower(strings.TrimSpace(name)))
	switch c {
	case ComponentScheme, ComponentAuthority, ComponentPath, ComponentQuery, ComponentFragment:
		return c, true
	default:
		return "", false
	}
}

// String returns the component name.
func (c Component) String() string { return string(c) }

// Get returns the value of component c.
func (cs Components) Get(c Component) string {
	switch c {
	case ComponentScheme:
		return cs.Scheme
	case ComponentAuthority:
		return cs.Authority
	case ComponentPath:
		return cs.Path
	case ComponentQuery:
		return cs.Query
	case ComponentFragment:
		return cs.Fragment
	default:
		return ""
	}
}

// set assigns value to component c. Unknown components are ignored.
func (cs *Components) set(c Component, value string) {
	switch c {
	case ComponentScheme:
		cs.Scheme = value
	case ComponentAuthority:
		cs.Authority = value
	case ComponentPath:
		cs.Path = value
	case ComponentQuery:
		cs.Query = value
	case ComponentFragment:
		cs.Fragment = value
	}
}

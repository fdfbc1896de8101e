// SPDX-License-Identifier: MPL-2.0

package uri_test

import (
	"errors"
	"testing"

	"github.com/invowk/urikit/pkg/uri"
)

func TestURI_Where(t *testing.T) {
	t.Parallel()

	base := uri.MustParse("https://host/a?q#f")

	tests := []struct {
		name    string
		changes []uri.Change
		want    uri.Components
	}{
		{"no changes", nil, base.Components()},
		{"replace query", []uri.Change{uri.WithQuery("x")}, uri.Components{Scheme: "https", Authority: "host", Path: "/a", Query: "x", Fragment: "f"}},
		{"clear fragment", []uri.Change{uri.Without(uri.ComponentFragment)}, uri.Components{Scheme: "https", Authority: "host", Path: "/a", Query: "q"}},
		{"clear authority", []uri.Change{uri.WithAuthority("")}, uri.Components{Scheme: "https", Path: "/a", Query: "q", Fragment: "f"}},
		{"relative path rooted for https", []uri.Change{uri.WithPath("rel")}, uri.Components{Scheme: "https", Authority: "host", Path: "/rel", Query: "q", Fragment: "f"}},
		{"later change wins", []uri.Change{uri.WithFragment("one"), uri.WithFragment("two")}, uri.Components{Scheme: "https", Authority: "host", Path: "/a", Query: "q", Fragment: "two"}},
		{"change scheme", []uri.Change{uri.WithScheme("foo"), uri.WithPath("//x")}, uri.Components{Scheme: "foo", Authority: "host", Path: "//x", Query: "q", Fragment: "f"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := base.Where(tt.changes...)
			if err != nil {
				t.Fatalf("Where() unexpected error: %v", err)
			}
			if got.Components() != tt.want {
				t.Errorf("Where() = %+v, want %+v", got.Components(), tt.want)
			}
		})
	}

	if base.Query() != "q" || base.Fragment() != "f" {
		t.Errorf("Where modified the receiver: %+v", base.Components())
	}
}

func TestURI_Where_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    uri.URI
		changes []uri.Change
	}{
		{"double slash without authority", uri.MustParse("foo:bar"), []uri.Change{uri.WithPath("//x")}},
		{"relative path with authority", uri.MustParse("foo://h/bar"), []uri.Change{uri.WithPath("bar")}},
		{"clear scheme", uri.MustParse("file:///x"), []uri.Change{uri.Without(uri.ComponentScheme)}},
		{"bad scheme", uri.MustParse("file:///x"), []uri.Change{uri.WithScheme("-x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			before := tt.base
			_, err := tt.base.Where(tt.changes...)
			if !errors.Is(err, uri.ErrInvalidURI) {
				t.Errorf("Where() error = %v, want ErrInvalidURI", err)
			}
			if tt.base != before {
				t.Errorf("Where modified the receiver on error")
			}
		})
	}
}

func TestURI_WhereFields(t *testing.T) {
	t.Parallel()

	base := uri.MustParse("https://host/a?q#f")
	z := "z"
	x := "x"

	got, err := base.WhereFields(map[string]*string{
		"query":    &z,
		"fragment": nil,
		"bogus":    &x,
	})
	if err != nil {
		t.Fatalf("WhereFields() unexpected error: %v", err)
	}
	want := uri.Components{Scheme: "https", Authority: "host", Path: "/a", Query: "z"}
	if got.Components() != want {
		t.Errorf("WhereFields() = %+v, want %+v", got.Components(), want)
	}

	if _, err := base.WhereFields(map[string]*string{"scheme": nil}); !errors.Is(err, uri.ErrInvalidURI) {
		t.Errorf("WhereFields(scheme: nil) error = %v, want ErrInvalidURI", err)
	}
}

func TestURI_Join(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		segment string
		want    string
	}{
		{"parent segment", "file:///a/b", "../c", "/a/c"},
		{"dot and repeated slashes", "file:///a/b", "c/./d//e", "/a/b/c/d/e"},
		{"absolute segment replaces", "file:///a/b", "/etc/x", "/etc/x"},
		{"cannot climb above root", "file:///a/b", "../../..", "/"},
		{"empty segment cleans", "file:///a/./b/", "", "/a/b"},
		{"relative base path", "untitled:notes", "../x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			base := uri.MustParse(tt.base)
			got, err := base.Join(tt.segment)
			if err != nil {
				t.Fatalf("Join(%q) unexpected error: %v", tt.segment, err)
			}
			if got.Path() != tt.want {
				t.Errorf("Join(%q).Path() = %q, want %q", tt.segment, got.Path(), tt.want)
			}
			if got.Scheme() != base.Scheme() || got.Authority() != base.Authority() {
				t.Errorf("Join changed more than the path: %+v", got.Components())
			}
		})
	}
}

func TestURI_Join_KeepsQueryAndFragment(t *testing.T) {
	t.Parallel()

	got, err := uri.MustParse("https://h/a/b?q=1#f").Join("c")
	if err != nil {
		t.Fatalf("Join() unexpected error: %v", err)
	}
	want := uri.Components{Scheme: "https", Authority: "h", Path: "/a/b/c", Query: "q=1", Fragment: "f"}
	if got.Components() != want {
		t.Errorf("Join() = %+v, want %+v", got.Components(), want)
	}
}

func TestURI_Join_NoPath(t *testing.T) {
	t.Parallel()

	u, err := uri.New(uri.Components{Scheme: "foo", Query: "x"})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	_, err = u.Join("a")
	if !errors.Is(err, uri.ErrInvalidOperation) {
		t.Fatalf("Join() error = %v, want ErrInvalidOperation", err)
	}
	var opErr *uri.InvalidOperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("error should be *InvalidOperationError, got: %T", err)
	}
	if opErr.Op != "join" {
		t.Errorf("InvalidOperationError.Op = %q, want %q", opErr.Op, "join")
	}
	if opErr.URI != u {
		t.Errorf("InvalidOperationError.URI = %v, want %v", opErr.URI, u)
	}
}

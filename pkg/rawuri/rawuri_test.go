// SPDX-License-Identifier: MPL-2.0

package rawuri_test

import (
	"testing"

	"github.com/invowk/urikit/pkg/platform"
	"github.com/invowk/urikit/pkg/rawuri"
	"github.com/invowk/urikit/pkg/uri"
)

func TestFromFSPathStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		style  platform.PathStyle
		want   string
		wantOK bool
	}{
		{"posix path", "/home/u/a b.txt", platform.PathStylePOSIX, "file:///home/u/a%20b.txt", true},
		{"posix relative", "relative", platform.PathStylePOSIX, "file:///relative", true},
		{"posix unc", "//server/share/f.txt", platform.PathStylePOSIX, "file://server/share/f.txt", true},
		{"posix unc server only", "//server", platform.PathStylePOSIX, "file://server/", true},
		{"posix backslash is a name character", `/f\oo`, platform.PathStylePOSIX, "file:///f%5Coo", true},
		{"windows drive", `C:\Users\x`, platform.PathStyleWindows, "file:///c:/Users/x", true},
		{"windows unc", `\\server\share\f.txt`, platform.PathStyleWindows, "file://server/share/f.txt", true},
		{"empty path", "", platform.PathStylePOSIX, "file:///", true},
		{"nul byte is encoded", "/a\x00b", platform.PathStylePOSIX, "file:///a%00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := rawuri.FromFSPathStyle(tt.path, tt.style)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FromFSPathStyle(%q, %s) = (%q, %v), want (%q, %v)", tt.path, tt.style, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestToFSPathStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		uri    string
		style  platform.PathStyle
		want   string
		wantOK bool
	}{
		{"drive", "file:///c:/Users/x", platform.PathStylePOSIX, "c:/Users/x", true},
		{"upper-case drive", "file:///C:/Users/x", platform.PathStylePOSIX, "c:/Users/x", true},
		{"encoded drive", "file:///c%3A/Users/x", platform.PathStylePOSIX, "c:/Users/x", true},
		{"windows drive", "file:///C:/Users/x", platform.PathStyleWindows, `c:\Users\x`, true},
		{"unc", "file://server/share/f.txt", platform.PathStylePOSIX, "//server/share/f.txt", true},
		{"windows unc", "file://server/share/f.txt", platform.PathStyleWindows, `\\server\share\f.txt`, true},
		{"authority ignored for other schemes", "https://host/share/x", platform.PathStylePOSIX, "/share/x", true},
		{"decoded", "file:///home/u/a%20b.txt", platform.PathStylePOSIX, "/home/u/a b.txt", true},
		{"no scheme", "/just/a/path", platform.PathStylePOSIX, "/just/a/path", true},
		{"opaque", "untitled:Untitled-1", platform.PathStylePOSIX, "Untitled-1", true},
		{"unbalanced brackets", "http://[::1/x", platform.PathStylePOSIX, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := rawuri.ToFSPathStyle(tt.uri, tt.style)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ToFSPathStyle(%q, %s) = (%q, %v), want (%q, %v)", tt.uri, tt.style, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFSPathRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path  string
		style platform.PathStyle
	}{
		{"/var/log/app log.txt", platform.PathStylePOSIX},
		{"//server/share/file.txt", platform.PathStylePOSIX},
		{`c:\Users\x\notes.md`, platform.PathStyleWindows},
		{`\\server\share\file.txt`, platform.PathStyleWindows},
	}

	for _, tt := range tests {
		u, ok := rawuri.FromFSPathStyle(tt.path, tt.style)
		if !ok {
			t.Fatalf("FromFSPathStyle(%q) failed", tt.path)
		}
		got, ok := rawuri.ToFSPathStyle(u, tt.style)
		if !ok || got != tt.path {
			t.Errorf("ToFSPathStyle(%q) = (%q, %v), want %q", u, got, ok, tt.path)
		}
	}
}

func TestScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		uri    string
		want   string
		wantOK bool
	}{
		{"HTTPS://h", "https", true},
		{"file:///x", "file", true},
		{"/just/a/path", "", true},
		{"1bad:x", "", true},
		{"file:///a\x01", "file", true},
		{"http://[::1/x", "", false},
	}

	for _, tt := range tests {
		got, ok := rawuri.Scheme(tt.uri)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Scheme(%q) = (%q, %v), want (%q, %v)", tt.uri, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	got, ok := rawuri.Split("http://h/a%20b;p?q=1#f")
	want := uri.Parts{Scheme: "http", Authority: "h", Path: "/a b", Params: "p", Query: "q=1", Fragment: "f"}
	if !ok || got != want {
		t.Errorf("Split() = (%+v, %v), want (%+v, true)", got, ok, want)
	}

	if _, ok := rawuri.Split("http://::1]/x"); ok {
		t.Error("Split() accepted an unbalanced IPv6 literal")
	}
}

func TestUnsplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts uri.Parts
		want  string
	}{
		{"drive colon unencoded", uri.Parts{Scheme: "file", Path: "/c:/a b"}, "file:///c:/a%20b"},
		{"bare drive", uri.Parts{Path: "c:"}, "c:"},
		{
			"all components",
			uri.Parts{Scheme: "http", Authority: "user@h:8080", Path: "/a b", Params: "p", Query: "x=1", Fragment: "f"},
			"http://user@h:8080/a%20b;p?x%3D1#f",
		},
		{"ipv6 authority", uri.Parts{Scheme: "http", Authority: "[::1]:80", Path: "/"}, "http://[::1]:80/"},
		{"opaque", uri.Parts{Scheme: "mailto", Path: "a@b"}, "mailto:a%40b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := rawuri.Unsplit(tt.parts); got != tt.want {
				t.Errorf("Unsplit(%+v) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestSplitUnsplitRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"file:///c:/a%20b",
		"file://server/share/f.txt",
		"http://user@h:8080/a%20b;p?x%3D1#f",
	} {
		parts, ok := rawuri.Split(in)
		if !ok {
			t.Fatalf("Split(%q) failed", in)
		}
		if got := rawuri.Unsplit(parts); got != in {
			t.Errorf("Unsplit(Split(%q)) = %q", in, got)
		}
	}
}

func TestWithStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		uri    string
		r      uri.Parts
		style  platform.PathStyle
		want   string
		wantOK bool
	}{
		{"replace query", "file:///a/b?x", uri.Parts{Query: "y"}, platform.PathStylePOSIX, "file:///a/b?y", true},
		{"empty keeps everything", "file:///a/b?x#f", uri.Parts{}, platform.PathStylePOSIX, "file:///a/b?x#f", true},
		{"native path replaced", "file:///a/b?x", uri.Parts{Path: `C:\new`}, platform.PathStyleWindows, "file:///c:/new?x", true},
		{"relative path rooted", "file:///a/b", uri.Parts{Path: "rel"}, platform.PathStylePOSIX, "file:///rel", true},
		{"unc server dropped", "file:///a", uri.Parts{Path: "//srv/share"}, platform.PathStylePOSIX, "file:///share", true},
		{"scheme and authority", "http://h/a", uri.Parts{Scheme: "https", Authority: "other:8443"}, platform.PathStylePOSIX, "https://other:8443/a", true},
		{"invalid input", "http://[::1/x", uri.Parts{Query: "y"}, platform.PathStylePOSIX, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := rawuri.WithStyle(tt.uri, tt.r, tt.style)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("WithStyle(%q, %+v) = (%q, %v), want (%q, %v)", tt.uri, tt.r, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// SPDX-License-Identifier: MPL-2.0

package uri

import (
	"regexp"
	"strings"

	"github.com/invowk/urikit/pkg/platform"
)

// driveLetterPath matches "C:" or "/C:" at the start of a path.
// Submatch 1 is the optional leading slash, submatch 2 the drive.
var driveLetterPath = regexp.MustCompile(`^(/?)([a-zA-Z]:)`)

// IsDrivePath reports whether p starts with a Windows drive letter,
// optionally preceded by a single "/" ("C:/x", "/c:/x").
func IsDrivePath(p string) bool {
	return driveLetterPath.MatchString(p)
}

// NormalizePath prepares a URI path for output: under Windows rules
// backslashes become forward slashes, and a leading drive letter is
// lower-cased so that "/C:/x" and "/c:/x" render identically.
func NormalizePath(p string, style platform.PathStyle) string {
	p = style.ToSlash(p)
	if m := driveLetterPath.FindStringSubmatchIndex(p); m != nil {
		p = p[:m[4]] + strings.ToLower(p[m[4]:m[5]]) + p[m[5]:]
	}
	return p
}

// ForFile builds a file URI from a native filesystem path using the path
// style of the running process.
func ForFile(p string) (URI, error) {
	return ForFileStyle(p, platform.DetectPathStyle())
}

// ForFileStyle builds a file URI from a native filesystem path.
//
// Under Windows rules backslashes are separators. A path starting with "//"
// is a UNC path: its first segment becomes the authority and the rest the
// path, so "//server/share/x" yields authority "server" and path "/share/x".
// The path is taken as is otherwise; it is never made absolute and the
// filesystem is not consulted.
func ForFileStyle(p string, style platform.PathStyle) (URI, error) {
	p = style.ToSlash(p)

	authority := ""
	if rest, ok := strings.CutPrefix(p, "//"); ok {
		authority, p, _ = strings.Cut(rest, "/")
	}

	return New(Components{Scheme: FileScheme, Authority: authority, Path: p})
}

// FSPath returns the native filesystem path of u using the path style of the
// running process. See FSPathStyle.
func (u URI) FSPath() (string, bool) {
	return u.FSPathStyle(platform.DetectPathStyle())
}

// FSPathStyle returns the native filesystem path of u, or ok=false when u has
// no path.
//
// The drive letter is lower-cased. An authority turns the result into a UNC
// path ("//host/share"), unless the path is just "/". A drive path loses its
// leading "/" ("/c:/x" becomes "c:/x"). Under Windows rules separators are
// rendered as backslashes.
//
// The scheme is not looked at: a non-file URI still yields a path-shaped
// string. The result is a pure function of the path, the authority and style.
func (u URI) FSPathStyle(style platform.PathStyle) (string, bool) {
	if u.path == "" {
		return "", false
	}

	p := NormalizePath(u.path, style)
	if u.authority != "" && len(p) > 1 {
		p = "//" + u.authority + p
	} else if m := driveLetterPath.FindStringSubmatch(p); m != nil && m[1] == "/" {
		p = p[1:]
	}

	return style.FromSlash(p), true
}

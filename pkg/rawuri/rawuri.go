// SPDX-License-Identifier: MPL-2.0

package rawuri

import (
	"cmp"
	"strings"

	"github.com/invowk/urikit/pkg/percent"
	"github.com/invowk/urikit/pkg/platform"
	"github.com/invowk/urikit/pkg/uri"
)

// authoritySafe keeps the authority delimiters readable in Unsplit, so that
// "user@host:8080" does not turn into "user%40host%3A8080".
const authoritySafe = "/:@[]"

// FromFSPath returns the file URI text for a native path, using the path
// style of the running process.
func FromFSPath(p string) (string, bool) {
	return FromFSPathStyle(p, platform.DetectPathStyle())
}

// FromFSPathStyle returns the file URI text for a native path.
//
// A "//server/share" prefix becomes the authority, the path is rooted and a
// leading drive letter is lower-cased. The drive colon stays unencoded
// ("file:///c:/x"). Bytes outside the unreserved set, NUL included, are
// percent-encoded; the conversion never fails.
func FromFSPathStyle(p string, style platform.PathStyle) (string, bool) {
	path, authority := splitFSPath(p, style)
	return Unsplit(uri.Parts{Scheme: uri.FileScheme, Authority: authority, Path: path}), true
}

// ToFSPath returns the native path named by URI text, using the path style
// of the running process.
func ToFSPath(u string) (string, bool) {
	return ToFSPathStyle(u, platform.DetectPathStyle())
}

// ToFSPathStyle returns the native path named by URI text.
//
// A file URI with an authority yields a UNC path, a drive path loses its
// leading "/" and has its drive lower-cased. Other schemes yield their path
// as is. The path is not checked for characters the filesystem would refuse.
func ToFSPathStyle(u string, style platform.PathStyle) (string, bool) {
	parts, err := uri.SplitParams(u)
	if err != nil {
		return "", false
	}

	value := parts.Path
	switch {
	case parts.Authority != "" && parts.Path != "" && parts.Scheme == uri.FileScheme:
		value = "//" + parts.Authority + parts.Path
	case uri.IsDrivePath(parts.Path):
		value = strings.TrimPrefix(uri.NormalizePath(parts.Path, platform.PathStylePOSIX), "/")
	}
	return style.FromSlash(value), true
}

// Scheme returns the lower-cased scheme of URI text, or "" when it has none.
func Scheme(u string) (string, bool) {
	parts, err := uri.SplitParams(u)
	if err != nil {
		return "", false
	}
	return parts.Scheme, true
}

// Split returns the six decoded components of URI text.
func Split(u string) (uri.Parts, bool) {
	parts, err := uri.SplitParams(u)
	if err != nil {
		return uri.Parts{}, false
	}
	return parts, true
}

// Unsplit encodes each component and joins them into URI text. A path
// starting with a drive letter keeps its first three bytes unencoded, so
// "/c:/x" is not written as "/c%3A/x".
func Unsplit(p uri.Parts) string {
	path := percent.Encode(p.Path)
	if uri.IsDrivePath(p.Path) {
		n := min(3, len(p.Path))
		path = p.Path[:n] + percent.Encode(p.Path[n:])
	}

	return uri.Parts{
		Scheme:    percent.Encode(p.Scheme),
		Authority: percent.EncodeSafe(p.Authority, authoritySafe),
		Path:      path,
		Params:    percent.Encode(p.Params),
		Query:     percent.Encode(p.Query),
		Fragment:  percent.Encode(p.Fragment),
	}.String()
}

// With returns URI text with some components replaced, using the path style
// of the running process. See WithStyle.
func With(u string, r uri.Parts) (string, bool) {
	return WithStyle(u, r, platform.DetectPathStyle())
}

// WithStyle returns URI text with the non-empty components of r replacing
// those of u; empty fields keep the current value. A replacement path is a
// native path and is normalized like FromFSPathStyle does, except that a UNC
// server in it is dropped.
func WithStyle(u string, r uri.Parts, style platform.PathStyle) (string, bool) {
	old, err := uri.SplitParams(u)
	if err != nil {
		return "", false
	}
	if r.Path != "" {
		r.Path, _ = splitFSPath(r.Path, style)
	}

	return Unsplit(uri.Parts{
		Scheme:    cmp.Or(r.Scheme, old.Scheme),
		Authority: cmp.Or(r.Authority, old.Authority),
		Path:      cmp.Or(r.Path, old.Path),
		Params:    cmp.Or(r.Params, old.Params),
		Query:     cmp.Or(r.Query, old.Query),
		Fragment:  cmp.Or(r.Fragment, old.Fragment),
	}), true
}

// splitFSPath turns a native path into a rooted URI path and an authority.
// "//server" with nothing after it yields authority "server" and path "/".
func splitFSPath(p string, style platform.PathStyle) (path, authority string) {
	path = style.ToSlash(p)

	if rest, ok := strings.CutPrefix(path, "//"); ok {
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			authority, path = rest[:i], rest[i:]
		} else {
			authority, path = rest, ""
		}
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return uri.NormalizePath(path, style), authority
}

// SPDX-License-Identifier: MPL-2.0

package uri

import (
	"strings"

	"github.com/invowk/urikit/pkg/percent"
)

// paramSchemes split ";params" off the last path segment (RFC 1808).
var paramSchemes = map[string]bool{
	"": true, "ftp": true, "hdl": true, "prospero": true, "http": true, "imap": true,
	"https": true, "shttp": true, "rtsp": true, "rtsps": true, "rtspu": true, "sip": true,
	"sips": true, "mms": true, "sftp": true, "tel": true,
}

// netlocSchemes are written with "//" even when the authority is empty.
var netlocSchemes = map[string]bool{
	"": true, "ftp": true, "http": true, "gopher": true, "nntp": true, "telnet": true,
	"imap": true, "wais": true, "file": true, "mms": true, "https": true, "shttp": true,
	"snews": true, "prospero": true, "rtsp": true, "rtsps": true, "rtspu": true,
	"rsync": true, "svn": true, "svn+ssh": true, "sftp": true, "nfs": true, "git": true,
	"git+ssh": true, "ws": true, "wss": true, "itms-services": true,
}

// Parts holds the six generic components of URI text. Depending on where it
// comes from the values are raw (still percent-encoded) or decoded.
type Parts struct {
	Scheme    string `json:"scheme" yaml:"scheme" toml:"scheme"`
	Authority string `json:"authority" yaml:"authority" toml:"authority"`
	Path      string `json:"path" yaml:"path" toml:"path"`
	Params    string `json:"params" yaml:"params" toml:"params"`
	Query     string `json:"query" yaml:"query" toml:"query"`
	Fragment  string `json:"fragment" yaml:"fragment" toml:"fragment"`
}

// Parse parses URI text.
//
// The text is split with the generic scheme:[//authority]path[?query][#fragment]
// grammar first and every component is percent-decoded afterwards, so an
// escaped "/" inside a segment never acts as a separator during the split.
// The components then go through New.
func Parse(s string) (URI, error) {
	parts, err := Split(s)
	if err != nil {
		return URI{}, err
	}
	return New(Components{
		Scheme:    parts.Scheme,
		Authority: parts.Authority,
		Path:      parts.Path,
		Query:     parts.Query,
		Fragment:  parts.Fragment,
	})
}

// MustParse is like Parse but panics on error. It is meant for constants and
// tests.
func MustParse(s string) URI {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Split splits URI text into decoded components. A ";" in the path is kept
// as part of the path; Params is always empty.
func Split(s string) (Parts, error) {
	raw, err := SplitRaw(s)
	if err != nil {
		return Parts{}, err
	}
	return raw.decode(), nil
}

// SplitParams is like Split but also separates ";params" from the last path
// segment for schemes that use them (http, https, ftp, sip, ...; not file).
func SplitParams(s string) (Parts, error) {
	raw, err := SplitRaw(s)
	if err != nil {
		return Parts{}, err
	}
	if paramSchemes[raw.Scheme] && strings.Contains(raw.Path, ";") {
		raw.Path, raw.Params = splitParams(raw.Path)
	}
	return raw.decode(), nil
}

// SplitRaw splits URI text without decoding anything.
//
// Leading spaces and control characters are dropped, as are tabs and line
// breaks anywhere in the text. Other control characters are kept as data. An
// authority with an unbalanced "[" or "]" is an *InvalidURIError.
//
// A scheme is recognized only when the text before the first ":" starts with
// an ASCII letter and holds only scheme characters; it is lower-cased.
func SplitRaw(s string) (Parts, error) {
	s = sanitize(s)

	var p Parts
	rest := s
	if i := strings.IndexByte(rest, ':'); i > 0 && isSchemeText(rest[:i]) {
		p.Scheme = strings.ToLower(rest[:i])
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		end := len(rest)
		if i := strings.IndexAny(rest[2:], "/?#"); i >= 0 {
			end = i + 2
		}
		p.Authority = rest[2:end]
		rest = rest[end:]

		open := strings.Contains(p.Authority, "[")
		closed := strings.Contains(p.Authority, "]")
		if open != closed {
			return Parts{}, &InvalidURIError{Field: string(ComponentAuthority), Value: p.Authority, Reason: "unbalanced brackets in IPv6 literal"}
		}
	}

	rest, p.Fragment, _ = strings.Cut(rest, "#")
	p.Path, p.Query, _ = strings.Cut(rest, "?")
	return p, nil
}

// String reassembles the parts verbatim; nothing is encoded. The authority
// marker "//" is written when there is an authority, or when the scheme is one
// that conventionally carries one and the path does not already start with
// "//". ";params" is appended to the path when present.
func (p Parts) String() string {
	var b strings.Builder

	path := p.Path
	if p.Params != "" {
		path += ";" + p.Params
	}

	if p.Scheme != "" {
		b.WriteString(p.Scheme)
		b.WriteByte(':')
	}
	if p.Authority != "" || (p.Scheme != "" && netlocSchemes[p.Scheme] && !strings.HasPrefix(path, "//")) {
		if path != "" && path[0] != '/' {
			path = "/" + path
		}
		b.WriteString("//")
		b.WriteString(p.Authority)
	}
	b.WriteString(path)
	if p.Query != "" {
		b.WriteByte('?')
		b.WriteString(p.Query)
	}
	if p.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(p.Fragment)
	}
	return b.String()
}

func (p Parts) decode() Parts {
	return Parts{
		Scheme:    percent.Decode(p.Scheme),
		Authority: percent.Decode(p.Authority),
		Path:      percent.Decode(p.Path),
		Params:    percent.Decode(p.Params),
		Query:     percent.Decode(p.Query),
		Fragment:  percent.Decode(p.Fragment),
	}
}

// splitParams separates params from the last path segment.
func splitParams(path string) (string, string) {
	start := strings.LastIndexByte(path, '/')
	if start < 0 {
		start = 0
	}
	i := strings.IndexByte(path[start:], ';')
	if i < 0 {
		return path, ""
	}
	i += start
	return path[:i], path[i+1:]
}

func sanitize(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool { return r <= ' ' })
	if strings.ContainsAny(s, "\t\r\n") {
		s = strings.NewReplacer("\t", "", "\r", "", "\n", "").Replace(s)
	}
	return s
}

func isSchemeText(s string) bool {
	if s == "" || !isASCIILetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isASCIILetter(c) && !('0' <= c && c <= '9') && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

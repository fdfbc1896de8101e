// SPDX-License-Identifier: MPL-2.0

package uri

import (
	"strings"

	"github.com/invowk/urikit/pkg/percent"
	"github.com/invowk/urikit/pkg/platform"
)

// String returns the canonical, percent-encoded form of u.
func (u URI) String() string {
	return u.AsString(true)
}

// AsString returns the text form of u using the path style of the running
// process. See FormatStyle.
func (u URI) AsString(encode bool) string {
	return u.FormatStyle(encode, platform.DetectPathStyle())
}

// FormatStyle returns the text form of u.
//
// With encode set, every component except the scheme is percent-encoded.
// Without it only "#" and "?" are escaped, which keeps the text parseable
// while leaving it readable. In both modes the host and port are lower-cased
// and the path gets the drive-letter normalization of NormalizePath.
//
// "//" follows the scheme when there is an authority, and always for the file
// scheme ("file:///tmp/x").
func (u URI) FormatStyle(encode bool, style platform.PathStyle) string {
	enc := percent.Encode
	if !encode {
		enc = percent.EncodeDelimiters
	}

	var b strings.Builder
	b.WriteString(u.scheme)
	b.WriteByte(':')

	authority := formatAuthority(u.authority, encode, enc)
	if authority != "" || u.scheme == FileScheme {
		b.WriteString("//")
	}
	b.WriteString(authority)

	if u.path != "" {
		b.WriteString(enc(NormalizePath(u.path, style)))
	}
	if u.query != "" {
		b.WriteByte('?')
		b.WriteString(enc(u.query))
	}
	if u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(enc(u.fragment))
	}
	return b.String()
}

// formatAuthority encodes [user[:password]@]host[:port]. The credential
// parts are encoded separately so their ":" survives; the host and port are
// lower-cased. A bracketed IPv6 literal is kept verbatim. Any other host is
// encoded, and its brackets are escaped even when encode is off so the
// authority parses back.
func formatAuthority(authority string, encode bool, enc func(string) string) string {
	if authority == "" {
		return ""
	}

	userinfo := ""
	if user, host, ok := strings.Cut(authority, "@"); ok {
		if name, password, hasPassword := cutLast(user, ':'); hasPassword {
			userinfo = enc(name) + ":" + enc(password)
		} else {
			userinfo = enc(user)
		}
		authority = host
	}

	encHost := func(h string) string {
		h = enc(h)
		if !encode {
			h = bracketEscaper.Replace(h)
		}
		return h
	}

	hostport := strings.ToLower(authority)
	if literal, rest, ok := cutIPLiteral(hostport); ok {
		if port, hasPort := strings.CutPrefix(rest, ":"); hasPort {
			hostport = literal + ":" + enc(port)
		} else {
			hostport = literal + encHost(rest)
		}
	} else if host, port, ok := cutLast(hostport, ':'); ok && !strings.Contains(port, "]") {
		hostport = encHost(host) + ":" + enc(port)
	} else {
		hostport = encHost(hostport)
	}

	if userinfo != "" {
		return userinfo + "@" + hostport
	}
	return hostport
}

var bracketEscaper = strings.NewReplacer("[", "%5B", "]", "%5D")

// cutIPLiteral splits "[v6]rest" when the bracketed text holds only hex
// digits, ":" and ".", with at least one ":".
func cutIPLiteral(hostport string) (literal, rest string, ok bool) {
	if !strings.HasPrefix(hostport, "[") {
		return "", hostport, false
	}
	end := strings.IndexByte(hostport, ']')
	if end < 0 {
		return "", hostport, false
	}
	inner := hostport[1:end]
	if !strings.Contains(inner, ":") {
		return "", hostport, false
	}
	for i := 0; i < len(inner); i++ {
		if c := inner[i]; !isHex(c) && c != ':' && c != '.' {
			return "", hostport, false
		}
	}
	return hostport[:end+1], hostport[end+1:], true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// cutLast slices s around the last instance of sep.
func cutLast(s string, sep byte) (before, after string, found bool) {
	if i := strings.LastIndexByte(s, sep); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// MarshalText implements encoding.TextMarshaler. The zero URI marshals to
// empty text.
func (u URI) MarshalText() ([]byte, error) {
	if u.IsZero() {
		return []byte{}, nil
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the
// zero URI; anything else must parse.
func (u *URI) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*u = URI{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

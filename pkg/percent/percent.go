// SPDX-License-Identifier: MPL-2.0

// Package percent implements the percent-encoding used by URI components.
//
// Encoding works on the UTF-8 bytes of its input: every byte outside the
// unreserved set (ALPHA / DIGIT / "-" / "." / "_" / "~") and the caller's
// safe set is written as %XX with upper-case hex digits. Decoding is lenient:
// a "%" that does not start a valid escape is kept as is.
package percent

import "strings"

const upperhex = "0123456789ABCDEF"

// delimiterReplacer escapes the two characters that would otherwise end a
// path or query early when the text is parsed again.
var delimiterReplacer = strings.NewReplacer("#", "%23", "?", "%3F")

// Encode percent-encodes s, leaving unreserved characters and "/" untouched.
func Encode(s string) string {
	return EncodeSafe(s, "/")
}

// EncodeSafe percent-encodes s, leaving unreserved characters and the ASCII
// characters listed in safe untouched.
func EncodeSafe(s, safe string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !shouldKeep(s[i], safe) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeep(c, safe) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

// EncodeDelimiters escapes only "#" and "?", leaving everything else raw.
// The result stays parseable as a single component.
func EncodeDelimiters(s string) string {
	return delimiterReplacer.Replace(s)
}

// Decode replaces every valid %XX escape with the byte it denotes.
// Malformed escapes ("%", "%4", "%zz") are copied through unchanged.
func Decode(s string) string {
	i := strings.IndexByte(s, '%')
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func shouldKeep(c byte, safe string) bool {
	if isUnreserved(c) {
		return true
	}
	return c < 0x80 && strings.IndexByte(safe, c) >= 0
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

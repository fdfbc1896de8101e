// SPDX-License-Identifier: MPL-2.0

package percent_test

import (
	"testing"

	"github.com/invowk/urikit/pkg/percent"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"unreserved", "AZaz09-._~", "AZaz09-._~"},
		{"slash is safe", "/a/b", "/a/b"},
		{"space", "/my file.txt", "/my%20file.txt"},
		{"drive colon", "/c:/x", "/c%3A/x"},
		{"delimiters", "a?b#c", "a%3Fb%23c"},
		{"sub-delims", "a=b&c", "a%3Db%26c"},
		{"percent", "100%", "100%25"},
		{"backslash", `f\oo`, "f%5Coo"},
		{"utf-8", "caf\u00e9", "caf%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := percent.Encode(tt.input); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeSafe(t *testing.T) {
	t.Parallel()

	if got := percent.EncodeSafe("user:pw@host/x", ":@"); got != "user:pw@host%2Fx" {
		t.Errorf("EncodeSafe() = %q, want %q", got, "user:pw@host%2Fx")
	}
	// Non-ASCII bytes are always escaped, even if listed as safe.
	if got := percent.EncodeSafe("\u00e9", "\u00e9"); got != "%C3%A9" {
		t.Errorf("EncodeSafe() = %q, want %q", got, "%C3%A9")
	}
}

func TestEncodeDelimiters(t *testing.T) {
	t.Parallel()

	got := percent.EncodeDelimiters("/a b/c?d#e")
	if got != "/a b/c%3Fd%23e" {
		t.Errorf("EncodeDelimiters() = %q, want %q", got, "/a b/c%3Fd%23e")
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no escapes", "/a/b", "/a/b"},
		{"space", "/my%20file", "/my file"},
		{"lower hex", "%c3%a9", "\u00e9"},
		{"encoded slash", "a%2Fb", "a/b"},
		{"trailing percent", "100%", "100%"},
		{"short escape", "%4", "%4"},
		{"invalid hex", "%zz%41", "%zzA"},
		{"double encoded", "%2541", "%41"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := percent.Decode(tt.input); got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeInvertsEncode(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "/c:/Program Files/x#1?.txt", "a%b", "\x00\xff", "\u65e5\u672c"}
	for _, in := range inputs {
		if got := percent.Decode(percent.Encode(in)); got != in {
			t.Errorf("Decode(Encode(%q)) = %q", in, got)
		}
	}
}

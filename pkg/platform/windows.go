// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

// WindowsReservedNames are the device names Windows refuses as file names,
// with or without an extension.
var WindowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// IsWindowsReservedName reports whether name is a reserved device name.
// The check is case-insensitive and ignores everything after the first dot,
// so "nul.txt" is reserved too.
func IsWindowsReservedName(name string) bool {
	base, _, _ := strings.Cut(name, ".")
	return WindowsReservedNames[strings.ToUpper(base)]
}

// ReservedSegment returns the first segment of p that is a reserved Windows
// device name. Both "/" and "\" separate segments.
func ReservedSegment(p string) (string, bool) {
	for _, seg := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if IsWindowsReservedName(seg) {
			return seg, true
		}
	}
	return "", false
}

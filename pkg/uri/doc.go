// SPDX-License-Identifier: MPL-2.0

// Package uri provides an immutable URI value and its conversions.
//
// A URI is built with New (from components), Parse (from text) or ForFile
// (from a native filesystem path). Construction validates the value; once
// built it never changes, and Where and Join return new values. URIs are
// comparable with == and safe to share between goroutines.
//
//	  foo://example.com:8042/over/there?name=ferret#nose
//	  \_/   \______________/\_________/ \_________/ \__/
//	   |           |            |            |        |
//	scheme     authority       path        query   fragment
//
// Components are stored decoded. String percent-encodes them again; FSPath
// derives a native path, folding Windows drive letters to lower case and
// turning an authority into a UNC share prefix.
//
// Functions without an explicit platform.PathStyle argument use the style of
// the running process (platform.DetectPathStyle).
package uri

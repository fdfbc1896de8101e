// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// The central type is PathStyle, which selects the filesystem path conventions
// (POSIX or Windows) applied when URIs are converted to and from native paths.
// The style of the running process is detected once and cached; every
// conversion also has a variant that takes an explicit PathStyle so that
// Windows rules can be exercised on any host.
package platform

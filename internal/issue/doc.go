// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries remediation hints, and the issue catalogue holds
// Markdown pages, rendered with glamour, that explain each kind of failure
// the CLI reports.
package issue

// SPDX-License-Identifier: MPL-2.0

// Package rawuri is the string-in/string-out form of package uri for callers
// that do not want the structured value type.
//
// Every function reports failure as ok=false instead of an error: malformed
// input is absorbed, so best-effort callers can skip a bad URI without
// inspecting why it was rejected. Splitting is delegated to uri.SplitParams,
// which means a URI rejected here is rejected there too.
//
// Unlike uri.URI, the functions work on six components (params included) and
// accept text without a scheme.
package rawuri

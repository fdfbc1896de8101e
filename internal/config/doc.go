// SPDX-License-Identifier: MPL-2.0

// Package config handles urikit configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/urikit/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/urikit/config.cue on macOS, %APPDATA%\urikit\config.cue
// on Windows), falling back to ./config.cue. The file is validated against an embedded
// CUE schema (config_schema.cue) and merged over the defaults; URIKIT_* environment
// variables override both.
package config

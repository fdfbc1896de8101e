// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the urikit CLI commands.
//
// Every command is a thin layer over pkg/uri and pkg/rawuri: it resolves the
// effective settings (config file, URIKIT_* environment, global flags), runs
// one library operation and renders the result as text, JSON, YAML or TOML.
package cmd

// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates user-supplied CUE files against an embedded schema.
//
// Decode runs the three steps every caller needs:
//
//  1. Compile the embedded schema
//  2. Compile the user data and unify it with a schema definition
//  3. Validate and decode the result into a Go value
//
// # Usage
//
//	//go:embed config_schema.cue
//	var schema []byte
//
//	values, err := cueutil.Decode[map[string]any](schema, data, "#Config",
//	    cueutil.WithFilename(path))
//	if err != nil {
//	    return err // *ValidationError carries the failing CUE paths
//	}
package cueutil

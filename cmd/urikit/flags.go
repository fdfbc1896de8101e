// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/invowk/urikit/internal/config"
)

type (
	// pathStyleFlag is the --path-style value. Invalid names are rejected
	// while flags are parsed.
	pathStyleFlag struct {
		value config.PathStyleMode
	}

	// outputFlag is the --output value.
	outputFlag struct {
		value config.OutputFormat
	}
)

var (
	_ pflag.Value = (*pathStyleFlag)(nil)
	_ pflag.Value = (*outputFlag)(nil)
)

func (f *pathStyleFlag) String() string { return string(f.value) }

// Set implements pflag.Value.
func (f *pathStyleFlag) Set(s string) error {
	m := config.PathStyleMode(strings.ToLower(strings.TrimSpace(s)))
	if valid, errs := m.IsValid(); !valid {
		return errs[0]
	}
	f.value = m
	return nil
}

// Type implements pflag.Value.
func (f *pathStyleFlag) Type() string { return "auto|posix|windows" }

func (f *outputFlag) String() string { return string(f.value) }

// Set implements pflag.Value.
func (f *outputFlag) Set(s string) error {
	o := config.OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if valid, errs := o.IsValid(); !valid {
		return errs[0]
	}
	f.value = o
	return nil
}

// Type implements pflag.Value.
func (f *outputFlag) Type() string { return "text|json|yaml|toml" }

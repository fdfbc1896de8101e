// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/urikit/internal/config"
	"github.com/invowk/urikit/pkg/rawuri"
	"github.com/invowk/urikit/pkg/uri"
)

// newLegacyCommand creates the `urikit legacy` command tree over pkg/rawuri.
// The string helpers report failure without a reason, so every failure exits
// with status 4.
func newLegacyCommand(app *App) *cobra.Command {
	legacyCmd := &cobra.Command{
		Use:   "legacy",
		Short: "String-in, string-out URI helpers",
		Long: `String-in, string-out URI helpers.

These commands work on URI text directly instead of the validated URI
value and never explain why they fail: malformed input exits with status 4.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	legacyCmd.AddCommand(
		&cobra.Command{
			Use:   "from-fs-path <path>",
			Short: "Convert a native path to file URI text",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, ok := rawuri.FromFSPathStyle(args[0], app.session.style)
				return app.legacyResult(cmd, "from-fs-path", args[0], s, ok)
			},
		},
		&cobra.Command{
			Use:   "to-fs-path <uri>",
			Short: "Convert URI text to a native path",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, ok := rawuri.ToFSPathStyle(args[0], app.session.style)
				return app.legacyResult(cmd, "to-fs-path", args[0], s, ok)
			},
		},
		&cobra.Command{
			Use:   "scheme <uri>",
			Short: "Print the scheme of URI text",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, ok := rawuri.Scheme(args[0])
				return app.legacyResult(cmd, "scheme", args[0], s, ok)
			},
		},
		&cobra.Command{
			Use:   "split <uri>",
			Short: "Split URI text into six decoded components",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				parts, ok := rawuri.Split(args[0])
				if !ok {
					return app.fail(cmd, fmt.Errorf("split %q: %w", args[0], errLegacyFailed))
				}
				if app.session.output == config.OutputText {
					writeFields(app.stdout, partsFields(parts))
					return nil
				}
				return writeStructured(app.stdout, app.session.output, parts)
			},
		},
		newLegacyUnsplitCommand(app),
		newLegacyWithCommand(app),
	)

	return legacyCmd
}

func newLegacyUnsplitCommand(app *App) *cobra.Command {
	var p uri.Parts

	cmd := &cobra.Command{
		Use:   "unsplit",
		Short: "Join six decoded components into URI text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := rawuri.Unsplit(p)
			return app.writeResult(s, valueView{Value: s})
		},
	}
	addPartsFlags(cmd, &p)

	return cmd
}

func newLegacyWithCommand(app *App) *cobra.Command {
	var p uri.Parts

	cmd := &cobra.Command{
		Use:   "with <uri>",
		Short: "Replace the components given as flags",
		Long: `Replace the components given as non-empty flags and keep the others.
A replacement --path is a native path and is normalized like from-fs-path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := rawuri.WithStyle(args[0], p, app.session.style)
			return app.legacyResult(cmd, "with", args[0], s, ok)
		},
	}
	addPartsFlags(cmd, &p)

	return cmd
}

func addPartsFlags(cmd *cobra.Command, p *uri.Parts) {
	cmd.Flags().StringVar(&p.Scheme, "scheme", "", "scheme")
	cmd.Flags().StringVar(&p.Authority, "authority", "", "authority")
	cmd.Flags().StringVar(&p.Path, "path", "", "path")
	cmd.Flags().StringVar(&p.Params, "params", "", "path parameters (after ';')")
	cmd.Flags().StringVar(&p.Query, "query", "", "query")
	cmd.Flags().StringVar(&p.Fragment, "fragment", "", "fragment")
}

// legacyResult prints the value of a legacy helper or fails with status 4.
func (a *App) legacyResult(cmd *cobra.Command, op, input, value string, ok bool) error {
	if !ok {
		return a.fail(cmd, fmt.Errorf("%s %q: %w", op, input, errLegacyFailed))
	}
	return a.writeResult(value, valueView{Value: value})
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the urikit command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "urikit",
		Short: "Parse, build and convert URIs",
		Long: TitleStyle.Render("urikit") + SubtitleStyle.Render(" - Parse, build and convert URIs") + `

urikit splits URIs into their components, builds them back with
percent-encoding, and converts file URIs to native paths and back,
including Windows drive letters and UNC shares.

` + SubtitleStyle.Render("Examples:") + `
  urikit parse 'https://example.com/a%20b?q=1#top'
  urikit from-path 'C:\Users\me\notes.txt' --path-style windows
  urikit fspath file:///tmp/x
  urikit join https://example.com/docs/ ../api/index.html
  urikit with https://example.com/a --set scheme=http --unset query
  urikit config show`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.startSession(cmd.Context(), cmd.Flags())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.flags.configFile, "config", "", "config file (default is $HOME/.config/urikit/config.cue)")
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output (error chains, issue pages, debug log)")
	flags.BoolVar(&app.flags.raw, "raw", false, "print URIs without percent-encoding (only '#' and '?' are escaped)")
	flags.Var(&app.flags.pathStyle, "path-style", "filesystem path rules (default from config)")
	flags.VarP(&app.flags.output, "output", "o", "output format (default from config)")

	rootCmd.AddCommand(
		newParseCommand(app),
		newFormatCommand(app),
		newFSPathCommand(app),
		newFromPathCommand(app),
		newJoinCommand(app),
		newWithCommand(app),
		newLegacyCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI with production dependencies.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// fang overrides rootCmd.Version, so the version goes through fang.WithVersion.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

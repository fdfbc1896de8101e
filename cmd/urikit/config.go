// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/invowk/urikit/internal/config"
	"github.com/invowk/urikit/internal/issue"
)

// newConfigCommand creates the `urikit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage urikit configuration",
		Long: `Manage urikit configuration.

Configuration is stored in:
  - Linux: ~/.config/urikit/config.cue
  - macOS: ~/Library/Application Support/urikit/config.cue
  - Windows: %APPDATA%\urikit\config.cue

A config.cue in the working directory is used when the directory above has
none. URIKIT_<KEY> environment variables (e.g. URIKIT_OUTPUT, URIKIT_UI_VERBOSE)
override the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfig(cmd)
		},
	})

	var printOnly bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if printOnly {
				_, err := fmt.Fprint(app.stdout, config.GenerateCUE(config.DefaultConfig()))
				return err
			}
			return app.initConfig(cmd)
		},
	}
	initCmd.Flags().BoolVar(&printOnly, "print", false, "print the default configuration instead of writing it")
	cfgCmd.AddCommand(initCmd)

	return cfgCmd
}

// showConfig loads the configuration again so that load errors fail the
// command instead of falling back to the defaults.
func (a *App) showConfig(cmd *cobra.Command) error {
	cfg, err := a.Config.Load(cmd.Context(), a.loadOptions())
	if err != nil {
		return a.fail(cmd, err)
	}

	if a.session.output != config.OutputText {
		return writeStructured(a.stdout, a.session.output, cfg)
	}

	fmt.Fprintln(a.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(a.stdout)
	source := cfg.Source
	if source == "" {
		source = SubtitleStyle.Render("(using defaults)")
	}
	fmt.Fprintf(a.stdout, "%s: %s\n", CmdStyle.Render("Config file"), source)
	fmt.Fprintln(a.stdout)

	writeFields(a.stdout, []field{
		{"encode", strconv.FormatBool(cfg.Encode)},
		{"path_style", cfg.PathStyle.String()},
		{"output", cfg.Output.String()},
		{"log_level", cfg.LogLevel.String()},
	})
	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", CmdStyle.Render("ui"))
	fmt.Fprintf(a.stdout, "  verbose: %s\n", SuccessStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))
	fmt.Fprintf(a.stdout, "  color_scheme: %s\n", SuccessStyle.Render(cfg.UI.ColorScheme.String()))

	return nil
}

func (a *App) initConfig(cmd *cobra.Command) error {
	path, created, err := config.CreateDefaultConfig(a.loadOptions())
	if err != nil {
		return a.fail(cmd, issue.NewErrorContext().
			WithOperation("create configuration").
			WithSuggestion("Check that the configuration directory is writable").
			WithSuggestion("Use 'urikit config init --print' and save the output yourself").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError())
	}

	if !created {
		fmt.Fprintf(a.stdout, "%s %s\n", WarningStyle.Render("Configuration already exists at"), path)
		return nil
	}
	fmt.Fprintf(a.stdout, "%s %s\n", SuccessStyle.Render("Created default configuration at"), path)
	return nil
}

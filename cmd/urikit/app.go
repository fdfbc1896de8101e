// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/invowk/urikit/internal/config"
	"github.com/invowk/urikit/pkg/platform"
	"github.com/invowk/urikit/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. All command handlers
	// receive an App and read the effective settings from its session.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer

		flags   globalFlags
		session *session
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// globalFlags holds the persistent flags of the root command.
	globalFlags struct {
		configFile string
		verbose    bool
		raw        bool
		pathStyle  pathStyleFlag
		output     outputFlag
	}

	// session is the effective configuration of one invocation: the loaded
	// config with explicitly set flags on top.
	session struct {
		cfg        *config.Config
		encode     bool
		style      platform.PathStyle
		output     config.OutputFormat
		verbose    bool
		issueStyle string
		logger     *log.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// loadOptions turns --config into provider options.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: types.FilesystemPath(a.flags.configFile)}
}

// startSession loads the configuration and applies the flags that were set
// on the command line. A configuration that fails to load is reported as a
// warning and replaced by the defaults, so a broken file never blocks URI work.
func (a *App) startSession(ctx context.Context, flags *pflag.FlagSet) error {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		_, _ = io.WriteString(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.flags.verbose)+"\n")
		cfg = config.DefaultConfig()
	}

	s := &session{
		cfg:     cfg,
		encode:  cfg.Encode && !a.flags.raw,
		output:  cfg.Output,
		verbose: a.flags.verbose || cfg.UI.Verbose,
	}

	mode := cfg.PathStyle
	if flags.Changed("path-style") {
		mode = a.flags.pathStyle.value
	}
	if s.style, err = mode.Resolve(); err != nil {
		return err
	}
	if flags.Changed("output") {
		s.output = a.flags.output.value
	}

	s.issueStyle = applyColorScheme(cfg.UI.ColorScheme)
	s.logger = newLogger(a.stderr, cfg.LogLevel, s.verbose)
	s.logger.Debug("session ready",
		"config", sourceOrDefaults(cfg.Source),
		"path_style", s.style,
		"output", s.output,
		"encode", s.encode,
	)

	a.session = s
	return nil
}

func sourceOrDefaults(source string) string {
	if source == "" {
		return "(defaults)"
	}
	return source
}

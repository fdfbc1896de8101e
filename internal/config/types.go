// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/invowk/urikit/pkg/platform"
)

const (
	// PathStyleAuto follows the operating system urikit runs on.
	PathStyleAuto PathStyleMode = platform.PathStyleAuto
	// PathStylePOSIX forces POSIX path rules.
	PathStylePOSIX PathStyleMode = PathStyleMode(platform.PathStylePOSIX)
	// PathStyleWindows forces Windows path rules.
	PathStyleWindows PathStyleMode = PathStyleMode(platform.PathStyleWindows)

	// OutputText renders results as styled text.
	OutputText OutputFormat = "text"
	// OutputJSON renders results as indented JSON.
	OutputJSON OutputFormat = "json"
	// OutputYAML renders results as YAML.
	OutputYAML OutputFormat = "yaml"
	// OutputTOML renders results as TOML.
	OutputTOML OutputFormat = "toml"

	// LogLevelDebug logs everything.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs informational messages and above.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"

	// ColorSchemeAuto detects the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark palette.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light palette.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidPathStyleMode is returned when a PathStyleMode value is not recognized.
	ErrInvalidPathStyleMode = errors.New("invalid path style")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// PathStyleMode is the configured path style, platform.PathStyle plus "auto".
	PathStyleMode string

	// InvalidPathStyleModeError is returned when a PathStyleMode value is not recognized.
	InvalidPathStyleModeError struct {
		Value PathStyleMode
	}

	// OutputFormat selects how structured results are rendered.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// LogLevel is the minimum severity written to the log.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// ColorScheme selects the palette of styled output.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It collects the field-level errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Encode selects percent-encoded URI output.
		Encode bool `json:"encode" yaml:"encode" toml:"encode" mapstructure:"encode"`
		// PathStyle picks the filesystem path rules.
		PathStyle PathStyleMode `json:"path_style" yaml:"path_style" toml:"path_style" mapstructure:"path_style"`
		// Output is the rendering of structured results.
		Output OutputFormat `json:"output" yaml:"output" toml:"output" mapstructure:"output"`
		// LogLevel is the minimum level written to stderr.
		LogLevel LogLevel `json:"log_level" yaml:"log_level" toml:"log_level" mapstructure:"log_level"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" yaml:"ui" toml:"ui" mapstructure:"ui"`

		// Source is the file the configuration was read from, empty for defaults.
		Source string `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose prints error chains and issue pages.
		Verbose bool `json:"verbose" yaml:"verbose" toml:"verbose" mapstructure:"verbose"`
		// ColorScheme forces the palette of styled output.
		ColorScheme ColorScheme `json:"color_scheme" yaml:"color_scheme" toml:"color_scheme" mapstructure:"color_scheme"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Encode:    true,
		PathStyle: PathStyleAuto,
		Output:    OutputText,
		LogLevel:  LogLevelWarn,
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	for _, check := range []func() (bool, []error){
		c.PathStyle.IsValid,
		c.Output.IsValid,
		c.LogLevel.IsValid,
		c.UI.ColorScheme.IsValid,
	} {
		if valid, fieldErrs := check(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return "invalid config: " + e.FieldErrors[0].Error()
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the PathStyleMode.
func (m PathStyleMode) String() string { return string(m) }

// IsValid returns whether the PathStyleMode is auto, posix or windows.
func (m PathStyleMode) IsValid() (bool, []error) {
	switch m {
	case PathStyleAuto, PathStylePOSIX, PathStyleWindows:
		return true, nil
	default:
		return false, []error{&InvalidPathStyleModeError{Value: m}}
	}
}

// Resolve turns the mode into a concrete platform.PathStyle, detecting the
// host style for "auto".
func (m PathStyleMode) Resolve() (platform.PathStyle, error) {
	return platform.ParsePathStyle(string(m))
}

// Error implements the error interface for InvalidPathStyleModeError.
func (e *InvalidPathStyleModeError) Error() string {
	return fmt.Sprintf("invalid path style %q (valid: auto, posix, windows)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidPathStyleModeError) Unwrap() error { return ErrInvalidPathStyleMode }

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the supported formats.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case OutputText, OutputJSON, OutputYAML, OutputTOML:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, yaml, toml)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	fredbiuri "github.com/fredbi/uri"
	"github.com/spf13/cobra"

	"github.com/invowk/urikit/internal/config"
	"github.com/invowk/urikit/pkg/platform"
	"github.com/invowk/urikit/pkg/uri"
)

func newParseCommand(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse <uri>",
		Short: "Split a URI into its components",
		Long: `Parse a URI and print its decoded components together with the
filesystem path it maps to.

With --strict the serialized URI is additionally checked against RFC 3986.`,
		Example: `  urikit parse 'https://user@example.com:8080/a%20b?x=1#top'
  urikit parse file:///c:/Windows --path-style windows -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.Parse(args[0])
			if err != nil {
				return app.fail(cmd, err)
			}
			if strict {
				if err := strictCheck(u); err != nil {
					return app.fail(cmd, err)
				}
				app.session.logger.Debug("strict check passed", "uri", u.String())
			}

			v := app.session.uriView(u)
			if app.session.output == config.OutputText {
				writeFields(app.stdout, v.fields())
				return nil
			}
			return writeStructured(app.stdout, app.session.output, v)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "also validate the encoded URI against RFC 3986")

	return cmd
}

// warnReserved logs a warning when a Windows-style path names a device
// such as NUL or COM1. The conversion itself still succeeds.
func (a *App) warnReserved(p string) {
	if !a.session.style.IsWindows() {
		return
	}
	if seg, ok := platform.ReservedSegment(p); ok {
		a.session.logger.Warn("path contains a reserved Windows device name", "segment", seg, "path", p)
	}
}

// strictCheck validates the percent-encoded form of u with an independent
// RFC 3986 parser.
func strictCheck(u uri.URI) error {
	if _, err := fredbiuri.Parse(u.String()); err != nil {
		return fmt.Errorf("%w: %s: %w", errStrictCheck, u, err)
	}
	return nil
}

func newFormatCommand(app *App) *cobra.Command {
	var c uri.Components

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Build a URI from components",
		Long: `Build a URI from its components and print it percent-encoded
(or with --raw, readable).

For the http, https and file schemes a missing leading "/" is added to the path.`,
		Example: `  urikit format --scheme https --authority example.com --path 'a b' --query 'q=1'
  urikit format --scheme file --path 'C:\x' --raw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.New(c)
			if err != nil {
				return app.fail(cmd, err)
			}
			return app.writeURI(u)
		},
	}

	cmd.Flags().StringVar(&c.Scheme, "scheme", "", "scheme, e.g. https or file")
	cmd.Flags().StringVar(&c.Authority, "authority", "", "authority: [user[:password]@]host[:port]")
	cmd.Flags().StringVar(&c.Path, "path", "", "decoded path")
	cmd.Flags().StringVar(&c.Query, "query", "", "decoded query")
	cmd.Flags().StringVar(&c.Fragment, "fragment", "", "decoded fragment")

	return cmd
}

func newFSPathCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fspath <uri>",
		Short: "Convert a URI to a native filesystem path",
		Long: `Print the native filesystem path of a URI.

The scheme is not checked. A URI without a path exits with status 4.`,
		Example: `  urikit fspath file:///tmp/notes.txt
  urikit fspath file://server/share/x --path-style windows`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.Parse(args[0])
			if err != nil {
				return app.fail(cmd, err)
			}
			p, ok := u.FSPathStyle(app.session.style)
			if !ok {
				return app.fail(cmd, fmt.Errorf("%s: %w", args[0], errPathAbsent))
			}
			app.warnReserved(p)
			return app.writeResult(p, pathView{URI: u.FormatStyle(app.session.encode, app.session.style), FSPath: p})
		},
	}
}

func newFromPathCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "from-path <path>",
		Short: "Build a file URI from a native filesystem path",
		Long: `Build a file URI from a native path.

With the windows path style, "\" separates segments, drive letters are
lower-cased and "\\server\share" becomes the authority "server".`,
		Example: `  urikit from-path /tmp/a b.txt
  urikit from-path '\\server\share\doc.txt' --path-style windows`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.warnReserved(args[0])
			u, err := uri.ForFileStyle(args[0], app.session.style)
			if err != nil {
				return app.fail(cmd, err)
			}
			return app.writeURI(u)
		},
	}
}

func newJoinCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "join <uri> <segment>",
		Short: "Join a path segment onto a URI path",
		Long: `Join a segment onto the path of a URI and clean the result ("." and ".."
are resolved, repeated "/" collapse). An absolute segment replaces the path.
Query and fragment are kept.`,
		Example: `  urikit join https://example.com/docs/ ../api/index.html`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.Parse(args[0])
			if err != nil {
				return app.fail(cmd, err)
			}
			joined, err := u.Join(args[1])
			if err != nil {
				return app.fail(cmd, err)
			}
			return app.writeURI(joined)
		},
	}
}

func newWithCommand(app *App) *cobra.Command {
	var (
		sets   []string
		unsets []string
	)

	cmd := &cobra.Command{
		Use:   "with <uri>",
		Short: "Replace or remove URI components",
		Long: `Derive a new URI by replacing (--set name=value) or removing (--unset name)
components. Valid names are scheme, authority, path, query and fragment;
unknown names are ignored. The result must still be a valid URI.`,
		Example: `  urikit with https://example.com/a?q=1 --set scheme=http --unset query`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.Parse(args[0])
			if err != nil {
				return app.fail(cmd, err)
			}

			fields, err := changeFields(sets, unsets)
			if err != nil {
				return app.fail(cmd, err)
			}
			for name := range fields {
				if _, ok := uri.ParseComponent(name); !ok {
					app.session.logger.Debug("ignoring unknown component", "name", name)
				}
			}

			changed, err := u.WhereFields(fields)
			if err != nil {
				return app.fail(cmd, err)
			}
			return app.writeURI(changed)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "replace a component (name=value, repeatable)")
	cmd.Flags().StringArrayVar(&unsets, "unset", nil, "remove a component (repeatable)")

	return cmd
}

// changeFields turns --set and --unset values into the map WhereFields
// takes. --unset wins over --set for the same name.
func changeFields(sets, unsets []string) (map[string]*string, error) {
	fields := make(map[string]*string, len(sets)+len(unsets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected name=value", s)
		}
		fields[name] = &value
	}
	for _, name := range unsets {
		fields[name] = nil
	}
	return fields, nil
}

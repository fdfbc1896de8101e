// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/invowk/urikit/internal/issue"
	"github.com/invowk/urikit/pkg/platform"
	"github.com/invowk/urikit/pkg/types"
	"github.com/invowk/urikit/pkg/uri"
)

var (
	// errPathAbsent is returned when a URI has no filesystem path.
	errPathAbsent = errors.New("uri has no path")
	// errLegacyFailed is returned when a legacy conversion yields nothing.
	errLegacyFailed = errors.New("conversion failed")
	// errStrictCheck wraps RFC 3986 validation failures of --strict.
	errStrictCheck = errors.New("strict check failed")
)

// classifyError maps an error to the exit code and the catalogue page that
// explains it. Id 0 means no page.
func classifyError(err error) (types.ExitCode, issue.Id) {
	switch {
	case errors.Is(err, errStrictCheck):
		return types.ExitInvalidURI, issue.StrictCheckFailedId
	case errors.Is(err, uri.ErrInvalidOperation):
		return types.ExitInvalidOperation, issue.InvalidOperationId
	case errors.Is(err, uri.ErrInvalidURI):
		return types.ExitInvalidURI, issue.InvalidURIId
	case errors.Is(err, errPathAbsent):
		return types.ExitAbsent, issue.PathAbsentId
	case errors.Is(err, errLegacyFailed):
		return types.ExitAbsent, issue.LegacyConversionFailedId
	case errors.Is(err, platform.ErrInvalidPathStyle):
		return types.ExitFailure, issue.InvalidPathStyleId
	default:
		return types.ExitFailure, issue.IdOf(err)
	}
}

// fail renders err to stderr and turns it into an ExitError. Cobra's own
// error and usage output is silenced since the message is already printed.
func (a *App) fail(cmd *cobra.Command, err error) error {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	code, id := classifyError(err)
	verbose, style := a.flags.verbose, "auto"
	if a.session != nil {
		verbose, style = a.session.verbose, a.session.issueStyle
	}
	renderError(a.stderr, err, id, verbose, style)
	return &ExitError{Code: code, Err: err}
}

// renderError prints the error and, in verbose mode, the issue page.
func renderError(w io.Writer, err error, id issue.Id, verbose bool, style string) {
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	if !verbose || id == 0 {
		return
	}
	if page := issue.Get(id); page != nil {
		rendered, renderErr := page.Render(style)
		if renderErr != nil {
			fmt.Fprintln(w, WarningStyle.Render("Warning: ")+"failed to render issue page: "+renderErr.Error())
			return
		}
		fmt.Fprint(w, rendered)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

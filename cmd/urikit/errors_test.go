// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/invowk/urikit/internal/issue"
	"github.com/invowk/urikit/pkg/platform"
	"github.com/invowk/urikit/pkg/types"
	"github.com/invowk/urikit/pkg/uri"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	_, parseErr := uri.Parse("no-scheme")
	_, joinErr := uri.MustParse("foo:?q").Join("x")
	_, styleErr := platform.ParsePathStyle("dos")

	tests := []struct {
		name     string
		err      error
		wantCode types.ExitCode
		wantId   issue.Id
	}{
		{"invalid uri", parseErr, types.ExitInvalidURI, issue.InvalidURIId},
		{"wrapped invalid uri", fmt.Errorf("reading input: %w", parseErr), types.ExitInvalidURI, issue.InvalidURIId},
		{"invalid operation", joinErr, types.ExitInvalidOperation, issue.InvalidOperationId},
		{"path absent", fmt.Errorf("mailto:: %w", errPathAbsent), types.ExitAbsent, issue.PathAbsentId},
		{"legacy failure", errLegacyFailed, types.ExitAbsent, issue.LegacyConversionFailedId},
		{"strict check wins over invalid uri", fmt.Errorf("%w: %w", errStrictCheck, parseErr), types.ExitInvalidURI, issue.StrictCheckFailedId},
		{"path style", styleErr, types.ExitFailure, issue.InvalidPathStyleId},
		{
			"actionable error",
			issue.NewErrorContext().WithOperation("load configuration").WithIssue(issue.ConfigLoadFailedId).BuildError(),
			types.ExitFailure,
			issue.ConfigLoadFailedId,
		},
		{"unclassified", errors.New("boom"), types.ExitFailure, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, id := classifyError(tt.err)
			if code != tt.wantCode || id != tt.wantId {
				t.Errorf("classifyError(%v) = (%d, %d), want (%d, %d)", tt.err, code, id, tt.wantCode, tt.wantId)
			}
			if !code.IsSuccess() && code.Validate() != nil {
				t.Errorf("exit code %d out of range", code)
			}
		})
	}
}

func TestRenderError(t *testing.T) {
	t.Parallel()

	err := issue.NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Run 'urikit config init --print'").
		Wrap(errors.New("bad value")).
		BuildError()

	var quiet bytes.Buffer
	renderError(&quiet, err, issue.ConfigLoadFailedId, false, "notty")
	if !strings.Contains(quiet.String(), "Error: failed to load configuration: bad value") {
		t.Errorf("quiet output = %q", quiet.String())
	}
	if strings.Contains(quiet.String(), "Error chain") || strings.Contains(quiet.String(), "Failed to load configuration") {
		t.Errorf("quiet output should hide chain and issue page: %q", quiet.String())
	}

	var loud bytes.Buffer
	renderError(&loud, err, issue.ConfigLoadFailedId, true, "notty")
	for _, want := range []string{"Error chain:", "Run 'urikit config init --print'", "Failed to load configuration"} {
		if !strings.Contains(loud.String(), want) {
			t.Errorf("verbose output missing %q:\n%s", want, loud.String())
		}
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	err := &ExitError{Code: types.ExitAbsent, Err: cause}
	if err.Error() != "cause" || !errors.Is(err, cause) {
		t.Errorf("ExitError with cause = %q", err.Error())
	}
	if got := (&ExitError{Code: types.ExitInvalidURI}).Error(); got != "exit status 2" {
		t.Errorf("ExitError without cause = %q, want %q", got, "exit status 2")
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/urikit/internal/config"
	"github.com/invowk/urikit/pkg/types"
)

func TestConfigShow(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "urikit.cue")
	if err := os.WriteFile(path, []byte("output: \"yaml\"\nui: color_scheme: \"auto\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := runCLI(t, config.NewProvider(), "config", "show", "--config", path, "-o", "json")
	if r.err != nil {
		t.Fatalf("config show: %v\nstderr: %s", r.err, r.stderr)
	}
	var got config.Config
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, r.stdout)
	}
	if got.Output != config.OutputYAML || !got.Encode {
		t.Errorf("config show = %+v", got)
	}

	r = runCLI(t, config.NewProvider(), "config", "show", "--config", path, "-o", "text")
	if r.err != nil {
		t.Fatalf("config show: %v", r.err)
	}
	for _, want := range []string{"Current Configuration", path, "output:", "yaml", "color_scheme: auto"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("text output missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestConfigShow_InvalidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.cue")
	if err := os.WriteFile(path, []byte(`output: "xml"`), 0o644); err != nil {
		t.Fatal(err)
	}

	r := runCLI(t, config.NewProvider(), "config", "show", "--config", path)
	if r.exitCode() != types.ExitFailure {
		t.Fatalf("exit code = %d, want %d", r.exitCode(), types.ExitFailure)
	}
	// Once as the start-up warning, once as the command error.
	if !strings.Contains(r.stderr, "Warning: ") || !strings.Contains(r.stderr, "Error: failed to load configuration") {
		t.Errorf("stderr = %q", r.stderr)
	}
}

func TestConfigInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sub", "config.cue")

	r := runCLI(t, config.NewProvider(), "config", "init", "--config", path)
	if r.err != nil {
		t.Fatalf("config init: %v\nstderr: %s", r.err, r.stderr)
	}
	if !strings.Contains(r.stdout, "Created default configuration at") {
		t.Errorf("stdout = %q", r.stdout)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if string(data) != config.GenerateCUE(config.DefaultConfig()) {
		t.Errorf("config file content:\n%s", data)
	}

	r = runCLI(t, config.NewProvider(), "config", "init", "--config", path)
	if r.err != nil || !strings.Contains(r.stdout, "already exists") {
		t.Errorf("second init: err = %v, stdout = %q", r.err, r.stdout)
	}
}

func TestConfigInit_Print(t *testing.T) {
	t.Parallel()

	r := runCLI(t, nil, "config", "init", "--print")
	if r.err != nil {
		t.Fatalf("config init --print: %v", r.err)
	}
	if r.stdout != config.GenerateCUE(config.DefaultConfig()) {
		t.Errorf("stdout = %q", r.stdout)
	}
}

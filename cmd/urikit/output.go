// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/invowk/urikit/internal/config"
	"github.com/invowk/urikit/pkg/uri"
)

type (
	// uriView is the structured rendering of a URI.
	uriView struct {
		URI       string `json:"uri" yaml:"uri" toml:"uri"`
		Scheme    string `json:"scheme" yaml:"scheme" toml:"scheme"`
		Authority string `json:"authority" yaml:"authority" toml:"authority"`
		Path      string `json:"path" yaml:"path" toml:"path"`
		Query     string `json:"query" yaml:"query" toml:"query"`
		Fragment  string `json:"fragment" yaml:"fragment" toml:"fragment"`
		FSPath    string `json:"fs_path,omitempty" yaml:"fs_path,omitempty" toml:"fs_path,omitempty"`
	}

	// pathView is the structured rendering of a filesystem path conversion.
	pathView struct {
		URI    string `json:"uri" yaml:"uri" toml:"uri"`
		FSPath string `json:"fs_path" yaml:"fs_path" toml:"fs_path"`
	}

	// valueView wraps a scalar result so every structured format gets a document.
	valueView struct {
		Value string `json:"value" yaml:"value" toml:"value"`
	}

	// field is one row of a text listing.
	field struct {
		key   string
		value string
	}
)

func (s *session) uriView(u uri.URI) uriView {
	v := uriView{
		URI:       u.FormatStyle(s.encode, s.style),
		Scheme:    u.Scheme(),
		Authority: u.Authority(),
		Path:      u.Path(),
		Query:     u.Query(),
		Fragment:  u.Fragment(),
	}
	if p, ok := u.FSPathStyle(s.style); ok {
		v.FSPath = p
	}
	return v
}

func (v uriView) fields() []field {
	return []field{
		{"uri", v.URI},
		{"scheme", v.Scheme},
		{"authority", v.Authority},
		{"path", v.Path},
		{"query", v.Query},
		{"fragment", v.Fragment},
		{"fs_path", v.FSPath},
	}
}

func partsFields(p uri.Parts) []field {
	return []field{
		{"scheme", p.Scheme},
		{"authority", p.Authority},
		{"path", p.Path},
		{"params", p.Params},
		{"query", p.Query},
		{"fragment", p.Fragment},
	}
}

// writeStructured encodes v as JSON, YAML or TOML.
func writeStructured(w io.Writer, format config.OutputFormat, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputTOML:
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// writeFields prints an aligned key/value listing. Empty values are shown
// as a muted marker so the listing keeps its shape.
func writeFields(w io.Writer, fields []field) {
	for _, f := range fields {
		value := SuccessStyle.Render(f.value)
		if f.value == "" {
			value = SubtitleStyle.Render("(none)")
		}
		fmt.Fprintln(w, keyStyle.Render(f.key+":")+" "+value)
	}
}

// writeResult prints a command result: text in text mode, view otherwise.
func (a *App) writeResult(text string, view any) error {
	if a.session.output == config.OutputText {
		_, err := fmt.Fprintln(a.stdout, text)
		return err
	}
	return writeStructured(a.stdout, a.session.output, view)
}

// writeURI prints u in the session's encoding and style.
func (a *App) writeURI(u uri.URI) error {
	v := a.session.uriView(u)
	return a.writeResult(v.URI, v)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/pflag"

	"github.com/dgallion1/orgdeck/internal/deck"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source != "thetalk.org" || cfg.Output != "build" {
		t.Errorf("unexpected source/output: %q / %q", cfg.Source, cfg.Output)
	}
	if cfg.DeepHeadings != "ignore" || cfg.Port != "8090" || !cfg.PDFFallbackPdftotext {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	yaml := "output: from-file\nport: \"9000\"\ndeep_headings: reject\n"
	if err := os.WriteFile(filepath.Join(dir, "orgdeck.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ORGDECK_PORT", "9100")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	flags.String("log-format", "text", "")
	if err := flags.Parse([]string{"--output", "from-flag", "--log-format", "json"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(flags, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "from-flag" {
		t.Errorf("expected flag to win, got %q", cfg.Output)
	}
	if cfg.Port != "9100" {
		t.Errorf("expected env to beat file, got %q", cfg.Port)
	}
	if cfg.DeepHeadings != "reject" {
		t.Errorf("expected file value, got %q", cfg.DeepHeadings)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected json log format, got %q", cfg.LogFormat)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	if _, err := Load(nil, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	base := Config{Source: "a.org", Output: "build", DeepHeadings: "ignore", LogFormat: "text", LogLevel: "info",
		Annotation: "CLAUDE", TitleMarker: "Title type slide"}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty source", func(c *Config) { c.Source = " " }},
		{"empty output", func(c *Config) { c.Output = "" }},
		{"bad deep headings", func(c *Config) { c.DeepHeadings = "flatten" }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"empty annotation", func(c *Config) { c.Annotation = "" }},
	}
	for _, tt := range tests {
		c := base
		tt.mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestValidate_CollectsAllFields(t *testing.T) {
	c := Config{DeepHeadings: "flatten", LogFormat: "text", LogLevel: "info",
		Annotation: "CLAUDE", TitleMarker: "Title type slide"}
	err := c.Validate()
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields, ok := goerrors.GetValidationErrors(err)
	if !ok {
		t.Fatal("expected field errors")
	}
	got := map[string]bool{}
	for _, f := range fields {
		got[f.Field] = true
	}
	for _, want := range []string{"source", "output", "deep_headings"} {
		if !got[want] {
			t.Errorf("missing field error for %s in %v", want, fields)
		}
	}
	if len(fields) != 3 {
		t.Errorf("expected 3 field errors, got %d", len(fields))
	}
}

func TestDeckOptions(t *testing.T) {
	c := Config{Annotation: "NOTE", TitleMarker: "cover", DeepHeadings: "reject"}
	opts := c.DeckOptions(nil)
	if opts.Marker.Prefix != "NOTE" || opts.Marker.Phrase != "cover" {
		t.Errorf("unexpected marker: %+v", opts.Marker)
	}
	if opts.DeepHeadings != deck.DeepReject {
		t.Errorf("expected reject, got %q", opts.DeepHeadings)
	}
}

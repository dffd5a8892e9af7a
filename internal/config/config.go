package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dgallion1/orgdeck/internal/deck"
)

type Config struct {
	// Input and output
	Source    string `mapstructure:"source"`
	Output    string `mapstructure:"output"`
	Templates string `mapstructure:"templates"` // empty uses the built-in templates
	Styles    string `mapstructure:"styles"`

	// Slide building
	DeepHeadings string `mapstructure:"deep_headings"`
	Annotation   string `mapstructure:"annotation"`
	TitleMarker  string `mapstructure:"title_marker"`

	// Preview server
	Port  string `mapstructure:"port"`
	Watch bool   `mapstructure:"watch"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// PDF
	PDFFallbackPdftotext bool `mapstructure:"pdf_fallback_pdftotext"`
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"output":        "output",
	"templates":     "templates",
	"styles":        "styles",
	"deep-headings": "deep_headings",
	"annotation":    "annotation",
	"title-marker":  "title_marker",
	"port":          "port",
	"watch":         "watch",
	"log-level":     "log_level",
	"log-format":    "log_format",
}

// Load reads configuration from defaults, an optional orgdeck.yaml, ORGDECK_*
// environment variables and the given flags, in increasing precedence.
// configFile, when set, replaces the config file search.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("source", "thetalk.org")
	v.SetDefault("output", "build")
	v.SetDefault("templates", "")
	v.SetDefault("styles", "src/styles.css")
	v.SetDefault("deep_headings", string(deck.DeepIgnore))
	v.SetDefault("annotation", deck.DefaultMarker.Prefix)
	v.SetDefault("title_marker", deck.DefaultMarker.Phrase)
	v.SetDefault("port", "8090")
	v.SetDefault("watch", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("pdf_fallback_pdftotext", true)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("orgdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "orgdeck"))
		}
	}

	v.SetEnvPrefix("ORGDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting in one validation error.
func (c Config) Validate() error {
	var fields []goerrors.FieldError
	bad := func(field, msg string, value any) {
		fields = append(fields, goerrors.FieldError{Field: field, Message: msg, Value: value})
	}

	if strings.TrimSpace(c.Source) == "" {
		bad("source", "is required", c.Source)
	}
	if strings.TrimSpace(c.Output) == "" {
		bad("output", "is required", c.Output)
	}
	if strings.TrimSpace(c.Annotation) == "" {
		bad("annotation", "is required", c.Annotation)
	}
	if strings.TrimSpace(c.TitleMarker) == "" {
		bad("title_marker", "is required", c.TitleMarker)
	}
	switch deck.DeepHeadings(c.DeepHeadings) {
	case deck.DeepIgnore, deck.DeepReject:
	default:
		bad("deep_headings", fmt.Sprintf("must be %q or %q", deck.DeepIgnore, deck.DeepReject), c.DeepHeadings)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		bad("log_format", "must be text or json", c.LogFormat)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		bad("log_level", "must be debug, info, warn or error", c.LogLevel)
	}

	if len(fields) > 0 {
		return goerrors.NewValidation("invalid configuration", fields...)
	}
	return nil
}

// DeckOptions converts the slide building settings.
func (c Config) DeckOptions(log *slog.Logger) deck.Options {
	return deck.Options{
		Marker:       deck.Marker{Prefix: c.Annotation, Phrase: c.TitleMarker},
		DeepHeadings: deck.DeepHeadings(c.DeepHeadings),
		Logger:       log,
	}
}

// Logger builds the process logger.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

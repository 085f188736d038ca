package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/aretw0/edmcheck/pkg/schema"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when --config is not set.
const DefaultFile = ".edmcheck.yaml"

// Config holds every setting of an edmcheck invocation.
// Precedence: flags > environment > config file > defaults.
type Config struct {
	Schema         string `mapstructure:"schema"`
	Pattern        string `mapstructure:"pattern"`
	Format         string `mapstructure:"format"`
	Color          string `mapstructure:"color"`
	CountMalformed bool   `mapstructure:"count_malformed"`
	MetricsFile    string `mapstructure:"metrics_file"`

	Validation ValidationConfig `mapstructure:"validation"`
	Log        LogConfig        `mapstructure:"log"`
	Serve      ServeConfig      `mapstructure:"serve"`
}

// ValidationConfig mirrors schema.Options.
type ValidationConfig struct {
	Draft           string `mapstructure:"draft"` // dialect for schemas without "$schema"
	Strict          bool `mapstructure:"strict"`
	AllowUnionTypes bool `mapstructure:"allow_union_types"`
	AssertFormat    bool `mapstructure:"assert_format"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error; empty disables logging
	Format string `mapstructure:"format"` // text, json
}

type ServeConfig struct {
	Port string `mapstructure:"port"`
}

// Default returns the fixed configuration of the example checker.
func Default() *Config {
	return &Config{
		Schema:  domain.DefaultSchemaPath,
		Pattern: domain.DefaultPattern,
		Format:  "text",
		Color:   "auto",
		Validation: ValidationConfig{
			Draft:           "draft-07",
			Strict:          true,
			AllowUnionTypes: true,
			AssertFormat:    true,
		},
		Log: LogConfig{
			Format: "text",
		},
		Serve: ServeConfig{
			Port: "8080",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment. A missing file is only an error when required is true.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decodeYAML(data, cfg); err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
			// optional file
		default:
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if raw == nil {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

var envVars = []struct {
	name string
	set  func(*Config, string)
}{
	{"EDMCHECK_SCHEMA", func(c *Config, v string) { c.Schema = v }},
	{"EDMCHECK_PATTERN", func(c *Config, v string) { c.Pattern = v }},
	{"EDMCHECK_FORMAT", func(c *Config, v string) { c.Format = v }},
	{"EDMCHECK_COLOR", func(c *Config, v string) { c.Color = v }},
	{"EDMCHECK_DRAFT", func(c *Config, v string) { c.Validation.Draft = v }},
	{"EDMCHECK_LOG_LEVEL", func(c *Config, v string) { c.Log.Level = v }},
	{"EDMCHECK_METRICS_FILE", func(c *Config, v string) { c.MetricsFile = v }},
}

func applyEnv(cfg *Config) {
	for _, e := range envVars {
		if v, ok := os.LookupEnv(e.name); ok && v != "" {
			e.set(cfg, v)
		}
	}
}

// Validate checks the values that have a closed set of choices.
func (c *Config) Validate() error {
	if c.Schema == "" {
		return fmt.Errorf("config: schema path must not be empty")
	}
	if c.Pattern == "" {
		return fmt.Errorf("config: pattern must not be empty")
	}
	switch c.Format {
	case "text", "json", "markdown":
	default:
		return fmt.Errorf("config: unknown format %q (want text, json or markdown)", c.Format)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("config: unknown color mode %q (want auto, always or never)", c.Color)
	}
	if _, err := schema.ParseDraft(c.Validation.Draft); err != nil {
		return fmt.Errorf("config: %w (want draft-04, draft-06, draft-07, 2019-09 or 2020-12)", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q (want text or json)", c.Log.Format)
	}
	return nil
}

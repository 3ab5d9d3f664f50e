package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/xsampa/batch"
)

// Config holds the settings of a transcription run.
type Config struct {
	Lexicon     string `yaml:"lexicon"      env:"XSAMPA_LEXICON"`
	OnMalformed string `yaml:"on_malformed" env:"XSAMPA_ON_MALFORMED" env-default:"skip"`
	NFC         bool   `yaml:"nfc"          env:"XSAMPA_NFC"          env-default:"false"`
	SplitFields bool   `yaml:"split_fields" env:"XSAMPA_SPLIT_FIELDS" env-default:"false"`
	TraceLevel  string `yaml:"trace_level"  env:"XSAMPA_TRACE_LEVEL"  env-default:"error"`
}

// LoadConfig reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// With an empty path, configuration is loaded from ENV + defaults only.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := batch.ParsePolicy(c.OnMalformed); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Options converts c into batch options. c must be valid.
func (c *Config) Options() batch.Options {
	policy, _ := batch.ParsePolicy(c.OnMalformed)
	return batch.Options{
		Policy:      policy,
		SplitFields: c.SplitFields,
		NFC:         c.NFC,
	}
}

// Level returns the configured trace level.
func (c *Config) Level() (tracing.TraceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(c.TraceLevel)) {
	case "", "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q (must be error, info or debug)", c.TraceLevel)
}

// Package config assembles the roman CLI configuration from three layers:
// built-in defaults, an optional TOML file, then ROMAN_* environment
// variables. Later layers win. The result seeds the process-wide decode
// defaults at startup; the core library never reads files or environment
// itself.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/davidsulc/roman"
)

// Config is the resolved CLI configuration.
type Config struct {
	Strict     bool
	IgnoreCase bool
	Explain    bool
	Zero       bool
	LogLevel   string
}

// Default returns the bottom layer: strict decoding, info logging.
func Default() Config {
	return Config{Strict: true, LogLevel: "info"}
}

// overlay carries one layer's settings; nil fields mean "not set here".
// It serves both the TOML file and the environment, which keeps the two
// layers structurally identical.
type overlay struct {
	Strict     *bool   `toml:"strict" env:"ROMAN_STRICT"`
	IgnoreCase *bool   `toml:"ignore_case" env:"ROMAN_IGNORE_CASE"`
	Explain    *bool   `toml:"explain" env:"ROMAN_EXPLAIN"`
	Zero       *bool   `toml:"zero" env:"ROMAN_ZERO"`
	LogLevel   *string `toml:"log_level" env:"ROMAN_LOG_LEVEL"`
}

// apply copies every set field of o onto cfg.
func (o overlay) apply(cfg *Config) {
	if o.Strict != nil {
		cfg.Strict = *o.Strict
	}
	if o.IgnoreCase != nil {
		cfg.IgnoreCase = *o.IgnoreCase
	}
	if o.Explain != nil {
		cfg.Explain = *o.Explain
	}
	if o.Zero != nil {
		cfg.Zero = *o.Zero
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
}

// Load resolves the configuration. path may be empty, meaning no file
// layer; a named file that cannot be read or parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		var file overlay
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		file.apply(&cfg)
	}

	var envLayer overlay
	if err := env.Parse(&envLayer); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	envLayer.apply(&cfg)

	return cfg, nil
}

// Options maps the configuration onto the core decode flags.
func (c Config) Options() roman.Options {
	return roman.Options{
		Strict:     c.Strict,
		IgnoreCase: c.IgnoreCase,
		Explain:    c.Explain,
		Zero:       c.Zero,
	}
}

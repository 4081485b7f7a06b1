// ============================================================================
// bstr - Byte String Toolkit
// ============================================================================
//
// Package:     config
// Description: CLI settings loaded from TOML or YAML with environment overrides
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/bstr/foundation/core/errors"
	mdwlog "github.com/msto63/bstr/foundation/core/log"
	"github.com/msto63/bstr/foundation/utils/numx"
)

// Environment variables read by LoadFromEnv
const (
	EnvConfig    = "BSTR_CONFIG"
	EnvLogLevel  = "BSTR_LOG_LEVEL"
	EnvLogFormat = "BSTR_LOG_FORMAT"
	EnvOutput    = "BSTR_OUTPUT"
	EnvBase      = "BSTR_BASE"
)

// Output modes of the CLI
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the complete CLI configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Defaults DefaultsConfig `toml:"defaults" yaml:"defaults"`

	path string
}

// GeneralConfig holds logging and output settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Output    string `toml:"output" yaml:"output"`
}

// DefaultsConfig holds defaults for command flags
type DefaultsConfig struct {
	// Base is the numeral base for atol; 0 detects 0b/0o/0x prefixes
	Base int `toml:"base" yaml:"base"`

	// StripChars is the byte set for strip commands; empty means ASCII whitespace
	StripChars string `toml:"strip_chars" yaml:"strip_chars"`

	// Fill is the single pad byte for padding commands
	Fill string `toml:"fill" yaml:"fill"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{Defaults: DefaultsConfig{Base: 10}}
	cfg.applyDefaults()
	return cfg
}

// Load reads a configuration file. The format follows the extension: .toml,
// .yaml or .yml. Keys missing from the file keep their defaults; unknown keys
// are rejected.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError("load", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, errors.ConfigError("parse", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.InvalidConfig(undecoded[0].String(), path, "unknown key")
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, errors.ConfigError("parse", path, err)
		}
	default:
		return nil, errors.InvalidConfig("path", path, "unsupported extension, use .toml, .yaml or .yml")
	}

	cfg.applyDefaults()
	cfg.path = path
	return cfg, nil
}

// Discover returns the first configuration file found: $BSTR_CONFIG,
// ./bstr.toml, ./bstr.yaml, then $HOME/.config/bstr/config.toml.
func Discover() (string, bool) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, true
	}

	candidates := []string{"./bstr.toml", "./bstr.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "bstr", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// LoadFromEnv loads the discovered configuration, or the defaults when no
// file exists, then applies environment overrides and validates the result.
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	if path, ok := Discover(); ok {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from BSTR_* variables using lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.General.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.General.LogFormat = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		c.General.Output = v
	}
	if v, ok := lookup(EnvBase); ok && v != "" {
		base, err := numx.Atoi(v)
		if err != nil {
			return errors.InvalidConfig(EnvBase, v, "not an integer")
		}
		c.Defaults.Base = base
	}
	return nil
}

// Validate checks every setting and returns the first violation
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return errors.InvalidConfig("general.log_level", c.General.LogLevel, "unknown log level")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return errors.InvalidConfig("general.log_format", c.General.LogFormat, "unknown log format")
	}
	if c.General.Output != OutputText && c.General.Output != OutputJSON {
		return errors.InvalidConfig("general.output", c.General.Output, "must be text or json")
	}
	if b := c.Defaults.Base; b != 0 && (b < numx.MinBase || b > numx.MaxBase) {
		return errors.InvalidConfig("defaults.base", b, "must be 0 or between 2 and 36")
	}
	if len(c.Defaults.Fill) != 1 {
		return errors.InvalidConfig("defaults.fill", c.Defaults.Fill, "must be exactly one byte")
	}
	return nil
}

// Path returns the file the configuration was loaded from, or ""
func (c *Config) Path() string {
	return c.path
}

// Level returns the configured log level, falling back to the logger default
func (c *Config) Level() mdwlog.Level {
	level, err := mdwlog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return mdwlog.DefaultLevel()
	}
	return level
}

// applyDefaults fills empty settings
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = mdwlog.DefaultLevel().String()
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = mdwlog.FormatText.String()
	}
	if c.General.Output == "" {
		c.General.Output = OutputText
	}
	if c.Defaults.Fill == "" {
		c.Defaults.Fill = " "
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk resolver configuration.
//
//	root = "/opt/game/"
//	suffixes = [".png", ".dds"]
//	strict_dimensions = false
//	log_level = "info"
type Config struct {
	// Root overrides the root derived from the executable location.
	Root             string   `toml:"root"`
	Suffixes         []string `toml:"suffixes"`
	StrictDimensions bool     `toml:"strict_dimensions"`
	LogLevel         string   `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Suffixes: append([]string(nil), DefaultSuffixes...),
		LogLevel: "info",
	}
}

// LoadConfig reads a TOML config file. Unset keys keep their defaults and
// unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %q: %v", ErrReadConfig, path, err)
	}

	return ParseConfig(bytes.NewReader(b))
}

// ParseConfig decodes TOML from r on top of DefaultConfig.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrParseConfig, err)
	}

	return cfg, nil
}

// ResolveRoot returns cfg.Root, or the root derived from the executable.
func (cfg Config) ResolveRoot() (string, error) {
	if cfg.Root != "" {
		return cfg.Root, nil
	}

	return RootPathFromExecutable()
}

// Options builds resolver options from cfg, writing logs to w.
func (cfg Config) Options(w io.Writer) (*Options, error) {
	logger, err := NewLogger(w, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &Options{
		Suffixes:         cfg.Suffixes,
		StrictDimensions: cfg.StrictDimensions,
		Logger:           logger,
	}, nil
}

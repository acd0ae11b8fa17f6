// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the csscolor tool.
package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/csscolor/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the config file that is loaded
// when no other file is specified.
const DefaultFile = "csscolor.toml"

// Output formats for parsed colors.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the main config struct
// that contains all of the configuration
// options for the csscolor tool.
type Config struct {

	// print info level log messages
	Verbose bool `toml:"verbose"`

	// print debug level log messages
	VeryVerbose bool `toml:"very-verbose"`

	// only print error level log messages
	Quiet bool `toml:"quiet"`

	// the palette file whose names are resolved before CSS colors;
	// relative paths are relative to the config file
	Palette string `toml:"palette"`

	// the output format for parsed colors (text or json)
	Format string `toml:"format"`

	// render a color swatch next to each parsed color
	Swatch bool `toml:"swatch"`
}

// Default returns a new [Config] with default values.
func Default() *Config {
	return &Config{Format: FormatText}
}

// Load returns the config in the given TOML file on top of the
// [Default] values. If path is empty, [DefaultFile] is used, and
// it is not an error for it to not exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	implicit := path == ""
	if implicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if implicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	if cfg.Palette != "" && !filepath.IsAbs(cfg.Palette) {
		cfg.Palette = filepath.Join(filepath.Dir(path), cfg.Palette)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate returns an error if any of the values are invalid.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("invalid format %q (must be %q or %q)", c.Format, FormatText, FormatJSON)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

// Package config handles optional typesquash project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "typesquash.yaml"

// Config represents the typesquash.yaml configuration file. All fields
// other than Version are optional; flags override anything set here.
type Config struct {
	Version    int    `yaml:"version"`
	RootName   string `yaml:"rootName,omitempty"`
	Indent     int    `yaml:"indent,omitempty"` // spaces per indentation level
	Squash     *bool  `yaml:"squash,omitempty"`
	Semicolons *bool  `yaml:"semicolons,omitempty"`
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{Version: CurrentConfigVersion}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault loads DefaultFileName from the working directory, or returns
// Default when the file does not exist.
func LoadDefault() (*Config, error) {
	cfg, err := Load(DefaultFileName)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("indent must be between 0 and 8, got %d", c.Indent)
	}
	return nil
}

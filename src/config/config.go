// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	x509render "github.com/H0llyW00dzZ/peek509/src/internal/x509/render"
)

// Environment variables consulted by [Load].
const (
	EnvConfigFile = "PEEK509_CONFIG_FILE"
	EnvFormat     = "PEEK509_FORMAT"
)

// DefaultMaxBytes bounds how much certificate input is read.
const DefaultMaxBytes = 1 << 20

// ErrInvalidFormat indicates an output format that no renderer supports.
var ErrInvalidFormat = errors.New("config: invalid output format")

// fileFormat represents supported configuration file formats.
type fileFormat int

const (
	// fileFormatJSON represents JSON configuration format (.json)
	fileFormatJSON fileFormat = iota
	// fileFormatYAML represents YAML configuration format (.yaml, .yml)
	fileFormatYAML
)

// Config holds the settings shared by the CLI and the MCP server.
type Config struct {
	// Output controls how decoded certificates are presented.
	Output struct {
		// Format is one of text, table, json or yaml.
		Format string `json:"format" yaml:"format"`
		// SignaturePreview is the number of signature bytes shown at each end in
		// text and table output. Zero shows the whole signature.
		SignaturePreview int `json:"signaturePreview" yaml:"signaturePreview"`
		// ShowPEM appends the PEM encoding to text and table output.
		ShowPEM bool `json:"showPEM" yaml:"showPEM"`
	} `json:"output" yaml:"output"`

	// Input bounds what is accepted as certificate input.
	Input struct {
		// MaxBytes is the largest input read from a file or stdin.
		MaxBytes int64 `json:"maxBytes" yaml:"maxBytes"`
	} `json:"input" yaml:"input"`
}

// Default returns a Config with every setting at its default.
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Format = string(x509render.FormatText)
	cfg.Output.SignaturePreview = x509render.DefaultSignaturePreview
	cfg.Input.MaxBytes = DefaultMaxBytes
	return cfg
}

// RenderOptions returns the renderer options described by the output settings.
func (c *Config) RenderOptions() x509render.Options {
	return x509render.Options{
		SignaturePreview: c.Output.SignaturePreview,
		ShowPEM:          c.Output.ShowPEM,
	}
}

// detectFileFormat determines the configuration file format from its
// extension, case-insensitively.
func detectFileFormat(path string) fileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return fileFormatYAML
	default:
		return fileFormatJSON
	}
}

func unmarshal(data []byte, cfg *Config, format fileFormat) error {
	switch format {
	case fileFormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load resolves the configuration.
//
// Configuration Priority:
//  1. Default values are set
//  2. PEEK509_CONFIG_FILE is checked if path is empty
//  3. Config file values override defaults
//  4. PEEK509_FORMAT overrides the output format
//
// Out-of-range numbers are reset to their defaults. An unknown output format
// is an error wrapping [ErrInvalidFormat].
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
		if err := unmarshal(data, cfg, detectFileFormat(path)); err != nil {
			return nil, err
		}

		if cfg.Output.Format == "" {
			cfg.Output.Format = string(x509render.FormatText)
		}
		if cfg.Output.SignaturePreview < 0 {
			cfg.Output.SignaturePreview = x509render.DefaultSignaturePreview
		}
		if cfg.Input.MaxBytes <= 0 {
			cfg.Input.MaxBytes = DefaultMaxBytes
		}
	}

	if format := os.Getenv(EnvFormat); format != "" {
		cfg.Output.Format = format
	}

	if err := cfg.SetFormat(cfg.Output.Format); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SetFormat validates name and stores its canonical form.
func (c *Config) SetFormat(name string) error {
	format, err := x509render.ParseFormat(name)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, name)
	}
	c.Output.Format = string(format)
	return nil
}

// Format returns the validated output format.
func (c *Config) Format() x509render.Format {
	return x509render.Format(c.Output.Format)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable name read by
// [parseEnv].
const EnvPrefix = "OMNISEARCH_"

// StructuredConfig is the top-level configuration container for the
// omnisearch client. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every environment variable is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// API holds the endpoint and credentials of the OmniSearch service.
	API API `envPrefix:"API_"`

	// Log controls log level and destination.
	Log Log `envPrefix:"LOG_"`

	// Output controls how command results are printed.
	Output Output `envPrefix:"OUTPUT_"`

	// Generator holds settings of the fake-data generator.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the OMNISEARCH_CONFIG environment variable or the
	// --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds the location and credentials of the remote service.
type API struct {
	// Server is the API root, e.g. "https://acme.omnisearch.ai/api".
	// Env: OMNISEARCH_API_SERVER
	Server string `env:"SERVER"`

	// Version is the API version path segment. Defaults to "v1".
	// Env: OMNISEARCH_API_VERSION
	Version string `env:"VERSION"`

	// Key is the static API key sent with every request.
	// Env: OMNISEARCH_API_KEY
	Key string `env:"KEY"`

	// RequestTimeout bounds a single HTTP request (e.g. "30s", "1m").
	// Env: OMNISEARCH_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: OMNISEARCH_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File switches logging from stderr to a rotating log file.
	// Env: OMNISEARCH_LOG_FILE
	File string `env:"FILE"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Env: OMNISEARCH_LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated files kept.
	// Env: OMNISEARCH_LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`

	// MaxAgeDays is the number of days rotated files are kept.
	// Env: OMNISEARCH_LOG_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS"`

	// Compress gzips rotated files.
	// Env: OMNISEARCH_LOG_COMPRESS
	Compress bool `env:"COMPRESS"`
}

// Output holds result printing settings.
type Output struct {
	// Colour enables ANSI colouring of JSON output.
	// Env: OMNISEARCH_OUTPUT_COLOUR
	Colour bool `env:"COLOUR"`

	// Format is either "json" or "yaml".
	// Env: OMNISEARCH_OUTPUT_FORMAT
	Format string `env:"FORMAT"`
}

// Generator holds fake-data generator settings.
type Generator struct {
	// Seed makes generated values reproducible. Zero picks a random seed.
	// Env: OMNISEARCH_GENERATOR_SEED
	Seed int64 `env:"SEED"`
}

// Supported values of [Output.Format].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			Version:        "v1",
			RequestTimeout: 30 * time.Second,
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Output: Output{
			Format: FormatJSON,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. For every field the first non-zero value wins, in this order:
//  1. Command-line flags explicitly set on fs
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// Defaults applied before any other source.
const (
	DefaultProjectRoot    = "."
	DefaultSettingsFile   = "config/railsui.yml"
	DefaultTemplatesDir   = "lib/templates"
	DefaultRailsBin       = "rails"
	DefaultBundleBin      = "bundle"
	DefaultCommandTimeout = 10 * time.Minute
	DefaultLogLevel       = "info"
)

// StructuredConfig is the runtime configuration of the railsui command. It
// is not the persisted design settings record (see models.Settings); it
// tells the command where the host project lives and how to reach its
// executables.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with RAILSUI_.
type StructuredConfig struct {
	// Project locates the host project and the files railsui owns in it.
	Project Project `envPrefix:"PROJECT_"`

	// Host configures the host executables invoked by installers.
	Host Host `envPrefix:"HOST_"`

	// Log configures the console logger.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: RAILSUI_CONFIG, flag: -c / --config.
	JSONFilePath string `env:"CONFIG"`
}

// Project holds host project paths.
type Project struct {
	// Root is the host project root directory.
	// Env: RAILSUI_PROJECT_ROOT
	Root string `env:"ROOT"`

	// SettingsFile is the settings file path, relative to Root unless absolute.
	// Env: RAILSUI_PROJECT_SETTINGS_FILE
	SettingsFile string `env:"SETTINGS_FILE"`

	// TemplatesDir holds bundled templates, relative to Root unless absolute.
	// Env: RAILSUI_PROJECT_TEMPLATES_DIR
	TemplatesDir string `env:"TEMPLATES_DIR"`
}

// Host holds settings for the host executables.
type Host struct {
	// RailsBin is the rails executable used for tasks and generators.
	// Env: RAILSUI_HOST_RAILS_BIN
	RailsBin string `env:"RAILS_BIN"`

	// BundleBin is the bundler executable used to add dependencies.
	// Env: RAILSUI_HOST_BUNDLE_BIN
	BundleBin string `env:"BUNDLE_BIN"`

	// CommandTimeout bounds every single host command (e.g. "10m").
	// Env: RAILSUI_HOST_COMMAND_TIMEOUT
	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT"`

	// DryRun logs host commands instead of executing them.
	// Env: RAILSUI_HOST_DRY_RUN
	DryRun bool `env:"DRY_RUN"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: RAILSUI_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// SettingsPath returns the absolute settings file path.
func (p Project) SettingsPath() string {
	return p.resolve(p.SettingsFile)
}

// TemplatesPath returns the absolute templates directory.
func (p Project) TemplatesPath() string {
	return p.resolve(p.TemplatesDir)
}

func (p Project) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.Root, path)
}

// DefaultConfig returns the configuration used when no other source sets a
// value.
func DefaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Project: Project{
			Root:         DefaultProjectRoot,
			SettingsFile: DefaultSettingsFile,
			TemplatesDir: DefaultTemplatesDir,
		},
		Host: Host{
			RailsBin:       DefaultRailsBin,
			BundleBin:      DefaultBundleBin,
			CommandTimeout: DefaultCommandTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags registered with [RegisterFlags] on fs
//
// fs must already be parsed; a nil fs skips the flag source.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}

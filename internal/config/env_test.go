// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"RAILSUI_CONFIG": "/path/to/config.json",

		"RAILSUI_PROJECT_ROOT":          "/srv/app",
		"RAILSUI_PROJECT_SETTINGS_FILE": "config/ui.yml",
		"RAILSUI_PROJECT_TEMPLATES_DIR": "vendor/templates",

		"RAILSUI_HOST_RAILS_BIN":       "bin/rails",
		"RAILSUI_HOST_BUNDLE_BIN":      "bin/bundle",
		"RAILSUI_HOST_COMMAND_TIMEOUT": "90s",
		"RAILSUI_HOST_DRY_RUN":         "true",

		"RAILSUI_LOG_LEVEL": "debug",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/srv/app", cfg.Project.Root)
	assert.Equal(t, "config/ui.yml", cfg.Project.SettingsFile)
	assert.Equal(t, "vendor/templates", cfg.Project.TemplatesDir)
	assert.Equal(t, "bin/rails", cfg.Host.RailsBin)
	assert.Equal(t, "bin/bundle", cfg.Host.BundleBin)
	assert.Equal(t, 90*time.Second, cfg.Host.CommandTimeout)
	assert.True(t, cfg.Host.DryRun)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_UnprefixedIgnored(t *testing.T) {
	t.Setenv("HOST_RAILS_BIN", "not-me")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Host.RailsBin)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("RAILSUI_HOST_COMMAND_TIMEOUT", "not-a-duration")

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("RAILSUI_HOST_DRY_RUN", "maybe")

	err := parseEnv(&StructuredConfig{})

	assert.Error(t, err)
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func parsedFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and no sources.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.defaults)
	assert.Nil(t, b.file)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder_FailsValidation verifies that a builder without
// defaults produces an invalid config.
func TestBuild_EmptyBuilder_FailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidProjectConfigs)
}

// TestBuild_DefaultsOnly verifies defaults and root resolution.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, wd, cfg.Project.Root)
	assert.Equal(t, DefaultSettingsFile, cfg.Project.SettingsFile)
	assert.Equal(t, filepath.Join(wd, "config", "railsui.yml"), cfg.Project.SettingsPath())
	assert.Equal(t, filepath.Join(wd, "lib", "templates"), cfg.Project.TemplatesPath())
	assert.Equal(t, DefaultRailsBin, cfg.Host.RailsBin)
	assert.Equal(t, DefaultCommandTimeout, cfg.Host.CommandTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies the merge precedence.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.file = &StructuredConfig{Host: Host{RailsBin: "file-rails", BundleBin: "file-bundle"}}
	b.configs = append(b.configs,
		&StructuredConfig{Host: Host{RailsBin: "env-rails"}},
		&StructuredConfig{Log: Log{Level: "debug"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env-rails", cfg.Host.RailsBin)
	assert.Equal(t, "file-bundle", cfg.Host.BundleBin)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestBuild_InvalidLogLevel verifies log level validation.
func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Log: Log{Level: "chatty"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// TestBuild_NegativeTimeout verifies host validation.
func TestBuild_NegativeTimeout(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Host: Host{CommandTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidHostConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("RAILSUI_HOST_RAILS_BIN", "bin/rails")
	t.Setenv("RAILSUI_LOG_LEVEL", "warn")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "bin/rails", b.configs[0].Host.RailsBin)
	assert.Equal(t, "warn", b.configs[0].Log.Level)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable env value is
// recorded on the builder.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("RAILSUI_HOST_COMMAND_TIMEOUT", "forever")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_NilFlagSet verifies that a nil flag set is skipped.
func TestWithFlags_NilFlagSet(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

// TestWithFlags_AppendsParsedFlags verifies flag values reach the builder.
func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	fs := parsedFlagSet(t, "--rails-bin", "bin/rails", "--dry-run")

	b := newConfigBuilder()
	b.withFlags(fs)

	require.Len(t, b.configs, 1)
	assert.Equal(t, "bin/rails", b.configs[0].Host.RailsBin)
	assert.True(t, b.configs[0].Host.DryRun)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no source carries a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Nil(t, b.file)
	assert.NoError(t, b.err)
}

// TestWithJSON_SetsFile_WhenValidFile verifies that a valid JSON file is
// parsed and kept as the file source.
func TestWithJSON_SetsFile_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Host.RailsBin = "json-rails"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.file)
	assert.Equal(t, "json-rails", b.file.Host.RailsBin)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple sources have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Log.Level = "error"
	last := StructuredJSONConfig{}
	last.Log.Level = "debug"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	assert.Equal(t, "debug", b.file.Log.Level)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies defaults < file < env < flags.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Host.RailsBin = "file-rails"
	payload.Host.BundleBin = "file-bundle"
	payload.Log.Level = "error"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("RAILSUI_CONFIG", path)
	t.Setenv("RAILSUI_HOST_RAILS_BIN", "env-rails")
	t.Setenv("RAILSUI_LOG_LEVEL", "warn")

	root := t.TempDir()
	fs := parsedFlagSet(t, "--log-level", "debug", "-r", root)

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "env-rails", cfg.Host.RailsBin)
	assert.Equal(t, "file-bundle", cfg.Host.BundleBin)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, root, cfg.Project.Root)
	assert.Equal(t, DefaultCommandTimeout, cfg.Host.CommandTimeout)
}

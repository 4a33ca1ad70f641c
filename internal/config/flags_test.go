package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlags_AllRegistered(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	for _, name := range []string{
		FlagConfig, FlagRoot, FlagSettingsFile, FlagTemplatesDir,
		FlagRailsBin, FlagBundleBin, FlagCommandTimeout, FlagDryRun, FlagLogLevel,
	} {
		assert.NotNil(t, fs.Lookup(name), "flag %s", name)
	}
	assert.NotNil(t, fs.ShorthandLookup("c"))
	assert.NotNil(t, fs.ShorthandLookup("r"))
}

func TestParseFlags_UnsetFlagsStayZero(t *testing.T) {
	fs := parsedFlagSet(t)

	cfg, err := ParseFlags(fs)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_AllFlags(t *testing.T) {
	fs := parsedFlagSet(t,
		"-c", "/etc/railsui.json",
		"-r", "/srv/app",
		"--settings-file", "config/ui.yml",
		"--templates-dir", "vendor/templates",
		"--rails-bin", "bin/rails",
		"--bundle-bin", "bin/bundle",
		"--command-timeout", "2m",
		"--dry-run",
		"--log-level", "debug",
	)

	cfg, err := ParseFlags(fs)

	require.NoError(t, err)
	assert.Equal(t, "/etc/railsui.json", cfg.JSONFilePath)
	assert.Equal(t, "/srv/app", cfg.Project.Root)
	assert.Equal(t, "config/ui.yml", cfg.Project.SettingsFile)
	assert.Equal(t, "vendor/templates", cfg.Project.TemplatesDir)
	assert.Equal(t, "bin/rails", cfg.Host.RailsBin)
	assert.Equal(t, "bin/bundle", cfg.Host.BundleBin)
	assert.Equal(t, 2*time.Minute, cfg.Host.CommandTimeout)
	assert.True(t, cfg.Host.DryRun)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("empty", pflag.ContinueOnError)
	require.NoError(t, fs.Parse(nil))

	cfg, err := ParseFlags(fs)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestProject_AbsolutePathsKept(t *testing.T) {
	p := Project{Root: "/srv/app", SettingsFile: "/etc/railsui.yml", TemplatesDir: "lib/templates"}

	assert.Equal(t, "/etc/railsui.yml", p.SettingsPath())
	assert.Equal(t, "/srv/app/lib/templates", p.TemplatesPath())
}

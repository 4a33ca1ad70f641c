package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig         = "config"
	FlagRoot           = "root"
	FlagSettingsFile   = "settings-file"
	FlagTemplatesDir   = "templates-dir"
	FlagRailsBin       = "rails-bin"
	FlagBundleBin      = "bundle-bin"
	FlagCommandTimeout = "command-timeout"
	FlagDryRun         = "dry-run"
	FlagLogLevel       = "log-level"
)

// RegisterFlags registers all configuration flags on fs.
//
// Flags:
//
//	-c/--config          json file path with configs
//	-r/--root            host project root
//	--settings-file      settings file, relative to the root
//	--templates-dir      bundled templates directory, relative to the root
//	--rails-bin          rails executable
//	--bundle-bin         bundler executable
//	--command-timeout    timeout of a single host command (e.g. "10m")
//	--dry-run            log host commands instead of running them
//	--log-level          log level (debug, info, warn, error)
//
// Defaults shown in help are informational; unset flags never override
// values from other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.StringP(FlagRoot, "r", DefaultProjectRoot, "Host project root")
	fs.String(FlagSettingsFile, DefaultSettingsFile, "Settings file, relative to the project root")
	fs.String(FlagTemplatesDir, DefaultTemplatesDir, "Bundled templates directory, relative to the project root")
	fs.String(FlagRailsBin, DefaultRailsBin, "Rails executable")
	fs.String(FlagBundleBin, DefaultBundleBin, "Bundler executable")
	fs.Duration(FlagCommandTimeout, DefaultCommandTimeout, "Timeout of a single host command (e.g. 10m)")
	fs.Bool(FlagDryRun, false, "Log host commands instead of running them")
	fs.String(FlagLogLevel, DefaultLogLevel, "Log level (debug, info, warn, error)")
}

// ParseFlags reads the flags registered by [RegisterFlags] from an already
// parsed fs. Only flags explicitly set on the command line are copied, so
// that flag defaults do not shadow env or file values during the merge.
func ParseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	str := func(name string, dst *string) {
		if err != nil || !changed(fs, name) {
			return
		}
		*dst, err = fs.GetString(name)
	}

	str(FlagConfig, &cfg.JSONFilePath)
	str(FlagRoot, &cfg.Project.Root)
	str(FlagSettingsFile, &cfg.Project.SettingsFile)
	str(FlagTemplatesDir, &cfg.Project.TemplatesDir)
	str(FlagRailsBin, &cfg.Host.RailsBin)
	str(FlagBundleBin, &cfg.Host.BundleBin)
	str(FlagLogLevel, &cfg.Log.Level)

	if err == nil && changed(fs, FlagCommandTimeout) {
		cfg.Host.CommandTimeout, err = fs.GetDuration(FlagCommandTimeout)
	}
	if err == nil && changed(fs, FlagDryRun) {
		cfg.Host.DryRun, err = fs.GetBool(FlagDryRun)
	}

	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}

func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type configBuilder struct {
	defaults *StructuredConfig
	file     *StructuredConfig
	configs  []*StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges defaults, then the JSON file, then every other source in the
// order it was added, each overriding the non-zero fields of the previous.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	ordered := make([]*StructuredConfig, 0, len(b.configs)+2)
	if b.defaults != nil {
		ordered = append(ordered, b.defaults)
	}
	if b.file != nil {
		ordered = append(ordered, b.file)
	}
	ordered = append(ordered, b.configs...)

	config := new(StructuredConfig)
	for _, cfg := range ordered {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(config.Project.Root)
	if err != nil {
		return nil, fmt.Errorf("error resolving project root: %w", err)
	}
	config.Project.Root = root

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = DefaultConfig()
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if fs == nil {
		return b
	}

	flagsCfg, err := ParseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.file = jsonCfg

	return b
}

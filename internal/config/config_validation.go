// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable before
// any command runs.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Project.Root) == "" || strings.TrimSpace(cfg.Project.SettingsFile) == "" {
		return ErrInvalidProjectConfigs
	}

	if cfg.Host.RailsBin == "" || cfg.Host.BundleBin == "" || cfg.Host.CommandTimeout < 0 {
		return ErrInvalidHostConfigs
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/welloca/railsui/internal/config"
	"github.com/welloca/railsui/internal/logger"
	"github.com/welloca/railsui/models"
)

const staticGenerator = "railsui:static"

// frameworkMarkers lists, per framework, the files the install tasks leave
// in the host project. Any one of them marks the framework as installed.
var frameworkMarkers = map[models.Framework][]string{
	models.FrameworkBootstrap: {
		"app/assets/stylesheets/application.bootstrap.scss",
	},
	models.FrameworkTailwind: {
		"config/tailwind.config.js",
		"app/assets/stylesheets/application.tailwind.css",
		"app/assets/tailwind/application.css",
	},
	models.FrameworkBulma: {
		"app/assets/stylesheets/application.bulma.scss",
	},
}

type hostAdapter struct {
	root      string
	railsBin  string
	bundleBin string

	runner CommandRunner
	logger *logger.Logger
}

// NewHostAdapter constructs a [HostAdapter] for the project rooted at
// projectCfg.Root, running commands through runner.
func NewHostAdapter(projectCfg config.Project, hostCfg config.Host, runner CommandRunner, log *logger.Logger) HostAdapter {
	return &hostAdapter{
		root:      projectCfg.Root,
		railsBin:  hostCfg.RailsBin,
		bundleBin: hostCfg.BundleBin,
		runner:    runner,
		logger:    log.WithComponent("host"),
	}
}

func (h *hostAdapter) FrameworkInstalled(ctx context.Context, fw models.Framework) (bool, error) {
	markers, ok := frameworkMarkers[fw]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedFramework, fw.String())
	}

	for _, marker := range markers {
		path := filepath.Join(h.root, filepath.FromSlash(marker))
		_, err := os.Stat(path)
		if err == nil {
			logger.FromContextOr(ctx, h.logger).Debug().
				Str(logger.FieldFramework, fw.String()).
				Str(logger.FieldPath, marker).
				Msg("framework marker found")
			return true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("error checking %s: %w", marker, err)
		}
	}

	return false, nil
}

func (h *hostAdapter) RunTask(ctx context.Context, task string) error {
	return h.runner.Run(ctx, h.railsBin, task)
}

func (h *hostAdapter) AddDependency(ctx context.Context, pkg string) error {
	return h.runner.Run(ctx, h.bundleBin, "add", pkg)
}

func (h *hostAdapter) GenerateStaticPage(ctx context.Context, page models.Page, fw models.Framework, theme string) error {
	args := []string{"generate", staticGenerator, string(page)}
	if fw != models.FrameworkNone {
		args = append(args, "-c", fw.String())
	}
	if theme != "" {
		args = append(args, "-t", theme)
	}
	return h.runner.Run(ctx, h.railsBin, args...)
}

// GenerateBlog is a placeholder: the host gem ships no blog generator yet,
// so the request is only logged.
func (h *hostAdapter) GenerateBlog(ctx context.Context, fw models.Framework, theme string) error {
	logger.FromContextOr(ctx, h.logger).Info().
		Str(logger.FieldFramework, fw.String()).
		Str(logger.FieldTheme, theme).
		Msg("blog scaffolding not available, skipping")
	return nil
}

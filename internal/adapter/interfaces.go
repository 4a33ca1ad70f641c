// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the collaborators through which railsui acts on
// the host Rails project.
//
// [HostAdapter] decouples the installer service from the host: it answers
// whether a CSS framework is already installed and shells out to the host's
// rails and bundle executables through a [CommandRunner]. The runner shipped
// here ([NewCommandRunner]) executes commands in the project root with a
// per-command timeout, or only logs them in dry-run mode.
//
// Failures are returned wrapped around the original error, so callers can
// still match an [*exec.ExitError] or a context error with [errors.As] and
// [errors.Is]. Nothing is retried.
package adapter

import (
	"context"

	"github.com/welloca/railsui/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/host_adapter_mock.go -package=mock

// CommandRunner executes a single external command to completion.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// HostAdapter performs the side effects of a settings save on the host
// project.
type HostAdapter interface {
	// FrameworkInstalled reports whether the assets of fw are already present
	// in the host project.
	FrameworkInstalled(ctx context.Context, fw models.Framework) (bool, error)

	// RunTask runs a rake task through the host's rails executable.
	RunTask(ctx context.Context, task string) error

	// AddDependency adds a gem to the host's bundle.
	AddDependency(ctx context.Context, pkg string) error

	// GenerateStaticPage runs the static page generator for page. The
	// framework and theme options are passed only when set.
	GenerateStaticPage(ctx context.Context, page models.Page, fw models.Framework, theme string) error

	// GenerateBlog scaffolds the blog for fw and theme.
	GenerateBlog(ctx context.Context, fw models.Framework, theme string) error
}

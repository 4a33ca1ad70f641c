package service

import (
	"context"

	"github.com/welloca/railsui/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/installer_service_mock.go -package=mock

// InstallerService persists settings and drives the install side effects on
// the host project.
type InstallerService interface {
	// Save persists settings, makes them the active record and runs every
	// pending install step. The first failing step aborts the run.
	Save(ctx context.Context, settings *models.Settings) error

	// InstallFramework installs the CSS framework of the active record unless
	// the host already has it. FrameworkNone is a no-op.
	InstallFramework(ctx context.Context) error

	// CopyTemplate copies a bundled template into the host project unless the
	// destination exists, and reports whether a copy happened.
	CopyTemplate(ctx context.Context, filename string) (bool, error)
}

// IDGenerator produces run identifiers.
type IDGenerator interface {
	Generate() string
}

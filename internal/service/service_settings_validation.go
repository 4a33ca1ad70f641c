package service

import (
	"context"
	"fmt"

	"github.com/welloca/railsui/internal/validators"
	"github.com/welloca/railsui/models"
)

// InstallerServiceWrapper defines middleware composition for InstallerService.
// It lives outside interfaces.go so that mockgen never has to import this
// package.
type InstallerServiceWrapper interface {
	Wrap(InstallerService) InstallerService // returns a decorated InstallerService applying additional behavior
}

// SettingsValidationService rejects invalid settings before anything is
// written or run.
type SettingsValidationService struct {
	inner     InstallerService
	validator validators.Validator
}

func NewSettingsValidationService(validator validators.Validator) InstallerServiceWrapper {
	return &SettingsValidationService{
		validator: validator,
	}
}

func (v *SettingsValidationService) Save(ctx context.Context, settings *models.Settings) error {
	if settings == nil {
		return ErrNoSettingsProvided
	}

	if err := v.validator.Validate(ctx, settings); err != nil {
		return fmt.Errorf("error during settings validation before saving: %w", err)
	}

	return v.inner.Save(ctx, settings)
}

func (v *SettingsValidationService) InstallFramework(ctx context.Context) error {
	return v.inner.InstallFramework(ctx)
}

func (v *SettingsValidationService) CopyTemplate(ctx context.Context, filename string) (bool, error) {
	return v.inner.CopyTemplate(ctx, filename)
}

func (v *SettingsValidationService) Wrap(wrapped InstallerService) InstallerService {
	v.inner = wrapped
	return v
}

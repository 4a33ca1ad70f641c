package service

import (
	"github.com/welloca/railsui/internal/adapter"
	"github.com/welloca/railsui/internal/app"
	"github.com/welloca/railsui/internal/logger"
	"github.com/welloca/railsui/internal/store"
	"github.com/welloca/railsui/internal/utils"
	"github.com/welloca/railsui/internal/validators"
)

type Services struct {
	InstallerService InstallerService
}

func NewServices(settingsStore store.SettingsStore, host adapter.HostAdapter, appCtx *app.Context, logger *logger.Logger) *Services {
	installer := NewInstallerService(settingsStore, host, appCtx, utils.NewUUIDGenerator(), logger)

	return &Services{
		InstallerService: NewSettingsValidationService(validators.NewSettingsValidator()).Wrap(installer),
	}
}

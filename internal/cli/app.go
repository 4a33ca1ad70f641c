package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/welloca/railsui/internal/adapter"
	"github.com/welloca/railsui/internal/app"
	"github.com/welloca/railsui/internal/config"
	"github.com/welloca/railsui/internal/logger"
	"github.com/welloca/railsui/internal/service"
	"github.com/welloca/railsui/internal/store"
	"github.com/welloca/railsui/internal/validators"
	"github.com/welloca/railsui/internal/workers"
)

// App bundles the collaborators shared by every command.
type App struct {
	cfg *config.StructuredConfig

	context  *app.Context
	store    store.SettingsStore
	services *service.Services
	watcher  *workers.SettingsWatcher

	logger *logger.Logger
}

// NewApp loads the persisted settings of the project described by cfg and
// builds the application around them. Host command output goes to stdout
// and stderr.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, stdout, stderr io.Writer, log *logger.Logger) (*App, error) {
	settingsStore := store.NewFileSettingsStore(cfg.Project, validators.NewSettingsValidator(), log)

	settings, err := settingsStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	appCtx := app.NewContext(settings)

	runner := adapter.NewCommandRunner(cfg.Project.Root, cfg.Host, stdout, stderr, log)
	host := adapter.NewHostAdapter(cfg.Project, cfg.Host, runner, log)

	return &App{
		cfg:      cfg,
		context:  appCtx,
		store:    settingsStore,
		services: service.NewServices(settingsStore, host, appCtx, log),
		watcher:  workers.NewSettingsWatcher(settingsStore, appCtx, workers.DefaultReloadDebounce, log),
		logger:   log,
	}, nil
}

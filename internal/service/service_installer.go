package service

import (
	"context"
	"fmt"

	"github.com/welloca/railsui/internal/adapter"
	"github.com/welloca/railsui/internal/app"
	"github.com/welloca/railsui/internal/logger"
	"github.com/welloca/railsui/internal/store"
	"github.com/welloca/railsui/internal/utils"
	"github.com/welloca/railsui/models"
)

// Host tasks and dependencies run by the framework installers.
const (
	TaskInstallBootstrap = "railsui:framework:install:bootstrap"
	TaskInstallTailwind  = "railsui:framework:install:tailwind"
	TaskInstallBulma     = "railsui:framework:install:bulma"

	DependencySassRails = "sass-rails"
)

type installStepKind int

const (
	stepTask installStepKind = iota
	stepDependency
)

type installStep struct {
	kind installStepKind
	arg  string
}

// frameworkInstallers maps every installable framework to its ordered steps.
// FrameworkNone has no entry.
var frameworkInstallers = map[models.Framework][]installStep{
	models.FrameworkBootstrap: {
		{kind: stepTask, arg: TaskInstallBootstrap},
	},
	models.FrameworkTailwind: {
		{kind: stepTask, arg: TaskInstallTailwind},
	},
	models.FrameworkBulma: {
		{kind: stepDependency, arg: DependencySassRails},
		{kind: stepTask, arg: TaskInstallBulma},
	},
}

type installerService struct {
	store  store.SettingsStore
	host   adapter.HostAdapter
	appCtx *app.Context
	ids    IDGenerator

	logger *logger.Logger
}

func NewInstallerService(settingsStore store.SettingsStore, host adapter.HostAdapter, appCtx *app.Context, ids IDGenerator, logger *logger.Logger) InstallerService {
	return &installerService{
		store:  settingsStore,
		host:   host,
		appCtx: appCtx,
		ids:    ids,
		logger: logger.WithComponent("installer"),
	}
}

func (s *installerService) Save(ctx context.Context, settings *models.Settings) error {
	if settings == nil {
		return ErrNoSettingsProvided
	}

	ctx, log := s.startRun(ctx, "save")

	if err := s.store.Save(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	s.appCtx.Swap(settings.Clone())
	current := s.appCtx.Current()

	if err := s.installFramework(ctx, log, current); err != nil {
		return err
	}

	fw, theme := current.CSSFramework(), current.Theme()

	if current.Blog() {
		log.Info().Str(logger.FieldStep, "blog").Msg("scaffolding blog")
		if err := s.host.GenerateBlog(ctx, fw, theme); err != nil {
			return fmt.Errorf("generate blog: %w", err)
		}
	}

	// about and pricing are generated unless the host already has them
	if !current.About() {
		if err := s.generatePage(ctx, log, models.PageAbout, fw, theme); err != nil {
			return err
		}
	}
	if !current.Pricing() {
		if err := s.generatePage(ctx, log, models.PagePricing, fw, theme); err != nil {
			return err
		}
	}

	log.Info().Msg("settings saved and applied")
	return nil
}

func (s *installerService) InstallFramework(ctx context.Context) error {
	ctx, log := s.startRun(ctx, "install")
	return s.installFramework(ctx, log, s.appCtx.Current())
}

func (s *installerService) CopyTemplate(ctx context.Context, filename string) (bool, error) {
	copied, err := s.store.CopyTemplateIfAbsent(ctx, filename)
	if err != nil {
		return false, fmt.Errorf("copy template %s: %w", filename, err)
	}
	return copied, nil
}

func (s *installerService) installFramework(ctx context.Context, log *logger.Logger, settings *models.Settings) error {
	fw := settings.CSSFramework()
	steps, ok := frameworkInstallers[fw]
	if !ok {
		log.Debug().Msg("no css framework selected, nothing to install")
		return nil
	}

	installed, err := s.host.FrameworkInstalled(ctx, fw)
	if err != nil {
		return fmt.Errorf("check %s installation: %w", fw, err)
	}
	if installed {
		log.Info().Str(logger.FieldFramework, fw.String()).Bool(logger.FieldInstalled, true).
			Msg("css framework already installed")
		return nil
	}

	log.Info().Str(logger.FieldFramework, fw.String()).Msg("installing css framework")
	for _, step := range steps {
		switch step.kind {
		case stepDependency:
			if err := s.host.AddDependency(ctx, step.arg); err != nil {
				return fmt.Errorf("add dependency %s: %w", step.arg, err)
			}
		case stepTask:
			if err := s.host.RunTask(ctx, step.arg); err != nil {
				return fmt.Errorf("run task %s: %w", step.arg, err)
			}
		}
	}

	return nil
}

func (s *installerService) generatePage(ctx context.Context, log *logger.Logger, page models.Page, fw models.Framework, theme string) error {
	log.Info().Str(logger.FieldPage, page.String()).Msg("scaffolding static page")
	if err := s.host.GenerateStaticPage(ctx, page, fw, theme); err != nil {
		return fmt.Errorf("generate %s page: %w", page, err)
	}
	return nil
}

// startRun tags ctx with a run id, unless the caller already did, and returns
// the matching run-scoped logger.
func (s *installerService) startRun(ctx context.Context, op string) (context.Context, *logger.Logger) {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok {
		runID = s.ids.Generate()
		ctx = utils.WithRunID(ctx, runID)
	}

	log := &logger.Logger{Logger: s.logger.With().
		Str(logger.FieldRunID, runID).
		Str(logger.FieldStep, op).
		Logger()}

	return log.WithContext(ctx), log
}

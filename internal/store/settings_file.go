package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/welloca/railsui/internal/config"
	"github.com/welloca/railsui/internal/logger"
	"github.com/welloca/railsui/internal/validators"
	"github.com/welloca/railsui/models"
	"gopkg.in/yaml.v3"
)

// settingsDocument fixes the order in which keys are written.
type settingsDocument struct {
	ApplicationName string `yaml:"application_name"`
	CSSFramework    string `yaml:"css_framework"`
	PrimaryColor    string `yaml:"primary_color"`
	SecondaryColor  string `yaml:"secondary_color"`
	TertiaryColor   string `yaml:"tertiary_color"`
	FontFamily      string `yaml:"font_family"`
	Theme           string `yaml:"theme"`
	About           bool   `yaml:"about"`
	Pricing         bool   `yaml:"pricing"`
	Blog            bool   `yaml:"blog"`
}

type fileSettingsStore struct {
	root         string
	settingsPath string
	templatesDir string

	validator validators.Validator
	logger    *logger.Logger
}

// NewFileSettingsStore returns a [SettingsStore] backed by the YAML file
// located by cfg.
func NewFileSettingsStore(cfg config.Project, validator validators.Validator, log *logger.Logger) SettingsStore {
	return &fileSettingsStore{
		root:         cfg.Root,
		settingsPath: cfg.SettingsPath(),
		templatesDir: cfg.TemplatesPath(),
		validator:    validator,
		logger:       log.WithComponent("store"),
	}
}

func (s *fileSettingsStore) Path() string {
	return s.settingsPath
}

func (s *fileSettingsStore) Load(ctx context.Context) (*models.Settings, error) {
	// #nosec G304 -- the settings path comes from the operator's configuration
	data, err := os.ReadFile(s.settingsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug().Str(logger.FieldPath, s.settingsPath).Msg("settings file not found, using defaults")
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	options, err := decodeSettings(data)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", s.settingsPath, err)
	}

	settings, err := models.NewSettings(options)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", s.settingsPath, err)
	}

	if err := s.validator.Validate(ctx, settings); err != nil {
		return nil, fmt.Errorf("error loading %s: %w", s.settingsPath, err)
	}

	s.logger.Debug().Str(logger.FieldPath, s.settingsPath).Msg("settings loaded")
	return settings, nil
}

func (s *fileSettingsStore) Save(ctx context.Context, settings *models.Settings) error {
	if err := s.validator.Validate(ctx, settings); err != nil {
		return fmt.Errorf("error validating settings: %w", err)
	}

	data, err := encodeSettings(settings)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.settingsPath), 0o755); err != nil {
		return fmt.Errorf("error creating settings directory: %w", err)
	}

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	if err := renameio.WriteFile(s.settingsPath, data, 0o644); err != nil {
		return fmt.Errorf("error writing settings file: %w", err)
	}

	s.logger.Info().Str(logger.FieldPath, s.settingsPath).Msg("settings saved")
	return nil
}

func encodeSettings(settings *models.Settings) ([]byte, error) {
	doc := settingsDocument{
		ApplicationName: settings.ApplicationName(),
		CSSFramework:    settings.CSSFramework().String(),
		PrimaryColor:    settings.PrimaryColor(),
		SecondaryColor:  settings.SecondaryColor(),
		TertiaryColor:   settings.TertiaryColor(),
		FontFamily:      settings.FontFamily(),
		Theme:           settings.Theme(),
		About:           settings.About(),
		Pricing:         settings.Pricing(),
		Blog:            settings.Blog(),
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("error encoding settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("error encoding settings: %w", err)
	}

	return buf.Bytes(), nil
}

package store

import (
	"context"

	"github.com/welloca/railsui/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_store_mock.go -package=mock

// SettingsStore persists the design settings of a host project.
type SettingsStore interface {
	// Load returns the persisted settings, or defaults when the settings file
	// does not exist. A file that cannot be parsed fails with
	// ErrMalformedSettings; a file carrying a shape outside the allow-list
	// fails with ErrDisallowedType.
	Load(ctx context.Context) (*models.Settings, error)

	// Save writes the full record, replacing any previous file atomically.
	Save(ctx context.Context, settings *models.Settings) error

	// CopyTemplateIfAbsent copies a bundled template into the project unless
	// the destination already exists. It reports whether a copy happened.
	CopyTemplateIfAbsent(ctx context.Context, filename string) (bool, error)

	// Path returns the absolute settings file path.
	Path() string
}

package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/welloca/railsui/models"
)

var (
	hexColorRe  = regexp.MustCompile(`^(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	themeSlugRe = regexp.MustCompile(`^[a-z0-9_-]*$`)
)

type SettingsValidator struct {
}

func NewSettingsValidator() Validator {
	return &SettingsValidator{}
}

func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Settings:
		return v.validateSettings(ctx, &value, fields...)
	case *models.Settings:
		if value == nil {
			return fmt.Errorf("%w: nil settings", ErrUnsupportedType)
		}
		return v.validateSettings(ctx, value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// validateSettings checks the requested keys, or every key when fields is
// empty, and joins all failures.
func (v *SettingsValidator) validateSettings(_ context.Context, s *models.Settings, fields ...string) error {
	if len(fields) == 0 {
		fields = models.SettingsKeys()
	}

	var errs []error
	for _, field := range fields {
		if err := v.validateField(s, field); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (v *SettingsValidator) validateField(s *models.Settings, field string) error {
	switch field {
	case models.KeyApplicationName:
		if strings.TrimSpace(s.ApplicationName()) == "" {
			return ErrEmptyApplicationName
		}
	case models.KeyFontFamily:
		if strings.TrimSpace(s.FontFamily()) == "" {
			return ErrEmptyFontFamily
		}
	case models.KeyPrimaryColor:
		return validateColor(field, s.PrimaryColor())
	case models.KeySecondaryColor:
		return validateColor(field, s.SecondaryColor())
	case models.KeyTertiaryColor:
		return validateColor(field, s.TertiaryColor())
	case models.KeyTheme:
		if !themeSlugRe.MatchString(s.Theme()) {
			return fmt.Errorf("%w: %q", ErrInvalidTheme, s.Theme())
		}
	case models.KeyCSSFramework, models.KeyAbout, models.KeyPricing, models.KeyBlog:
		// normalised by the setters
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	return nil
}

func validateColor(field, color string) error {
	if !hexColorRe.MatchString(color) {
		return fmt.Errorf("%w: %s=%q", ErrInvalidColor, field, color)
	}
	return nil
}

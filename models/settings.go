// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"sort"
	"strings"
)

// Persisted keys of the settings file. The order of [SettingsKeys] is the
// order in which keys are written to disk.
const (
	KeyApplicationName = "application_name"
	KeyCSSFramework    = "css_framework"
	KeyPrimaryColor    = "primary_color"
	KeySecondaryColor  = "secondary_color"
	KeyTertiaryColor   = "tertiary_color"
	KeyFontFamily      = "font_family"
	KeyTheme           = "theme"
	KeyAbout           = "about"
	KeyPricing         = "pricing"
	KeyBlog            = "blog"
)

// Default values applied to every key that is absent (or nil) at construction.
const (
	DefaultApplicationName = "Rails UI"
	DefaultPrimaryColor    = "4338CA"
	DefaultSecondaryColor  = "FF8C69"
	DefaultTertiaryColor   = "333333"
	DefaultFontFamily      = "Inter, sans-serif"
)

var settingsKeys = []string{
	KeyApplicationName,
	KeyCSSFramework,
	KeyPrimaryColor,
	KeySecondaryColor,
	KeyTertiaryColor,
	KeyFontFamily,
	KeyTheme,
	KeyAbout,
	KeyPricing,
	KeyBlog,
}

// SettingsKeys returns every recognised settings key in persisted order.
func SettingsKeys() []string {
	keys := make([]string, len(settingsKeys))
	copy(keys, settingsKeys)
	return keys
}

// IsSettingsKey reports whether key names a field of [Settings].
func IsSettingsKey(key string) bool {
	for _, k := range settingsKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Settings is the design preferences record of a host project.
//
// Fields are unexported so that every mutation goes through a setter: string
// colours are normalised, the framework identifier is reduced to a known
// [Framework] and the page flags are always stored as strict booleans.
type Settings struct {
	applicationName string
	cssFramework    Framework
	primaryColor    string
	secondaryColor  string
	tertiaryColor   string
	fontFamily      string
	theme           string
	about           bool
	pricing         bool
	blog            bool
}

// DefaultSettings returns a record with every field set to its default.
func DefaultSettings() *Settings {
	return &Settings{
		applicationName: DefaultApplicationName,
		cssFramework:    FrameworkNone,
		primaryColor:    DefaultPrimaryColor,
		secondaryColor:  DefaultSecondaryColor,
		tertiaryColor:   DefaultTertiaryColor,
		fontFamily:      DefaultFontFamily,
		theme:           "",
	}
}

// NewSettings builds a fully populated record from zero or more recognised
// options. Keys missing from options, or mapped to nil, keep their default.
//
// Any unrecognised key fails construction with an [*UnknownOptionError]
// listing every offending key; a value of the wrong shape for its key fails
// with [ErrInvalidOption].
func NewSettings(options map[string]any) (*Settings, error) {
	var unknown []string
	for key := range options {
		if !IsSettingsKey(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownOptionError{Keys: unknown}
	}

	s := DefaultSettings()
	for _, key := range settingsKeys {
		value, ok := options[key]
		if !ok || value == nil {
			continue
		}
		if err := s.Set(key, value); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Set assigns a single field addressed by its persisted key.
func (s *Settings) Set(key string, value any) error {
	switch key {
	case KeyAbout:
		s.SetAbout(value)
		return nil
	case KeyPricing:
		s.SetPricing(value)
		return nil
	case KeyBlog:
		s.SetBlog(value)
		return nil
	case KeyCSSFramework:
		if fw, ok := value.(Framework); ok {
			s.cssFramework = fw
			return nil
		}
	}

	if !IsSettingsKey(key) {
		return &UnknownOptionError{Keys: []string{key}}
	}

	str, err := stringOption(key, value)
	if err != nil {
		return err
	}

	switch key {
	case KeyApplicationName:
		s.SetApplicationName(str)
	case KeyCSSFramework:
		s.SetCSSFramework(str)
	case KeyPrimaryColor:
		s.SetPrimaryColor(str)
	case KeySecondaryColor:
		s.SetSecondaryColor(str)
	case KeyTertiaryColor:
		s.SetTertiaryColor(str)
	case KeyFontFamily:
		s.SetFontFamily(str)
	case KeyTheme:
		s.SetTheme(str)
	}

	return nil
}

// stringOption accepts strings and fmt.Stringer values only. Numbers are
// rejected rather than formatted so that a colour like 333333 written without
// quotes in YAML is reported instead of silently reinterpreted.
func stringOption(key string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOption, key, value)
	}
}

func (s *Settings) ApplicationName() string { return s.applicationName }
func (s *Settings) CSSFramework() Framework  { return s.cssFramework }
func (s *Settings) PrimaryColor() string     { return s.primaryColor }
func (s *Settings) SecondaryColor() string   { return s.secondaryColor }
func (s *Settings) TertiaryColor() string    { return s.tertiaryColor }
func (s *Settings) FontFamily() string       { return s.fontFamily }
func (s *Settings) Theme() string            { return s.theme }

// About reports whether the host already provides an about page.
func (s *Settings) About() bool { return s.about }

// Pricing reports whether the host already provides a pricing page.
func (s *Settings) Pricing() bool { return s.pricing }

// Blog reports whether blog scaffolding was requested.
func (s *Settings) Blog() bool { return s.blog }

func (s *Settings) SetApplicationName(name string) { s.applicationName = name }

// SetCSSFramework stores the framework identified by raw. Unknown
// identifiers are stored as [FrameworkNone].
func (s *Settings) SetCSSFramework(raw string) { s.cssFramework = ParseFramework(raw) }

func (s *Settings) SetPrimaryColor(c string)   { s.primaryColor = normalizeColor(c) }
func (s *Settings) SetSecondaryColor(c string) { s.secondaryColor = normalizeColor(c) }
func (s *Settings) SetTertiaryColor(c string)  { s.tertiaryColor = normalizeColor(c) }
func (s *Settings) SetFontFamily(font string)  { s.fontFamily = font }
func (s *Settings) SetTheme(theme string)      { s.theme = strings.TrimSpace(theme) }

// SetAbout coerces value with [ParseBool].
func (s *Settings) SetAbout(value any) { s.about = ParseBool(value) }

// SetPricing coerces value with [ParseBool].
func (s *Settings) SetPricing(value any) { s.pricing = ParseBool(value) }

// SetBlog coerces value with [ParseBool].
func (s *Settings) SetBlog(value any) { s.blog = ParseBool(value) }

// Clone returns an independent copy of the record.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}

func normalizeColor(c string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c), "#"))
}

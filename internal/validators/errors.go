package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidColor         = errors.New("invalid hex color")
	ErrEmptyApplicationName = errors.New("application name is required")
	ErrEmptyFontFamily      = errors.New("font family is required")
	ErrInvalidTheme         = errors.New("invalid theme identifier")
)

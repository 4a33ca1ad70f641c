package store

import "errors"

// Sentinel errors returned by [SettingsStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrMalformedSettings is returned when the settings file exists but is
	// not valid YAML, or is structurally broken (no document, several
	// documents, duplicate keys, non-string keys).
	ErrMalformedSettings = errors.New("malformed settings file")

	// ErrDisallowedType is returned when the settings file contains a node
	// outside the allow-list: a root that is not a plain mapping or a
	// settings record, any foreign tag, alias or anchor, or nested
	// collections.
	ErrDisallowedType = errors.New("disallowed type in settings file")

	// ErrPathOutsideProject is returned when a template file name resolves
	// outside the project root or the templates directory.
	ErrPathOutsideProject = errors.New("path escapes project directory")

	// ErrTemplateNotFound is returned when the bundled template to copy does
	// not exist.
	ErrTemplateNotFound = errors.New("template not found")
)

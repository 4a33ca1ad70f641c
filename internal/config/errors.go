package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidProjectConfigs indicates an empty project root or settings
	// file path.
	ErrInvalidProjectConfigs = errors.New("invalid project configuration")
	// ErrInvalidHostConfigs indicates missing host executables or a negative
	// command timeout.
	ErrInvalidHostConfigs = errors.New("invalid host configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)

package service

import "errors"

var (
	ErrNoSettingsProvided = errors.New("no settings provided")
)

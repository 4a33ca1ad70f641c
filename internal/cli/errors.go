package cli

import "errors"

var (
	ErrInvalidAssignment = errors.New("invalid assignment, expected key=value")
)

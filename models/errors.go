package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownOption is matched by [*UnknownOptionError].
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidOption is returned when an option value has the wrong shape
	// for its key.
	ErrInvalidOption = errors.New("invalid option value")
)

// UnknownOptionError is returned by [NewSettings] and [Settings.Set] when an
// option key does not name a settings field.
type UnknownOptionError struct {
	// Keys holds the offending keys in sorted order.
	Keys []string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownOption, strings.Join(e.Keys, ", "))
}

// Is makes errors.Is(err, ErrUnknownOption) match.
func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrUnknownOption
}

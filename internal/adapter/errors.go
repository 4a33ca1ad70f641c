package adapter

import "errors"

var (
	ErrCommandFailed        = errors.New("host command failed")
	ErrUnsupportedFramework = errors.New("unsupported css framework")
)

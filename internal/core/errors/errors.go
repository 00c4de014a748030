package errors

import "errors"

var (
	ErrDeviceNotFound   = errors.New("device not found")
	ErrInvalidWindow    = errors.New("invalid analysis window: start is after end")
	ErrInvalidParameter = errors.New("invalid parameter id")
)

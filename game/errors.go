package game

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid board config")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrBadSnapshot   = errors.New("malformed board snapshot")
)

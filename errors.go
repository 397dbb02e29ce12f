package sortedlist

import "errors"

var (
	ErrInvalidKind = errors.New("kind must be either string or integer")

	ErrTypeMismatch = errors.New("type mismatched")
)

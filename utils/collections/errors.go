package collections

import "errors"

var (
	ErrValueExisted    = errors.New("value already in collection")
	ErrValueNotExisted = errors.New("value not in collection")
)

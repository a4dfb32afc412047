package subjects

import "errors"

var (
	ErrNotFound     = errors.New("subject not found")
	ErrInvalidInput = errors.New("invalid subject input")
)

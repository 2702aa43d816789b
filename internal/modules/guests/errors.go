package guests

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("guest not found")
)

package rooms

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("room not found")
	ErrRoomExists = errors.New("room number already registered")
)

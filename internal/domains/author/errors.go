package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrInvalidID      = errors.New("invalid author id")
)

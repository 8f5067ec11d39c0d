package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidID        = errors.New("invalid category id")
)

package publisher

import "errors"

var (
	ErrPublisherNotFound = errors.New("publisher not found")
	ErrInvalidID         = errors.New("invalid publisher id")
)

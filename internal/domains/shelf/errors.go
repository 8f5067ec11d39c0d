package shelf

import "errors"

var (
	ErrShelfNotFound = errors.New("shelf not found")
	ErrInvalidID     = errors.New("invalid shelf id")

	// ErrShelfInUse blocks delete and rename while any book still sits on
	// the shelf.
	ErrShelfInUse = errors.New("shelf is referenced by existing books")
)

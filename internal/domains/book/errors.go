package book

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrInvalidID    = errors.New("invalid book id")
	ErrUploadFailed = errors.New("asset upload failed")
)

package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidID          = errors.New("invalid user id")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid refresh token")
)

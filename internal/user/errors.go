package user

import "errors"

var (
	ErrInvalidUsername    = errors.New("username must be six digits")
	ErrInvalidPassword    = errors.New("password must be 1-20 characters")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

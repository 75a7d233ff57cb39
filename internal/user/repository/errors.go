package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get user")
	ErrFailedToInsert = errors.New("failed to insert user")
	ErrFailedToRevoke = errors.New("failed to blacklist token")
	ErrFailedToCheck  = errors.New("failed to check token blacklist")
	ErrFailedToPurge  = errors.New("failed to purge expired tokens")
)

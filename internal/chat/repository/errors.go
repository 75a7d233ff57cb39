package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list messages")
	ErrFailedToGet    = errors.New("failed to get message")
	ErrFailedToInsert = errors.New("failed to insert message")
	ErrFailedToDelete = errors.New("failed to delete message")
)

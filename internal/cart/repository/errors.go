package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list cart items")
	ErrFailedToGet    = errors.New("failed to get cart item")
	ErrFailedToInsert = errors.New("failed to insert cart item")
	ErrFailedToUpdate = errors.New("failed to update cart item")
	ErrFailedToDelete = errors.New("failed to delete cart item")
)

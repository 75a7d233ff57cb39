package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list products")
	ErrFailedToGet    = errors.New("failed to get product")
	ErrFailedToInsert = errors.New("failed to insert product")
	ErrFailedToUpdate = errors.New("failed to update product")
	ErrFailedToDelete = errors.New("failed to delete product")
)

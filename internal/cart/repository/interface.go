package repository

import (
	"context"

	"mall-backend/internal/model"
)

// Repository defines all data access methods for the CartItem entity.
type Repository interface {
	// ListByUser returns the user's cart with product rows joined.
	ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error)

	// GetByID returns zero-value CartItem (ID == 0) when not found.
	GetByID(ctx context.Context, id int64, userID int64) (model.CartItem, error)

	// GetByProduct returns the user's line for a product, zero-value when absent.
	GetByProduct(ctx context.Context, userID int64, productID string) (model.CartItem, error)

	Insert(ctx context.Context, userID int64, productID string, quantity int) error
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error

	// DeleteByProduct removes every cart line referencing a product.
	DeleteByProduct(ctx context.Context, productID string) error
}

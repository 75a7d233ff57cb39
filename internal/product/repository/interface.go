package repository

import (
	"context"

	"mall-backend/internal/model"
)

// Repository defines all data access methods for the Product entity. It also
// satisfies the chat domain's read-only Catalog interface.
type Repository interface {
	CreateProduct(ctx context.Context, p model.Product) error
	GetProduct(ctx context.Context, id string) (model.Product, error)
	UpdateProduct(ctx context.Context, p model.Product) error
	DeleteProduct(ctx context.Context, id string) error

	// ListAll returns the full catalog in natural order.
	ListAll(ctx context.Context) ([]model.Product, error)

	// SearchByKeywords returns items whose name or description contains any
	// keyword, case-insensitively, in the catalog's natural order.
	SearchByKeywords(ctx context.Context, keywords []string) ([]model.Product, error)
}

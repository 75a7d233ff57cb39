package product

import (
	"context"

	"mall-backend/internal/model"
)

// UseCase is the catalog domain entry point.
type UseCase interface {
	// List returns the storefront selection: the full catalog when small,
	// otherwise a rotating random subset.
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, input CreateInput) (model.Product, error)
	Update(ctx context.Context, input UpdateInput) (model.Product, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, keyword string) ([]model.Product, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)

	// Seed inserts the stock catalog items that are missing.
	Seed(ctx context.Context) error
}

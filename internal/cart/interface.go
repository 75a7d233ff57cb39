package cart

import (
	"context"

	"mall-backend/internal/model"
)

// UseCase is the cart domain entry point. All operations are scoped to the
// authenticated user and return the resulting cart state.
type UseCase interface {
	Get(ctx context.Context, sc model.Scope) ([]model.CartItem, error)
	Add(ctx context.Context, sc model.Scope, productID string) ([]model.CartItem, error)
	UpdateQuantity(ctx context.Context, sc model.Scope, itemID int64, quantity int) ([]model.CartItem, error)
	Remove(ctx context.Context, sc model.Scope, itemID int64) ([]model.CartItem, error)
}

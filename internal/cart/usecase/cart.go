package usecase

import (
	"context"

	"mall-backend/internal/cart"
	"mall-backend/internal/model"
)

// Get returns the user's current cart.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) ([]model.CartItem, error) {
	return uc.repo.ListByUser(ctx, sc.UserID)
}

// Add puts one unit of a product into the cart. Adding a product that is
// already in the cart increments its quantity instead of creating a second
// line.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, productID string) ([]model.CartItem, error) {
	if productID == "" {
		return nil, cart.ErrMissingParams
	}

	product, err := uc.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.ID == "" {
		return nil, cart.ErrProductNotFound
	}

	existing, err := uc.repo.GetByProduct(ctx, sc.UserID, productID)
	if err != nil {
		return nil, err
	}

	if existing.ID != 0 {
		if err := uc.repo.UpdateQuantity(ctx, existing.ID, existing.Quantity+1); err != nil {
			return nil, err
		}
	} else {
		if err := uc.repo.Insert(ctx, sc.UserID, productID, 1); err != nil {
			return nil, err
		}
	}

	return uc.repo.ListByUser(ctx, sc.UserID)
}

// UpdateQuantity sets an item's quantity. A quantity of zero or less removes
// the line entirely.
func (uc *implUseCase) UpdateQuantity(ctx context.Context, sc model.Scope, itemID int64, quantity int) ([]model.CartItem, error) {
	if itemID == 0 {
		return nil, cart.ErrMissingParams
	}

	item, err := uc.repo.GetByID(ctx, itemID, sc.UserID)
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, cart.ErrItemNotFound
	}

	if quantity <= 0 {
		if err := uc.repo.Delete(ctx, item.ID); err != nil {
			return nil, err
		}
	} else {
		if err := uc.repo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
			return nil, err
		}
	}

	return uc.repo.ListByUser(ctx, sc.UserID)
}

// Remove deletes an item the user owns.
func (uc *implUseCase) Remove(ctx context.Context, sc model.Scope, itemID int64) ([]model.CartItem, error) {
	item, err := uc.repo.GetByID(ctx, itemID, sc.UserID)
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, cart.ErrItemNotFound
	}

	if err := uc.repo.Delete(ctx, item.ID); err != nil {
		return nil, err
	}

	return uc.repo.ListByUser(ctx, sc.UserID)
}

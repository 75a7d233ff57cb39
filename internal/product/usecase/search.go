package usecase

import (
	"context"

	"mall-backend/internal/model"
	"mall-backend/internal/product"
)

// Search returns items whose name or description contains the keyword.
func (uc *implUseCase) Search(ctx context.Context, keyword string) ([]model.Product, error) {
	if keyword == "" {
		return nil, product.ErrMissingParams
	}

	products, err := uc.repo.SearchByKeywords(ctx, []string{keyword})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search: %v", err)
		return nil, err
	}
	return products, nil
}

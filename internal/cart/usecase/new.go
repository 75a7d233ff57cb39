package usecase

import (
	"context"

	"mall-backend/internal/cart"
	"mall-backend/internal/cart/repository"
	"mall-backend/internal/model"
	"mall-backend/pkg/log"
)

// ProductGetter looks up a catalog row so Add can validate the product
// before creating a cart line.
type ProductGetter interface {
	GetProduct(ctx context.Context, id string) (model.Product, error)
}

// implUseCase is the private implementation of cart.UseCase.
type implUseCase struct {
	repo     repository.Repository
	products ProductGetter
	l        log.Logger
}

// New creates a new cart UseCase implementation.
func New(repo repository.Repository, products ProductGetter, l log.Logger) cart.UseCase {
	return &implUseCase{
		repo:     repo,
		products: products,
		l:        l,
	}
}

package usecase

import (
	"context"
	"sync"

	"mall-backend/internal/product/repository"
	"mall-backend/pkg/log"
)

// CartCleaner removes cart lines referencing a product being deleted.
type CartCleaner interface {
	DeleteByProduct(ctx context.Context, productID string) error
}

// implUseCase is the private implementation of product.UseCase.
type implUseCase struct {
	repo repository.Repository
	cart CartCleaner
	l    log.Logger

	// mu guards the previous storefront combination used by List.
	mu       sync.Mutex
	lastList []string
}

// New creates a new product UseCase implementation.
func New(repo repository.Repository, cart CartCleaner, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		cart: cart,
		l:    l,
	}
}

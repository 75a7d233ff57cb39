package usecase

import (
	"context"
	"math/rand"
	"sort"

	"mall-backend/internal/model"
)

// storefrontSize is how many products the storefront shows per request.
const storefrontSize = 5

// List returns all products when the catalog is small, otherwise a random
// selection of storefrontSize items that differs from the previous one when
// possible (up to 10 attempts).
func (uc *implUseCase) List(ctx context.Context) ([]model.Product, error) {
	products, err := uc.repo.ListAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListAll: %v", err)
		return nil, err
	}

	if len(products) <= storefrontSize {
		return products, nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	var selected []model.Product
	for attempt := 0; attempt < 10; attempt++ {
		selected = sample(products, storefrontSize)
		ids := sortedIDs(selected)
		if !equalIDs(ids, uc.lastList) {
			uc.lastList = ids
			return selected, nil
		}
	}

	// Still the same combination after 10 attempts; return it anyway.
	return selected, nil
}

func sample(products []model.Product, n int) []model.Product {
	idx := rand.Perm(len(products))[:n]
	out := make([]model.Product, 0, n)
	for _, i := range idx {
		out = append(out, products[i])
	}
	return out
}

func sortedIDs(products []model.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

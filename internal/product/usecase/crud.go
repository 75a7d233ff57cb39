package usecase

import (
	"context"

	"mall-backend/internal/model"
	"mall-backend/internal/product"
)

// Create inserts a new catalog item after checking for ID collisions.
func (uc *implUseCase) Create(ctx context.Context, input product.CreateInput) (model.Product, error) {
	if input.ID == "" || input.Name == "" || input.Price == 0 {
		return model.Product{}, product.ErrMissingParams
	}

	existing, err := uc.repo.GetProduct(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetProduct: %v", err)
		return model.Product{}, err
	}
	if existing.ID != "" {
		return model.Product{}, product.ErrProductExists
	}

	p := model.Product{
		ID:          input.ID,
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Images:      input.Images,
		Description: input.Description,
	}
	if err := uc.repo.CreateProduct(ctx, p); err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateProduct: %v", err)
		return model.Product{}, err
	}
	return p, nil
}

// Update applies a partial update to an existing item.
func (uc *implUseCase) Update(ctx context.Context, input product.UpdateInput) (model.Product, error) {
	p, err := uc.repo.GetProduct(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetProduct: %v", err)
		return model.Product{}, err
	}
	if p.ID == "" {
		return model.Product{}, product.ErrProductNotFound
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Image != nil {
		p.Image = *input.Image
	}
	if input.Images != nil {
		p.Images = *input.Images
	}
	if input.Description != nil {
		p.Description = *input.Description
	}

	if err := uc.repo.UpdateProduct(ctx, p); err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateProduct: %v", err)
		return model.Product{}, err
	}
	return p, nil
}

// Delete removes an item together with any cart lines referencing it.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetProduct: %v", err)
		return err
	}
	if p.ID == "" {
		return product.ErrProductNotFound
	}

	if err := uc.cart.DeleteByProduct(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete cart cleanup: %v", err)
		return err
	}
	if err := uc.repo.DeleteProduct(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteProduct: %v", err)
		return err
	}
	return nil
}

// Detail returns a single item including its image list; the primary image
// stands in when no extra images are stored.
func (uc *implUseCase) Detail(ctx context.Context, id string) (product.DetailOutput, error) {
	p, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetProduct: %v", err)
		return product.DetailOutput{}, err
	}
	if p.ID == "" {
		return product.DetailOutput{}, product.ErrProductNotFound
	}

	images := p.Images
	if len(images) == 0 && p.Image != "" {
		images = []string{p.Image}
	}
	return product.DetailOutput{Product: p, Images: images}, nil
}

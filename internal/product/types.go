package product

import "mall-backend/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	ID          string
	Name        string
	Price       float64
	Image       string
	Images      []string
	Description string
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Name        *string
	Price       *float64
	Image       *string
	Images      *[]string
	Description *string
}

// --- UseCase Outputs ---

type DetailOutput struct {
	Product model.Product
	// Images always holds at least the primary image when one exists.
	Images []string
}

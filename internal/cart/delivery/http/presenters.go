package http

import (
	"time"

	"mall-backend/internal/model"
)

// --- Request DTOs ---

type addReq struct {
	ProductID string `json:"product_id"`
}

type updateReq struct {
	ItemID   *int64 `json:"item_id"`
	Quantity *int   `json:"quantity"`
}

// --- Response DTOs ---

type cartProductResp struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description,omitempty"`
}

// cartItemResp is the full line used by GET, including timestamps.
type cartItemResp struct {
	ID        int64           `json:"id"`
	Product   cartProductResp `json:"product"`
	Quantity  int             `json:"quantity"`
	UpdatedAt *string         `json:"updated_at"`
}

func newCartItemResp(item model.CartItem) cartItemResp {
	var updatedAt *string
	if item.UpdatedAt != nil {
		s := item.UpdatedAt.UTC().Format(time.RFC3339)
		updatedAt = &s
	}
	return cartItemResp{
		ID: item.ID,
		Product: cartProductResp{
			ID:          item.Product.ID,
			Name:        item.Product.Name,
			Price:       item.Product.Price,
			Image:       item.Product.Image,
			Description: item.Product.Description,
		},
		Quantity:  item.Quantity,
		UpdatedAt: updatedAt,
	}
}

func newCartListResp(items []model.CartItem) []cartItemResp {
	out := make([]cartItemResp, 0, len(items))
	for _, item := range items {
		out = append(out, newCartItemResp(item))
	}
	return out
}

// cartLineResp is the compact line echoed back by mutations.
type cartLineResp struct {
	ID       int64           `json:"id"`
	Product  cartProductResp `json:"product"`
	Quantity int             `json:"quantity"`
}

func newCartLinesResp(items []model.CartItem) []cartLineResp {
	out := make([]cartLineResp, 0, len(items))
	for _, item := range items {
		out = append(out, cartLineResp{
			ID: item.ID,
			Product: cartProductResp{
				ID:    item.Product.ID,
				Name:  item.Product.Name,
				Price: item.Product.Price,
				Image: item.Product.Image,
			},
			Quantity: item.Quantity,
		})
	}
	return out
}

// mutationResp wraps the resulting cart state after a change.
type mutationResp struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Cart    []cartLineResp `json:"cart"`
}

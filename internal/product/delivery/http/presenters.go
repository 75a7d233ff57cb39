package http

import (
	"mall-backend/internal/model"
	"mall-backend/internal/product"
)

// --- Request DTOs ---

type createReq struct {
	ID          string   `json:"id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"required"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
}

func (r createReq) toInput() product.CreateInput {
	return product.CreateInput{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Image:       r.Image,
		Images:      r.Images,
		Description: r.Description,
	}
}

type updateReq struct {
	ID          string    `json:"-"` // populated from URI param
	Name        *string   `json:"name"`
	Price       *float64  `json:"price"`
	Image       *string   `json:"image"`
	Images      *[]string `json:"images"`
	Description *string   `json:"description"`
}

func (r updateReq) toInput() product.UpdateInput {
	return product.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Image:       r.Image,
		Images:      r.Images,
		Description: r.Description,
	}
}

// --- Response DTOs ---

type productResp struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

func newProductResp(p model.Product) productResp {
	return productResp{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
	}
}

func newProductListResp(products []model.Product) []productResp {
	out := make([]productResp, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResp(p))
	}
	return out
}

type detailResp struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
}

func newDetailResp(out product.DetailOutput) detailResp {
	images := out.Images
	if images == nil {
		images = []string{}
	}
	return detailResp{
		ID:          out.Product.ID,
		Name:        out.Product.Name,
		Price:       out.Product.Price,
		Image:       out.Product.Image,
		Images:      images,
		Description: out.Product.Description,
	}
}

type createResp struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

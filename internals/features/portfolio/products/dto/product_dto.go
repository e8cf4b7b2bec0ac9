package dto

import (
	"time"

	"portfolio_backend/internals/features/portfolio/products/model"
	helper "portfolio_backend/internals/helpers"
)

// ============================
// Response DTO
// ============================

type ProductDTO struct {
	ProductID          string    `json:"id"`
	ProductName        string    `json:"name"`
	ProductDescription string    `json:"description"`
	ProductPrice       float64   `json:"price"`
	ProductPriceLabel  string    `json:"price_label"` // "Rp 49.000"
	ProductImageURL    string    `json:"image_url"`
	ProductBuyLink     string    `json:"buy_link"`
	ProductIsActive    bool      `json:"is_active"`
	ProductCreatedAt   time.Time `json:"created_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateProductRequest struct {
	ProductName        string  `json:"name" validate:"required,min=3"`
	ProductDescription string  `json:"description"`
	ProductPrice       float64 `json:"price" validate:"gte=0"`
	ProductImageURL    string  `json:"image_url"`
	ProductBuyLink     string  `json:"buy_link"`
	ProductIsActive    bool    `json:"is_active"`
}

type UpdateProductRequest struct {
	ProductName        string  `json:"name" validate:"required,min=3"`
	ProductDescription string  `json:"description"`
	ProductPrice       float64 `json:"price" validate:"gte=0"`
	ProductImageURL    string  `json:"image_url"`
	ProductBuyLink     string  `json:"buy_link"`
	ProductIsActive    bool    `json:"is_active"`
}

// ============================
// Converter
// ============================

func ToProductDTO(m model.ProductModel) ProductDTO {
	return ProductDTO{
		ProductID:          m.ProductID.String(),
		ProductName:        m.ProductName,
		ProductDescription: m.ProductDescription,
		ProductPrice:       m.ProductPrice,
		ProductPriceLabel:  helper.FormatIDR(m.ProductPrice),
		ProductImageURL:    m.ProductImageURL,
		ProductBuyLink:     m.ProductBuyLink,
		ProductIsActive:    m.ProductIsActive,
		ProductCreatedAt:   m.ProductCreatedAt,
	}
}

package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"portfolio_backend/internals/features/portfolio/products/model"
)

func TestToProductDTOPriceLabel(t *testing.T) {
	m := model.ProductModel{
		ProductID:    uuid.New(),
		ProductName:  "UI Kit",
		ProductPrice: 149000,
	}
	out := ToProductDTO(m)
	assert.Equal(t, float64(149000), out.ProductPrice)
	assert.Equal(t, "Rp 149.000", out.ProductPriceLabel)
}

func TestToProductDTOFreePrice(t *testing.T) {
	out := ToProductDTO(model.ProductModel{ProductID: uuid.New()})
	assert.Equal(t, "Rp 0", out.ProductPriceLabel)
}

package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internals/databases/dbtest"
	helper "portfolio_backend/internals/helpers"
)

func TestGetPublicProductsFailsSoftToEmptyList(t *testing.T) {
	helper.PublicCacheFlush()
	app := fiber.New()
	ctrl := NewProductController(dbtest.Open(nil))
	app.Get("/products", ctrl.GetPublicProducts)

	resp, err := app.Test(httptest.NewRequest("GET", "/products", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))

	assert.Equal(t, true, parsed["success"])
	// produk tidak punya placeholder: list kosong TANPA flag fallback
	assert.NotContains(t, parsed, "fallback")

	data, ok := parsed["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}

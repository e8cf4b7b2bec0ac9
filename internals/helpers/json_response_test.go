package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	pg := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/?page=3&per_page=250", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 100, got.PerPage) // clamp ke max
	assert.Equal(t, 200, got.Offset)

	resp, err = app.Test(httptest.NewRequest("GET", "/?page=-1&limit=5", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, got.Page) // alias ?limit= + normalisasi page
	assert.Equal(t, 5, got.PerPage)
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(fiber.StatusNotFound))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(fiber.StatusUnprocessableEntity))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(fiber.StatusBadGateway))
}

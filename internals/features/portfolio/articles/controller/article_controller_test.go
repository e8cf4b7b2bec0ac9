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

func articleApp() *fiber.App {
	helper.PublicCacheFlush()
	app := fiber.New()
	ctrl := NewArticleController(dbtest.Open(nil))
	app.Get("/articles", ctrl.GetPublicArticles)
	app.Get("/articles/:slug", ctrl.GetPublicArticleBySlug)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestGetPublicArticlesFallsBackWhenDBDown(t *testing.T) {
	app := articleApp()

	status, body := getJSON(t, app, "/articles")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["fallback"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 2)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "future-web-dev", first["slug"])
}

func TestGetPublicArticleBySlugMissIs404(t *testing.T) {
	app := articleApp()

	status, body := getJSON(t, app, "/articles/tidak-ada")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Article not found", body["message"])
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}

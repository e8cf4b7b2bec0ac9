package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func themeApp() *fiber.App {
	app := fiber.New()
	ThemeRoutes(app.Group("/api/public"))
	return app
}

func themeFromBody(t *testing.T, body io.Reader) string {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var parsed struct {
		Data struct {
			Theme string `json:"theme"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed.Data.Theme
}

func TestThemeDefaultsToDark(t *testing.T) {
	app := themeApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/public/theme", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "dark", themeFromBody(t, resp.Body))
}

func TestThemeUnknownCookieFallsBackToDark(t *testing.T) {
	app := themeApp()
	req := httptest.NewRequest("GET", "/api/public/theme", nil)
	req.Header.Set("Cookie", "site_theme=neon")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "dark", themeFromBody(t, resp.Body))
}

func TestThemeToggle(t *testing.T) {
	app := themeApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/public/theme/toggle", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "light", themeFromBody(t, resp.Body))

	// toggle kedua, bawa cookie hasil toggle pertama
	req := httptest.NewRequest("POST", "/api/public/theme/toggle", nil)
	req.Header.Set("Cookie", "site_theme=light")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "dark", themeFromBody(t, resp.Body))
}

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

func projectApp() *fiber.App {
	helper.PublicCacheFlush()
	app := fiber.New()
	ctrl := NewProjectController(dbtest.Open(nil))
	app.Get("/projects", ctrl.GetPublicProjects)
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

func TestGetPublicProjectsFallsBackWhenDBDown(t *testing.T) {
	app := projectApp()

	status, body := getJSON(t, app, "/projects")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["fallback"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 3)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Project One", first["title"])
	assert.NotEmpty(t, first["tech_stack"])
}

func TestGetPublicProjectsAllAlsoFallsBack(t *testing.T) {
	app := projectApp()

	status, body := getJSON(t, app, "/projects?all=true")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["fallback"])
}

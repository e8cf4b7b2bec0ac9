package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internals/databases/dbtest"
	helper "portfolio_backend/internals/helpers"
)

func profileApp(rec *dbtest.Recorder) *fiber.App {
	helper.PublicCacheFlush()
	app := fiber.New()
	ctrl := NewProfileController(dbtest.Open(rec))
	app.Get("/profile", ctrl.GetPublicProfile)
	app.Put("/profile", ctrl.UpdateProfile)
	return app
}

func readJSON(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed
}

func TestGetPublicProfileFallsBackWhenDBDown(t *testing.T) {
	app := profileApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/profile", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := readJSON(t, resp.Body)
	assert.Equal(t, true, body["fallback"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello@alexdev.com", data["email"])
}

func TestUpdateProfileDBErrorFailsLoudWithoutInsert(t *testing.T) {
	rec := &dbtest.Recorder{}
	app := profileApp(rec)

	req := httptest.NewRequest("PUT", "/profile", strings.NewReader(`{"name":"Alex"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	// lookup gagal bukan karena record-not-found → error, bukan create
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.True(t, rec.Attempted("SELECT"))
	assert.False(t, rec.Attempted("INSERT"), "profil kedua tidak boleh dibuat saat lookup error")
}

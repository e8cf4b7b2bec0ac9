package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internals/features/contact/messages/service"
)

// submitApp: app minimum tanpa DB — jalur validasi & captcha
// selesai sebelum query pertama.
func submitApp() *fiber.App {
	app := fiber.New()
	ctrl := NewContactPublicController(nil)
	app.Get("/contact/captcha", ctrl.GetCaptcha)
	app.Post("/contact", ctrl.SubmitMessage)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestGetCaptchaShape(t *testing.T) {
	app := submitApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/contact/captcha", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed struct {
		Success bool                     `json:"success"`
		Data    service.CaptchaChallenge `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, parsed.Success)
	assert.NotEmpty(t, parsed.Data.CaptchaID)
	assert.InDelta(t, 5.5, float64(parsed.Data.Num1), 4.5)
	assert.InDelta(t, 5.5, float64(parsed.Data.Num2), 4.5)
}

func TestSubmitMessageMissingFields(t *testing.T) {
	app := submitApp()

	status, body := postJSON(t, app, "/contact", `{"name":"","email":"a@b.com","message":"hi","captcha_id":"x","captcha_answer":"5"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Please fill in all fields", body["message"])
	assert.NotContains(t, body, "captcha") // challenge tidak disentuh

	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "name")
}

func TestSubmitMessageFieldCheckBeforeCaptcha(t *testing.T) {
	app := submitApp()

	// captcha ngawur TAPI message kosong → kelengkapan field yang menang
	status, body := postJSON(t, app, "/contact", `{"name":"Budi","email":"a@b.com","message":"","captcha_id":"x","captcha_answer":"bukan-angka"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "Please fill in all fields", body["message"])
}

func TestSubmitMessageInvalidEmail(t *testing.T) {
	app := submitApp()

	status, body := postJSON(t, app, "/contact", `{"name":"Budi","email":"bukan-email","message":"halo","captcha_id":"x","captcha_answer":"5"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "Please fill in all fields", body["message"])

	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "email")
}

func TestSubmitMessageFieldFailureKeepsChallenge(t *testing.T) {
	app := submitApp()
	ch := service.NewCaptchaChallenge()
	answer := strconv.Itoa(ch.Num1 + ch.Num2)

	// gagal validasi field → challenge tersimpan harus tetap bisa dipakai
	status, _ := postJSON(t, app, "/contact",
		`{"name":"Budi","email":"a@b.com","message":"","captcha_id":"`+ch.CaptchaID+`","captcha_answer":"`+answer+`"}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, status)

	assert.True(t, service.VerifyCaptcha(ch.CaptchaID, answer))
}

func TestSubmitMessageWrongCaptcha(t *testing.T) {
	app := submitApp()
	ch := service.NewCaptchaChallenge()

	wrong := strconv.Itoa(ch.Num1 + ch.Num2 + 1)
	status, body := postJSON(t, app, "/contact",
		`{"name":"Budi","email":"a@b.com","message":"halo","captcha_id":"`+ch.CaptchaID+`","captcha_answer":"`+wrong+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Incorrect CAPTCHA answer. Please try again.", body["message"])
	assert.Contains(t, body, "captcha")
}

func TestSubmitMessageUnknownCaptchaID(t *testing.T) {
	app := submitApp()

	status, body := postJSON(t, app, "/contact", `{"name":"Budi","email":"a@b.com","message":"halo","captcha_id":"tidak-ada","captcha_answer":"5"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Incorrect CAPTCHA answer. Please try again.", body["message"])
}

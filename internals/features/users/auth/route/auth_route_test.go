package route

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internals/configs"
	"portfolio_backend/internals/databases/dbtest"
)

func signWith(t *testing.T, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":       "7b6a4c08-0000-0000-0000-000000000001",
		"user_name": "admin",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

// Guard /me harus memakai secret dari configs, bukan baca ENV sendiri.
func TestMeGuardUsesConfiguredSecret(t *testing.T) {
	configs.JWTSecret = "secret-dari-config"

	app := fiber.New()
	AuthRoutes(app, dbtest.Open(nil))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/auth/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// token dari secret lain ditolak
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signWith(t, "secret-lain"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// token dari secret config lolos guard; DB down → 404 dari handler Me
	req = httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signWith(t, configs.JWTSecret))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

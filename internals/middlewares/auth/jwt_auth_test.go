package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret-untuk-test"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func protectedApp(allowCookie bool) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		AuthJWT(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: allowCookie}),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":   c.Locals("user_id"),
				"user_name": c.Locals("user_name"),
			})
		})
	return app
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       "e0a1d2c3-0000-0000-0000-000000000001",
		"user_name": "admin",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthJWTNoToken(t *testing.T) {
	app := protectedApp(false)
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTValidBearer(t *testing.T) {
	app := protectedApp(false)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims()))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthJWTCookie(t *testing.T) {
	app := protectedApp(true)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Cookie", "access_token="+signToken(t, testSecret, validClaims()))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// fallback dimatikan → cookie diabaikan
	appNoCookie := protectedApp(false)
	resp, err = appNoCookie.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTWrongSecret(t *testing.T) {
	app := protectedApp(false)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret-lain", validClaims()))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTExpiredToken(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()

	app := protectedApp(false)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, claims))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTMissingSub(t *testing.T) {
	claims := validClaims()
	delete(claims, "sub")

	app := protectedApp(false)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, claims))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

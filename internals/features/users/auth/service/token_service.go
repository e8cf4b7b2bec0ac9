// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "portfolio_backend/internals/features/users/auth/model"
	authRepo "portfolio_backend/internals/features/users/auth/repository"
	userModel "portfolio_backend/internals/features/users/user/model"
	helpers "portfolio_backend/internals/helpers"

	"portfolio_backend/internals/configs"
)

const (
	accessTTLDefault  = 1 * time.Hour
	refreshTTLDefault = 30 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	s := strings.TrimSpace(configs.JWTSecret)
	if s == "" {
		return "", fmt.Errorf("JWT_SECRET belum diset")
	}
	return s, nil
}

func getRefreshSecret() (string, error) {
	s := strings.TrimSpace(configs.JWTRefreshSecret)
	if s == "" {
		return "", fmt.Errorf("JWT_REFRESH_SECRET belum diset")
	}
	return s, nil
}

// computeRefreshHash: HMAC-SHA256(token, secret) hex — yang disimpan di DB.
func computeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       u.ID.String(),
		"user_name": u.UserName,
		"email":     u.Email,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// issueTokens membuat access+refresh, menyimpan hash refresh, dan set cookies.
func issueTokens(db *gorm.DB, c *fiber.Ctx, u *userModel.UserModel) (string, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}

	now := nowUTC()
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(*u, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", err
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    u.ID,
		Token:     computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return "", err
	}

	setAuthCookies(c, access, refresh, now)
	return access, nil
}

func setAuthCookies(c *fiber.Ctx, access, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  now.Add(accessTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/api/auth",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/api/auth"})
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token — rotasi: token lama di-revoke, terbit yang baru.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Hash harus terdaftar & masih aktif
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	if _, err := authRepo.FindRefreshTokenByHashActive(db, hash); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: revoke token lama dulu
	if err := authRepo.RevokeRefreshTokenByHash(db, hash); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal rotasi refresh token")
	}

	newAccess, err := issueTokens(db, c, user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal buat token baru")
	}

	return helpers.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token": newAccess,
	})
}

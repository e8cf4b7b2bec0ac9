package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/users/auth/dto"
	authRepo "portfolio_backend/internals/features/users/auth/repository"
	helpers "portfolio_backend/internals/helpers"
)

var validateAuth = validator.New()

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmail(db, strings.ToLower(strings.TrimSpace(body.Email)))
	if err != nil {
		// pesan sengaja sama dengan password salah
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, err := issueTokens(db, c, user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user": dto.UserDTO{
			ID:       user.ID.String(),
			UserName: user.UserName,
			Email:    user.Email,
		},
	})
}

// ========================== LOGOUT ==========================
// Revoke refresh token aktif (kalau ada) lalu bersihkan cookies.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if secret, err := getRefreshSecret(); err == nil {
			_ = authRepo.RevokeRefreshTokenByHash(db, computeRefreshHash(refreshCookie, secret))
		}
	}
	clearAuthCookies(c)
	return helpers.JsonOK(c, "Logout berhasil", nil)
}

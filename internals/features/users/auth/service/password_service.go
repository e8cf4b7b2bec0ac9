package service

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio_backend/internals/configs"
	"portfolio_backend/internals/features/users/auth/dto"
	authModel "portfolio_backend/internals/features/users/auth/model"
	authRepo "portfolio_backend/internals/features/users/auth/repository"
	helpers "portfolio_backend/internals/helpers"
)

var validatePassword = validator.New()

const resetTokenTTL = 30 * time.Minute

func newResetToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// ========================== FORGOT PASSWORD ==========================
// Selalu 200 supaya tidak membocorkan email mana yang terdaftar.
// Token dikirim lewat webhook notifier (best-effort).
func ForgotPassword(db *gorm.DB, c *fiber.Ctx) error {
	var body dto.ForgotPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validatePassword.Struct(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	user, err := authRepo.FindUserByEmail(db, email)
	if err == nil && user.IsActive {
		token, err := newResetToken()
		if err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token reset")
		}
		secret, err := getRefreshSecret()
		if err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		expires := time.Now().UTC().Add(resetTokenTTL)
		if err := authRepo.CreatePasswordResetToken(db, &authModel.PasswordResetTokenModel{
			UserID:    user.ID,
			Token:     computeRefreshHash(token, secret),
			ExpiresAt: expires,
		}); err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan token reset")
		}

		helpers.NotifyWebhookAsync(configs.ResetWebhookURL, fiber.Map{
			"event":       "password_reset",
			"email":       user.Email,
			"reset_token": token,
			"expires_at":  expires.Format(time.RFC3339),
		})
		log.Printf("[INFO] reset password diminta utk user=%s", user.ID)
	}

	return helpers.JsonOK(c, "Jika email terdaftar, instruksi reset sudah dikirim", nil)
}

// ========================== RESET PASSWORD ==========================
func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var body dto.ResetPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validatePassword.Struct(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	secret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	prt, err := authRepo.FindActiveResetTokenByHash(db, computeRefreshHash(strings.TrimSpace(body.Token), secret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Token reset tidak valid atau kedaluwarsa")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := authRepo.UpdateUserPassword(db, prt.UserID, string(hashed)); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	if err := authRepo.MarkResetTokenUsed(db, prt.ID); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai token terpakai")
	}
	// semua sesi lama ikut gugur
	_ = authRepo.RevokeAllRefreshTokensForUser(db, prt.UserID)

	return helpers.JsonUpdated(c, "Password reset successfully", nil)
}

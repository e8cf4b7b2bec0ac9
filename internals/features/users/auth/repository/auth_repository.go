package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "portfolio_backend/internals/features/users/auth/model"
	userModel "portfolio_backend/internals/features/users/user/model"
)

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(db *gorm.DB, id uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}

/* ===== Refresh token ===== */

func CreateRefreshToken(db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.Create(rt).Error
}

// FindRefreshTokenByHashActive: belum di-revoke dan belum expired.
func FindRefreshTokenByHashActive(db *gorm.DB, hash string) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.
		Where("token = ? AND revoked_at IS NULL AND expires_at > ?", hash, time.Now().UTC()).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshTokenByHash(db *gorm.DB, hash string) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("token = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", now).Error
}

func RevokeAllRefreshTokensForUser(db *gorm.DB, userID uuid.UUID) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

/* ===== Password reset token ===== */

func CreatePasswordResetToken(db *gorm.DB, prt *authModel.PasswordResetTokenModel) error {
	return db.Create(prt).Error
}

func FindActiveResetTokenByHash(db *gorm.DB, hash string) (*authModel.PasswordResetTokenModel, error) {
	var prt authModel.PasswordResetTokenModel
	if err := db.
		Where("token = ? AND used_at IS NULL AND expires_at > ?", hash, time.Now().UTC()).
		First(&prt).Error; err != nil {
		return nil, err
	}
	return &prt, nil
}

func MarkResetTokenUsed(db *gorm.DB, id uuid.UUID) error {
	now := time.Now().UTC()
	return db.Model(&authModel.PasswordResetTokenModel{}).
		Where("id = ?", id).
		Update("used_at", now).Error
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Token reset sekali pakai (30 menit), juga disimpan sebagai hash.
type PasswordResetTokenModel struct {
	ID        uuid.UUID  `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Token     string     `gorm:"column:token;type:varchar(128);not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"column:expires_at;not null" json:"expires_at"`
	UsedAt    *time.Time `gorm:"column:used_at" json:"used_at,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Token disimpan sebagai hash HMAC-SHA256, bukan nilai mentah.
type RefreshTokenModel struct {
	ID        uuid.UUID  `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Token     string     `gorm:"column:token;type:varchar(128);not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"column:expires_at;not null" json:"expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at" json:"revoked_at,omitempty"`
	UserAgent *string    `gorm:"column:user_agent;type:text" json:"user_agent,omitempty"`
	IP        *string    `gorm:"column:ip;type:varchar(64)" json:"ip,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

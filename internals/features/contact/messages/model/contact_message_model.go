package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessageModel struct {
	ContactMessageID        uuid.UUID `gorm:"column:contact_message_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"contact_message_id"`
	ContactMessageName      string    `gorm:"column:contact_message_name;type:varchar(100);not null" json:"contact_message_name"`
	ContactMessageEmail     string    `gorm:"column:contact_message_email;type:varchar(255);not null" json:"contact_message_email"`
	ContactMessageBody      string    `gorm:"column:contact_message_body;type:text;not null" json:"contact_message_body"`
	ContactMessageUserAgent string    `gorm:"column:contact_message_user_agent;type:varchar(255)" json:"contact_message_user_agent"`
	ContactMessageIsRead    bool      `gorm:"column:contact_message_is_read;default:false;index" json:"contact_message_is_read"`
	ContactMessageCreatedAt time.Time `gorm:"column:contact_message_created_at;autoCreateTime;index" json:"contact_message_created_at"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

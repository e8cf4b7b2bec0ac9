package dto

import (
	"time"

	"portfolio_backend/internals/features/contact/messages/model"
)

// ============================
// Request DTO
// ============================

type SubmitMessageRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email" validate:"omitempty,email"`
	Message       string `json:"message"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

// ============================
// Response DTO
// ============================

type ContactMessageDTO struct {
	ContactMessageID        string    `json:"id"`
	ContactMessageName      string    `json:"name"`
	ContactMessageEmail     string    `json:"email"`
	ContactMessageBody      string    `json:"message"`
	ContactMessageUserAgent string    `json:"user_agent,omitempty"`
	ContactMessageIsRead    bool      `json:"is_read"`
	ContactMessageCreatedAt time.Time `json:"created_at"`
}

func ToContactMessageDTO(m model.ContactMessageModel) ContactMessageDTO {
	return ContactMessageDTO{
		ContactMessageID:        m.ContactMessageID.String(),
		ContactMessageName:      m.ContactMessageName,
		ContactMessageEmail:     m.ContactMessageEmail,
		ContactMessageBody:      m.ContactMessageBody,
		ContactMessageUserAgent: m.ContactMessageUserAgent,
		ContactMessageIsRead:    m.ContactMessageIsRead,
		ContactMessageCreatedAt: m.ContactMessageCreatedAt,
	}
}

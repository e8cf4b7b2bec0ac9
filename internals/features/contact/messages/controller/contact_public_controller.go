package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/configs"
	"portfolio_backend/internals/features/contact/messages/dto"
	"portfolio_backend/internals/features/contact/messages/model"
	"portfolio_backend/internals/features/contact/messages/service"
	helper "portfolio_backend/internals/helpers"
)

var validateContact = validator.New()

type ContactPublicController struct {
	DB *gorm.DB
}

func NewContactPublicController(db *gorm.DB) *ContactPublicController {
	return &ContactPublicController{DB: db}
}

// =============================
// 🌐 Public: Get Captcha Challenge
// =============================
func (ctrl *ContactPublicController) GetCaptcha(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", service.NewCaptchaChallenge())
}

// submitError: gagal di tahap captcha/simpan membawa challenge baru, jadi
// form bisa langsung menampilkan soal berikutnya tanpa round-trip tambahan.
func submitError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"captcha": service.NewCaptchaChallenge(),
	})
}

// =============================
// 🌐 Public: Submit Message
// Urutan cek: kelengkapan field (422, challenge tidak disentuh) →
// captcha (hangus + challenge baru) → simpan.
// =============================
func (ctrl *ContactPublicController) SubmitMessage(c *fiber.Ctx) error {
	var body dto.SubmitMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	body.Message = strings.TrimSpace(body.Message)

	fieldErrs := map[string][]string{}
	if body.Name == "" {
		fieldErrs["name"] = append(fieldErrs["name"], "Name is required")
	}
	if body.Email == "" {
		fieldErrs["email"] = append(fieldErrs["email"], "Email is required")
	} else if validateContact.Struct(&body) != nil {
		fieldErrs["email"] = append(fieldErrs["email"], "Email is not valid")
	}
	if body.Message == "" {
		fieldErrs["message"] = append(fieldErrs["message"], "Message is required")
	}
	if strings.TrimSpace(body.CaptchaAnswer) == "" {
		fieldErrs["captcha_answer"] = append(fieldErrs["captcha_answer"], "CAPTCHA answer is required")
	}
	if len(fieldErrs) > 0 {
		// challenge tersimpan dibiarkan; user tinggal melengkapi form
		return c.Status(fiber.StatusUnprocessableEntity).JSON(helper.ErrorResponse{
			Success:   false,
			Message:   "Please fill in all fields",
			ErrorCode: "VALIDATION_ERROR",
			Errors:    fieldErrs,
		})
	}

	if !service.VerifyCaptcha(body.CaptchaID, body.CaptchaAnswer) {
		return submitError(c, fiber.StatusBadRequest, "Incorrect CAPTCHA answer. Please try again.")
	}

	msg := model.ContactMessageModel{
		ContactMessageName:      body.Name,
		ContactMessageEmail:     strings.ToLower(body.Email),
		ContactMessageBody:      body.Message,
		ContactMessageUserAgent: string(c.Request().Header.UserAgent()),
	}
	if err := ctrl.DB.Create(&msg).Error; err != nil {
		return submitError(c, fiber.StatusInternalServerError, "Failed to send message. Please try again or email me directly.")
	}

	// badge admin + notifikasi keluar, dua-duanya di luar jalur respons
	publishUnreadCount(ctrl.DB)
	helper.NotifyWebhookAsync(configs.ContactWebhookURL, fiber.Map{
		"name":    msg.ContactMessageName,
		"email":   msg.ContactMessageEmail,
		"message": msg.ContactMessageBody,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully! I'll get back to you soon.",
		"captcha": service.NewCaptchaChallenge(),
	})
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/contact/messages/controller"
	"portfolio_backend/internals/middlewares"
)

func ContactPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContactPublicController(db)
	r.Get("/contact/captcha", ctrl.GetCaptcha)
	r.Post("/contact", middlewares.ContactRateLimiter(), ctrl.SubmitMessage)
}

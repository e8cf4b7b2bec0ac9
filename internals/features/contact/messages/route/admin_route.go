package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/contact/messages/controller"
)

func ContactAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContactAdminController(db)
	group := r.Group("/messages")
	group.Get("/", ctrl.GetAllMessages)
	group.Get("/unread-count", ctrl.GetUnreadCount)
	group.Get("/stream", ctrl.StreamUnreadCount)
	group.Patch("/:id/read", ctrl.ToggleRead)
	group.Delete("/:id", ctrl.DeleteMessage)
}

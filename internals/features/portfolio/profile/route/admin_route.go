package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/profile/controller"
)

func ProfileAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)
	group := r.Group("/profile")
	group.Get("/", ctrl.GetAdminProfile)
	group.Put("/", ctrl.UpdateProfile)
}

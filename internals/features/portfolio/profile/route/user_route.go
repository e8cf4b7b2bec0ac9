package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/profile/controller"
)

func ProfilePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)
	r.Get("/profile", ctrl.GetPublicProfile)
}

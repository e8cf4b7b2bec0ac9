package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/home/dashboard/controller"
)

func DashboardAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)
	r.Get("/dashboard", ctrl.GetDashboard)
}

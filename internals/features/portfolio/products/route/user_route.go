package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/products/controller"
)

func ProductPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProductController(db)
	r.Get("/products", ctrl.GetPublicProducts)
}

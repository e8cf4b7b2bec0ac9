package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/products/controller"
)

func ProductAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProductController(db)
	group := r.Group("/products")
	group.Get("/", ctrl.GetAllProducts)
	group.Post("/", ctrl.CreateProduct)
	group.Put("/:id", ctrl.UpdateProduct)
	group.Delete("/:id", ctrl.DeleteProduct)
}

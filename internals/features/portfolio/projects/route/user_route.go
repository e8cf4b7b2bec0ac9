package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/projects/controller"
)

// ProjectPublicRoutes: read-only untuk halaman publik.
func ProjectPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProjectController(db)
	r.Get("/projects", ctrl.GetPublicProjects)
}

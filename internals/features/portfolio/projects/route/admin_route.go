package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/projects/controller"
)

func ProjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProjectController(db)
	group := r.Group("/projects")
	group.Get("/", ctrl.GetAllProjects)
	group.Post("/", ctrl.CreateProject)
	group.Put("/:id", ctrl.UpdateProject)
	group.Delete("/:id", ctrl.DeleteProject)
}

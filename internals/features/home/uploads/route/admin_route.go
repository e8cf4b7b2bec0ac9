package route

import (
	"github.com/gofiber/fiber/v2"

	"portfolio_backend/internals/features/home/uploads/controller"
)

func UploadAdminRoutes(r fiber.Router) {
	ctrl := controller.NewUploadController()
	r.Post("/uploads/:folder", ctrl.UploadFile)
}

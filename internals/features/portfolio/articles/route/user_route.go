package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/articles/controller"
)

func ArticlePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArticleController(db)
	r.Get("/articles", ctrl.GetPublicArticles)
	r.Get("/articles/:slug", ctrl.GetPublicArticleBySlug)
}

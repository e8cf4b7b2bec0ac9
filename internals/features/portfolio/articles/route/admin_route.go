package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/articles/controller"
)

func ArticleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArticleController(db)
	group := r.Group("/articles")
	group.Get("/", ctrl.GetAllArticles)
	group.Post("/", ctrl.CreateArticle)
	group.Put("/:id", ctrl.UpdateArticle)
	group.Delete("/:id", ctrl.DeleteArticle)
}

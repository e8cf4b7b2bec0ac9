// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/configs"
	contactRoute "portfolio_backend/internals/features/contact/messages/route"
	dashboardRoute "portfolio_backend/internals/features/home/dashboard/route"
	uploadRoute "portfolio_backend/internals/features/home/uploads/route"
	articleRoute "portfolio_backend/internals/features/portfolio/articles/route"
	productRoute "portfolio_backend/internals/features/portfolio/products/route"
	profileRoute "portfolio_backend/internals/features/portfolio/profile/route"
	projectRoute "portfolio_backend/internals/features/portfolio/projects/route"
	authRoute "portfolio_backend/internals/features/users/auth/route"
	authMiddleware "portfolio_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	profileRoute.ProfilePublicRoutes(public, db)
	projectRoute.ProjectPublicRoutes(public, db)
	productRoute.ProductPublicRoutes(public, db)
	articleRoute.ArticlePublicRoutes(public, db)
	contactRoute.ContactPublicRoutes(public, db)
	ThemeRoutes(public)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	dashboardRoute.DashboardAdminRoutes(admin, db)
	profileRoute.ProfileAdminRoutes(admin, db)
	projectRoute.ProjectAdminRoutes(admin, db)
	productRoute.ProductAdminRoutes(admin, db)
	articleRoute.ArticleAdminRoutes(admin, db)
	contactRoute.ContactAdminRoutes(admin, db)
	uploadRoute.UploadAdminRoutes(admin)

	log.Println("[INFO] All routes ready ✅")
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internals/configs"
	"portfolio_backend/internals/features/users/auth/controller"
	middlewares "portfolio_backend/internals/middlewares"
	authMiddleware "portfolio_backend/internals/middlewares/auth"
)

// AuthRoutes: /api/auth — login/logout/refresh + forgot/reset password.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	auth.Post("/reset-password", ctrl.ResetPassword)

	auth.Get("/me",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		ctrl.Me,
	)
}

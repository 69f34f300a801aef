package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/users/auth/controller"
	"presensiku_backend/internals/middlewares"
)

// AuthPublicRoutes — login di luar guard JWT, dengan limiter lebih ketat.
func AuthPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// AuthProtectedRoutes — endpoint yang butuh token valid.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Get("/profile", ctrl.GetProfile)
}

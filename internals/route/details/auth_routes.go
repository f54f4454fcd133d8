// file: internals/route/details/auth_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authcontroller "rinschool_backend/internals/features/users/auth/controller"
	"rinschool_backend/internals/middlewares"
)

// AuthRoutes: endpoint auth publik (register/login/logout) + limiter ketat.
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := authcontroller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
}

// AuthUserRoutes: endpoint auth yang butuh login (dimount di group /api/u).
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authcontroller.NewAuthController(db)

	r.Get("/auth/me", ctrl.Me)
	r.Patch("/auth/guardian-email", ctrl.UpdateGuardianEmail)
}

// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rinschool_backend/internals/configs"
	authMiddleware "rinschool_backend/internals/middlewares/auth"
	routeDetails "rinschool_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.CoursePublicRoutes(public, db)
	routeDetails.HomePublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.AuthUserRoutes(private, db)
	routeDetails.EnrollmentUserRoutes(private, db)
	routeDetails.HomeUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.IsAdmin(),
	)
	routeDetails.UserAdminRoutes(admin, db)
	routeDetails.CourseAdminRoutes(admin, db)
	routeDetails.EnrollmentAdminRoutes(admin, db)
	routeDetails.HomeAdminRoutes(admin, db)
}

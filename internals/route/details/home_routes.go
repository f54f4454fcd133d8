// file: internals/route/details/home_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactcontroller "rinschool_backend/internals/features/home/contact/controller"
	landingcontroller "rinschool_backend/internals/features/home/landing/controller"
	"rinschool_backend/internals/middlewares"
)

// HomePublicRoutes: konten landing page (group /api/public).
func HomePublicRoutes(r fiber.Router, db *gorm.DB) {
	landingCtrl := landingcontroller.NewLandingImageController(db)

	r.Get("/landing-images", landingCtrl.List)
}

// HomeUserRoutes: email wali oleh siswa login (group /api/u).
func HomeUserRoutes(r fiber.Router, db *gorm.DB) {
	contactCtrl := contactcontroller.NewContactController(db)

	r.Post("/guardian-email", middlewares.GuardianEmailRateLimiter(), contactCtrl.SendGuardianEmail)
}

// HomeAdminRoutes: kelola gambar landing (group /api/a).
func HomeAdminRoutes(r fiber.Router, db *gorm.DB) {
	landingCtrl := landingcontroller.NewLandingImageController(db)

	r.Post("/landing-images", landingCtrl.Upload)
	r.Delete("/landing-images/:id", landingCtrl.Delete)
}

// file: internals/route/details/enrollment_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appcontroller "rinschool_backend/internals/features/enrollment/applications/controller"
	matchcontroller "rinschool_backend/internals/features/enrollment/matching/controller"
)

// EnrollmentUserRoutes: lamaran + jadwal milik siswa login (group /api/u).
func EnrollmentUserRoutes(r fiber.Router, db *gorm.DB) {
	appCtrl := appcontroller.NewApplicationController(db)
	matchCtrl := matchcontroller.NewMatchingController(db)

	r.Post("/applications", appCtrl.Apply)
	r.Get("/applications", appCtrl.MyApplications)
	r.Post("/applications/:id/cancel", appCtrl.Cancel)

	r.Get("/matches", matchCtrl.MyMatches)
}

// EnrollmentAdminRoutes: monitoring lamaran + kontrol matching (group /api/a).
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	appCtrl := appcontroller.NewApplicationController(db)
	matchCtrl := matchcontroller.NewMatchingController(db)

	r.Get("/applications", appCtrl.AdminList)

	r.Post("/matching/run", matchCtrl.Run)
	r.Get("/matching/runs", matchCtrl.ListRuns)
	r.Post("/matching/runs/:id/reset", matchCtrl.ResetStuckRun)
	r.Get("/matches", matchCtrl.ListMatches)
}

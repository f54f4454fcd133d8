// file: internals/route/details/course_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coursecontroller "rinschool_backend/internals/features/courses/courses/controller"
	twcontroller "rinschool_backend/internals/features/courses/time_windows/controller"
)

// CoursePublicRoutes: katalog course + jadwal, tanpa login (group /api/public).
func CoursePublicRoutes(r fiber.Router, db *gorm.DB) {
	courseCtrl := coursecontroller.NewCourseController(db)
	twCtrl := twcontroller.NewTimeWindowController(db)

	r.Get("/courses", courseCtrl.List)
	r.Get("/courses/:id", courseCtrl.GetByID)
	r.Get("/courses/:course_id/windows", twCtrl.ListByCourse)
}

// CourseAdminRoutes: CRUD course + time window oleh admin (group /api/a).
func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	courseCtrl := coursecontroller.NewCourseController(db)
	twCtrl := twcontroller.NewTimeWindowController(db)

	r.Post("/courses", courseCtrl.Create)
	r.Patch("/courses/:id", courseCtrl.Update)
	r.Delete("/courses/:id", courseCtrl.Delete)
	r.Post("/courses/:id/image", courseCtrl.UploadImage)

	r.Post("/courses/:course_id/windows", twCtrl.Create)
	r.Patch("/windows/:id", twCtrl.Update)
	r.Delete("/windows/:id", twCtrl.Delete)
}

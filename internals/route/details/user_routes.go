// file: internals/route/details/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	usercontroller "rinschool_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: manajemen user oleh admin (dimount di group /api/a).
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := usercontroller.NewUserController(db)

	r.Get("/users", ctrl.List)
	r.Get("/users/:id", ctrl.GetByID)
	r.Patch("/users/:id/role", ctrl.UpdateRole)
}

package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles: tolak request kalau role di token tidak termasuk daftar yang diizinkan.
func RequireRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
	}
}

func IsAdmin() fiber.Handler   { return RequireRoles("admin") }
func IsStudent() fiber.Handler { return RequireRoles("student") }

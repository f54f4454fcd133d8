// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rinschool_backend/internals/features/users/auth/dto"
	"rinschool_backend/internals/features/users/auth/service"
	usermodel "rinschool_backend/internals/features/users/user/model"
	helper "rinschool_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user usermodel.UserModel
	if err := ac.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "", dto.ToUserResponse(&user))
}

// UpdateGuardianEmail: siswa set/ubah email wali sendiri.
func (ac *AuthController) UpdateGuardianEmail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req struct {
		GuardianEmail string `json:"guardian_email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	email := strings.ToLower(strings.TrimSpace(req.GuardianEmail))
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "guardian_email wajib diisi")
	}

	if err := ac.DB.Model(&usermodel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_guardian_email", email).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan email wali")
	}

	return helper.JsonUpdated(c, "Email wali diperbarui", fiber.Map{"guardian_email": email})
}

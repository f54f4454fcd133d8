// file: internals/features/home/contact/controller/contact_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rinschool_backend/internals/features/home/contact/service"
	usermodel "rinschool_backend/internals/features/users/user/model"
	helper "rinschool_backend/internals/helpers"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// POST /api/u/guardian-email — siswa kirim notifikasi ke wali sendiri.
// Rate-limited ketat di route.
func (cc *ContactController) SendGuardianEmail(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Subject = strings.TrimSpace(req.Subject)
	req.Body = strings.TrimSpace(req.Body)
	if req.Subject == "" || req.Body == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject dan body wajib diisi")
	}

	var user usermodel.UserModel
	if err := cc.DB.First(&user, "user_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if user.UserGuardianEmail == nil || strings.TrimSpace(*user.UserGuardianEmail) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email wali belum diset di profil")
	}

	if err := service.SendGuardianEmail(*user.UserGuardianEmail, user.UserName, req.Subject, req.Body); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email wali")
	}

	return helper.JsonOK(c, "Email wali terkirim", fiber.Map{"to": *user.UserGuardianEmail})
}

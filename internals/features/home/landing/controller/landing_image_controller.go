// file: internals/features/home/landing/controller/landing_image_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	landingmodel "rinschool_backend/internals/features/home/landing/model"
	helper "rinschool_backend/internals/helpers"
)

type LandingImageController struct {
	DB *gorm.DB
}

func NewLandingImageController(db *gorm.DB) *LandingImageController {
	return &LandingImageController{DB: db}
}

// POST /api/a/landing-images (multipart "image", field "variant" desktop|mobile)
func (lc *LandingImageController) Upload(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	variant := landingmodel.LandingImageVariant(strings.TrimSpace(c.FormValue("variant")))
	switch variant {
	case landingmodel.LandingImageDesktop, landingmodel.LandingImageMobile:
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "variant harus desktop atau mobile")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File image wajib diunggah")
	}

	publicURL, err := helper.UploadImageToSupabase("landing", fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Upload gambar gagal")
	}

	position := c.QueryInt("position", 0)

	image := landingmodel.LandingImageModel{
		LandingImageVariant:   variant,
		LandingImageURL:       publicURL,
		LandingImagePosition:  position,
		LandingImageCreatedBy: &adminID,
	}
	if err := lc.DB.Create(&image).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar landing")
	}

	return helper.JsonCreated(c, "Gambar landing diunggah", image)
}

// GET /api/public/landing-images?variant=desktop
func (lc *LandingImageController) List(c *fiber.Ctx) error {
	q := lc.DB.Model(&landingmodel.LandingImageModel{})
	if variant := strings.TrimSpace(c.Query("variant")); variant != "" {
		q = q.Where("landing_image_variant = ?", variant)
	}

	var images []landingmodel.LandingImageModel
	if err := q.Order("landing_image_position ASC, landing_image_created_at ASC").
		Find(&images).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat gambar landing")
	}

	return helper.JsonOK(c, "", images)
}

// DELETE /api/a/landing-images/:id — file di storage ikut dihapus best-effort.
func (lc *LandingImageController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Landing image ID tidak valid")
	}

	var image landingmodel.LandingImageModel
	if err := lc.DB.First(&image, "landing_image_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Gambar tidak ditemukan")
	}

	if bucket, path, perr := helper.ExtractSupabasePath(image.LandingImageURL); perr == nil {
		if derr := helper.DeleteFromSupabase(bucket, path); derr != nil {
			log.Printf("[WARN] hapus file landing %s gagal: %v", id, derr)
		}
	}

	if err := lc.DB.Delete(&landingmodel.LandingImageModel{}, "landing_image_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus gambar landing")
	}

	return helper.JsonDeleted(c, "Gambar landing dihapus", fiber.Map{"landing_image_id": id})
}

// file: internals/features/courses/courses/controller/course_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rinschool_backend/internals/features/courses/courses/dto"
	coursemodel "rinschool_backend/internals/features/courses/courses/model"
	helper "rinschool_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

// POST /api/a/courses
func (cc *CourseController) Create(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := cc.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	course := req.ToModel()
	course.CourseCreatedBy = &adminID

	if err := cc.DB.Create(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat course")
	}

	return helper.JsonCreated(c, "Course dibuat", dto.ToCourseResponse(&course))
}

// PATCH /api/a/courses/:id
func (cc *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := cc.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := req.ApplyUpdates()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := cc.DB.Model(&coursemodel.CourseModel{}).
		Where("course_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	var course coursemodel.CourseModel
	if err := cc.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat course")
	}

	return helper.JsonUpdated(c, "Course diperbarui", dto.ToCourseResponse(&course))
}

// DELETE /api/a/courses/:id (soft delete)
func (cc *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	res := cc.DB.Delete(&coursemodel.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Course dihapus", fiber.Map{"course_id": id})
}

// GET /api/public/courses?subject=&grade=&q=&page=
func (cc *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := cc.DB.Model(&coursemodel.CourseModel{})
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		q = q.Where("course_subject = ?", subject)
	}
	if grade := strings.TrimSpace(c.Query("grade")); grade != "" {
		q = q.Where("course_grade_range = ?", grade)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("course_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung course")
	}

	var courses []coursemodel.CourseModel
	if err := q.Order("course_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar course")
	}

	return helper.JsonList(c, "", dto.ToCourseResponses(courses),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/public/courses/:id
func (cc *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var course coursemodel.CourseModel
	if err := cc.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	return helper.JsonOK(c, "", dto.ToCourseResponse(&course))
}

// POST /api/a/courses/:id/image (multipart "image") — gambar lama dihapus best-effort.
func (cc *CourseController) UploadImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var course coursemodel.CourseModel
	if err := cc.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File image wajib diunggah")
	}

	publicURL, err := helper.UploadImageToSupabase("courses", fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Upload gambar gagal")
	}

	if course.CourseImageURL != nil {
		if bucket, path, perr := helper.ExtractSupabasePath(*course.CourseImageURL); perr == nil {
			if derr := helper.DeleteFromSupabase(bucket, path); derr != nil {
				log.Printf("[WARN] hapus gambar lama course %s gagal: %v", id, derr)
			}
		}
	}

	if err := cc.DB.Model(&coursemodel.CourseModel{}).
		Where("course_id = ?", id).
		Update("course_image_url", publicURL).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan URL gambar")
	}

	return helper.JsonUpdated(c, "Gambar course diperbarui", fiber.Map{"image_url": publicURL})
}

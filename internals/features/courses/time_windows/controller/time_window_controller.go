// file: internals/features/courses/time_windows/controller/time_window_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	coursemodel "rinschool_backend/internals/features/courses/courses/model"
	"rinschool_backend/internals/features/courses/time_windows/dto"
	twmodel "rinschool_backend/internals/features/courses/time_windows/model"
	helper "rinschool_backend/internals/helpers"
)

type TimeWindowController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimeWindowController(db *gorm.DB) *TimeWindowController {
	return &TimeWindowController{DB: db, Validate: validator.New()}
}

func validClockRange(start, end string) bool {
	s, err1 := time.Parse("15:04", start)
	e, err2 := time.Parse("15:04", end)
	return err1 == nil && err2 == nil && s.Before(e)
}

// POST /api/a/courses/:course_id/windows
func (tc *TimeWindowController) Create(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var course coursemodel.CourseModel
	if err := tc.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	var req dto.CreateTimeWindowRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := tc.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !validClockRange(req.StartTime, req.EndTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jam harus format HH:MM dan start < end")
	}

	window, err := req.ToModel(courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Instructor ID tidak valid")
	}

	if err := tc.DB.Create(&window).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat time window")
	}

	return helper.JsonCreated(c, "Time window dibuat", dto.ToTimeWindowResponse(&window))
}

// PATCH /api/a/windows/:id
func (tc *TimeWindowController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Window ID tidak valid")
	}

	var window twmodel.CourseTimeWindowModel
	if err := tc.DB.First(&window, "course_time_window_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Time window tidak ditemukan")
	}

	var req dto.UpdateTimeWindowRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := tc.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.DayOfWeek != nil {
		window.CourseTimeWindowDayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		window.CourseTimeWindowStartTime = *req.StartTime
	}
	if req.EndTime != nil {
		window.CourseTimeWindowEndTime = *req.EndTime
	}
	if !validClockRange(window.CourseTimeWindowStartTime, window.CourseTimeWindowEndTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jam harus format HH:MM dan start < end")
	}
	if req.InstructorID != nil {
		iid, perr := uuid.Parse(*req.InstructorID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Instructor ID tidak valid")
		}
		window.CourseTimeWindowInstructorID = &iid
	}
	if req.InstructorName != nil {
		window.CourseTimeWindowInstructorName = req.InstructorName
	}
	if req.Capacity != nil {
		window.CourseTimeWindowCapacity = req.Capacity
	}

	if err := tc.DB.Save(&window).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update time window")
	}

	return helper.JsonUpdated(c, "Time window diperbarui", dto.ToTimeWindowResponse(&window))
}

// DELETE /api/a/windows/:id (soft delete)
func (tc *TimeWindowController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Window ID tidak valid")
	}

	res := tc.DB.Delete(&twmodel.CourseTimeWindowModel{}, "course_time_window_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus time window")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Time window tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Time window dihapus", fiber.Map{"window_id": id})
}

// GET /api/public/courses/:course_id/windows
func (tc *TimeWindowController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var windows []twmodel.CourseTimeWindowModel
	if err := tc.DB.
		Where("course_time_window_course_id = ?", courseID).
		Order("course_time_window_day_of_week ASC, course_time_window_start_time ASC").
		Find(&windows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat time windows")
	}

	return helper.JsonOK(c, "", dto.ToTimeWindowResponses(windows))
}

// file: internals/features/enrollment/matching/controller/matching_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rinschool_backend/internals/features/enrollment/matching/dto"
	mmodel "rinschool_backend/internals/features/enrollment/matching/model"
	"rinschool_backend/internals/features/enrollment/matching/service"
	helper "rinschool_backend/internals/helpers"
)

type MatchingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMatchingController(db *gorm.DB) *MatchingController {
	return &MatchingController{DB: db, Validate: validator.New()}
}

// POST /api/a/matching/run — trigger manual oleh admin.
// 409 kalau masih ada run `running` untuk course yang sama.
func (mc *MatchingController) Run(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RunMatchingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := mc.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	now := time.Now()
	from := now
	if req.From != nil {
		t, perr := time.Parse(time.RFC3339, *req.From)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from harus format RFC3339")
		}
		from = t
	}
	to := from.AddDate(0, 0, 14)
	if req.To != nil {
		t, perr := time.Parse(time.RFC3339, *req.To)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to harus format RFC3339")
		}
		to = t
	}
	if !from.Before(to) {
		return helper.JsonError(c, fiber.StatusBadRequest, "from harus sebelum to")
	}

	result, err := service.RunMatching(service.NewStore(mc.DB), service.RunParams{
		CourseID:    courseID,
		From:        from,
		To:          to,
		RequestedBy: adminID,
		Now:         now,
	})
	if err != nil {
		if errors.Is(err, service.ErrRunInProgress) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Matching run gagal: "+err.Error())
	}

	return helper.JsonOK(c, "Matching selesai", result)
}

// GET /api/a/matching/runs?course_id=&page=
func (mc *MatchingController) ListRuns(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := mc.DB.Model(&mmodel.MatchingRunModel{})
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
		}
		q = q.Where("matching_run_course_id = ?", courseID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung run")
	}

	var runs []mmodel.MatchingRunModel
	if err := q.Order("matching_run_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&runs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat run")
	}

	return helper.JsonList(c, "", dto.ToMatchingRunResponses(runs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/a/matching/runs/:id/reset — run yang mati sebelum finalize
// meninggalkan status `running` dan memblokir run baru; admin reset ke failed.
func (mc *MatchingController) ResetStuckRun(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Run ID tidak valid")
	}

	res := mc.DB.Model(&mmodel.MatchingRunModel{}).
		Where("matching_run_id = ? AND matching_run_status = ?", id, mmodel.MatchingRunRunning).
		Update("matching_run_status", mmodel.MatchingRunFailed)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal reset run")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Run tidak ditemukan atau sudah selesai")
	}

	return helper.JsonUpdated(c, "Run direset ke failed", fiber.Map{"run_id": id})
}

// GET /api/a/matches?course_id=&page=
func (mc *MatchingController) ListMatches(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := mc.DB.Model(&mmodel.MatchModel{})
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
		}
		q = q.Where("match_course_id = ?", courseID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung match")
	}

	var matches []mmodel.MatchModel
	if err := q.Preload("MatchStudents").
		Order("match_slot_start_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&matches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat match")
	}

	return helper.JsonList(c, "", dto.ToMatchResponses(matches),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/matches — jadwal milik siswa login (join lewat match_students).
func (mc *MatchingController) MyMatches(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var matches []mmodel.MatchModel
	if err := mc.DB.
		Preload("MatchStudents").
		Joins("JOIN match_students ms ON ms.match_student_match_id = matches.match_id").
		Where("ms.match_student_student_id = ?", studentID).
		Order("match_slot_start_at ASC").
		Find(&matches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat jadwal")
	}

	return helper.JsonOK(c, "", dto.ToMatchResponses(matches))
}

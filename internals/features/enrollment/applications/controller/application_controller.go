// file: internals/features/enrollment/applications/controller/application_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	coursemodel "rinschool_backend/internals/features/courses/courses/model"
	twmodel "rinschool_backend/internals/features/courses/time_windows/model"
	"rinschool_backend/internals/features/enrollment/applications/dto"
	appmodel "rinschool_backend/internals/features/enrollment/applications/model"
	matchsvc "rinschool_backend/internals/features/enrollment/matching/service"
	helper "rinschool_backend/internals/helpers"
)

type ApplicationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db, Validate: validator.New()}
}

// POST /api/u/applications — siswa submit lamaran.
// Course fixed → window_ids wajib; course fleksibel → preferences wajib.
// Setelah tersimpan, matching dijalankan best-effort (gagal hanya dicatat di log).
func (ac *ApplicationController) Apply(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var course coursemodel.CourseModel
	if err := ac.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	// Satu lamaran aktif (pending/matched) per siswa per course
	var existing int64
	if err := ac.DB.Model(&appmodel.ApplicationModel{}).
		Where("application_course_id = ? AND application_student_id = ? AND application_status IN ?",
			courseID, studentID,
			[]appmodel.ApplicationStatus{appmodel.ApplicationPending, appmodel.ApplicationMatched}).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa lamaran")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kamu sudah punya lamaran aktif untuk course ini")
	}

	application := appmodel.ApplicationModel{
		ApplicationID:        uuid.New(),
		ApplicationCourseID:  courseID,
		ApplicationStudentID: studentID,
		ApplicationStatus:    appmodel.ApplicationPending,
	}

	if course.CourseIsTimeFixed {
		if len(req.WindowIDs) == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Pilih minimal satu jadwal")
		}
		choices, err := ac.buildFixedChoices(application.ApplicationID, courseID, req.WindowIDs)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		application.ApplicationTimeChoices = choices
	} else {
		if len(req.Preferences) == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Pilih minimal satu waktu")
		}
		slots := matchsvc.ResolveDayTimeRanges(req.Preferences, time.Now())
		if len(slots) == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Pilih minimal satu waktu yang valid")
		}
		raw, merr := sonic.Marshal(req.Preferences)
		if merr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Preferensi waktu tidak valid")
		}
		application.ApplicationAvailability = raw

		for i := range slots {
			start := slots[i].Start
			end := slots[i].End
			application.ApplicationTimeChoices = append(application.ApplicationTimeChoices,
				appmodel.ApplicationTimeChoiceModel{
					ApplicationTimeChoiceApplicationID: application.ApplicationID,
					ApplicationTimeChoicePosition:      i,
					ApplicationTimeChoiceSlotStartAt:   &start,
					ApplicationTimeChoiceSlotEndAt:     &end,
				})
		}
	}

	if err := ac.DB.Create(&application).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan lamaran")
	}

	// Matching best-effort: lamaran tetap tersimpan walau run gagal/terkunci.
	if course.CourseIsTimeFixed {
		now := time.Now()
		_, rerr := matchsvc.RunMatching(matchsvc.NewStore(ac.DB), matchsvc.RunParams{
			CourseID:    courseID,
			From:        now,
			To:          now.AddDate(0, 0, 14),
			RequestedBy: studentID,
			Now:         now,
		})
		if rerr != nil {
			log.Printf("[WARN] auto-matching course %s setelah apply gagal: %v", courseID, rerr)
		}
	}

	var saved appmodel.ApplicationModel
	if err := ac.DB.
		Preload("ApplicationTimeChoices", func(db *gorm.DB) *gorm.DB {
			return db.Order("application_time_choice_position ASC")
		}).
		First(&saved, "application_id = ?", application.ApplicationID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat lamaran")
	}

	return helper.JsonCreated(c, "Lamaran terkirim", dto.ToApplicationResponse(&saved))
}

func (ac *ApplicationController) buildFixedChoices(
	applicationID, courseID uuid.UUID, windowIDs []string,
) ([]appmodel.ApplicationTimeChoiceModel, error) {
	ids := make([]uuid.UUID, 0, len(windowIDs))
	seen := map[uuid.UUID]bool{}
	for _, raw := range windowIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Window ID tidak valid")
		}
		if seen[id] {
			continue // duplikat diabaikan, urutan pertama yang dipakai
		}
		seen[id] = true
		ids = append(ids, id)
	}

	var count int64
	if err := ac.DB.Model(&twmodel.CourseTimeWindowModel{}).
		Where("course_time_window_id IN ? AND course_time_window_course_id = ?", ids, courseID).
		Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa jadwal")
	}
	if count != int64(len(ids)) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Ada jadwal yang bukan milik course ini")
	}

	// Urutan submit siswa = urutan preferensi; jangan di-sort ulang.
	choices := make([]appmodel.ApplicationTimeChoiceModel, 0, len(ids))
	for i := range ids {
		id := ids[i]
		choices = append(choices, appmodel.ApplicationTimeChoiceModel{
			ApplicationTimeChoiceApplicationID: applicationID,
			ApplicationTimeChoicePosition:      i,
			ApplicationTimeChoiceWindowID:      &id,
		})
	}
	return choices, nil
}

// POST /api/u/applications/:id/cancel — hanya pemilik, hanya dari pending.
func (ac *ApplicationController) Cancel(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Application ID tidak valid")
	}

	var application appmodel.ApplicationModel
	if err := ac.DB.First(&application, "application_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Lamaran tidak ditemukan")
	}
	if application.ApplicationStudentID != studentID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan lamaran milikmu")
	}
	if application.ApplicationStatus != appmodel.ApplicationPending {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya lamaran pending yang bisa dibatalkan")
	}

	if err := ac.DB.Model(&appmodel.ApplicationModel{}).
		Where("application_id = ?", id).
		Update("application_status", appmodel.ApplicationCancelled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan lamaran")
	}

	return helper.JsonUpdated(c, "Lamaran dibatalkan", fiber.Map{"application_id": id})
}

// GET /api/u/applications — daftar lamaran milik siswa login.
func (ac *ApplicationController) MyApplications(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var apps []appmodel.ApplicationModel
	if err := ac.DB.
		Preload("ApplicationTimeChoices", func(db *gorm.DB) *gorm.DB {
			return db.Order("application_time_choice_position ASC")
		}).
		Where("application_student_id = ?", studentID).
		Order("application_created_at DESC").
		Find(&apps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat lamaran")
	}

	return helper.JsonOK(c, "", dto.ToApplicationResponses(apps))
}

// GET /api/a/applications?course_id=&status=&page=
func (ac *ApplicationController) AdminList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ac.DB.Model(&appmodel.ApplicationModel{})
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
		}
		q = q.Where("application_course_id = ?", courseID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("application_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung lamaran")
	}

	var apps []appmodel.ApplicationModel
	if err := q.
		Preload("ApplicationTimeChoices", func(db *gorm.DB) *gorm.DB {
			return db.Order("application_time_choice_position ASC")
		}).
		Order("application_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&apps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat lamaran")
	}

	return helper.JsonList(c, "", dto.ToApplicationResponses(apps),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// file: internals/features/enrollment/matching/service/gateway.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	coursemodel "rinschool_backend/internals/features/courses/courses/model"
	twmodel "rinschool_backend/internals/features/courses/time_windows/model"
	appmodel "rinschool_backend/internals/features/enrollment/applications/model"
	mmodel "rinschool_backend/internals/features/enrollment/matching/model"
)

/* =========================
   Persistence Gateway
   Semua baca/tulis matching lewat interface ini supaya engine
   bisa dites dengan store in-memory.
========================= */

type Store interface {
	HasRunningRun(courseID uuid.UUID) (bool, error)
	CreateRun(run *mmodel.MatchingRunModel) error
	FinalizeRun(runID uuid.UUID, status mmodel.MatchingRunStatus) error

	LoadCourse(courseID uuid.UUID) (*coursemodel.CourseModel, error)
	LoadWindows(courseID uuid.UUID) ([]twmodel.CourseTimeWindowModel, error)
	// Pending applications urut created_at ASC (FIFO), time choices urut position.
	LoadPendingApplications(courseID uuid.UUID) ([]appmodel.ApplicationModel, error)
	// Match yang overlap [from, to], termasuk match_students-nya.
	LoadMatchesInRange(courseID uuid.UUID, from, to time.Time) ([]mmodel.MatchModel, error)

	CreateMatch(match *mmodel.MatchModel) error
	CreateMatchStudent(ms *mmodel.MatchStudentModel) error
	MarkApplicationMatched(applicationID uuid.UUID) error
}

/* =========================
   GORM implementation
========================= */

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) HasRunningRun(courseID uuid.UUID) (bool, error) {
	var n int64
	err := s.db.Model(&mmodel.MatchingRunModel{}).
		Where("matching_run_course_id = ? AND matching_run_status = ?", courseID, mmodel.MatchingRunRunning).
		Count(&n).Error
	return n > 0, err
}

func (s *gormStore) CreateRun(run *mmodel.MatchingRunModel) error {
	return s.db.Create(run).Error
}

func (s *gormStore) FinalizeRun(runID uuid.UUID, status mmodel.MatchingRunStatus) error {
	return s.db.Model(&mmodel.MatchingRunModel{}).
		Where("matching_run_id = ?", runID).
		Update("matching_run_status", status).Error
}

func (s *gormStore) LoadCourse(courseID uuid.UUID) (*coursemodel.CourseModel, error) {
	var course coursemodel.CourseModel
	if err := s.db.
		Where("course_id = ?", courseID).
		First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *gormStore) LoadWindows(courseID uuid.UUID) ([]twmodel.CourseTimeWindowModel, error) {
	var windows []twmodel.CourseTimeWindowModel
	err := s.db.
		Where("course_time_window_course_id = ?", courseID).
		Find(&windows).Error
	return windows, err
}

func (s *gormStore) LoadPendingApplications(courseID uuid.UUID) ([]appmodel.ApplicationModel, error) {
	var apps []appmodel.ApplicationModel
	err := s.db.
		Preload("ApplicationTimeChoices", func(db *gorm.DB) *gorm.DB {
			return db.Order("application_time_choice_position ASC")
		}).
		Where("application_course_id = ? AND application_status = ?", courseID, appmodel.ApplicationPending).
		Order("application_created_at ASC").
		Find(&apps).Error
	return apps, err
}

func (s *gormStore) LoadMatchesInRange(courseID uuid.UUID, from, to time.Time) ([]mmodel.MatchModel, error) {
	var matches []mmodel.MatchModel
	err := s.db.
		Preload("MatchStudents").
		Where("match_course_id = ? AND match_slot_start_at >= ? AND match_slot_end_at <= ?", courseID, from, to).
		Find(&matches).Error
	return matches, err
}

func (s *gormStore) CreateMatch(match *mmodel.MatchModel) error {
	return s.db.Create(match).Error
}

func (s *gormStore) CreateMatchStudent(ms *mmodel.MatchStudentModel) error {
	return s.db.Create(ms).Error
}

func (s *gormStore) MarkApplicationMatched(applicationID uuid.UUID) error {
	return s.db.Model(&appmodel.ApplicationModel{}).
		Where("application_id = ?", applicationID).
		Update("application_status", appmodel.ApplicationMatched).Error
}

// file: internals/features/courses/time_windows/model/time_window_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: CourseTimeWindowModel
   Pola mingguan: day_of_week 0..6 (0 = Minggu) + jam dinding "HH:MM".
========================= */

type CourseTimeWindowModel struct {
	// PK
	CourseTimeWindowID uuid.UUID `gorm:"type:uuid;primaryKey;column:course_time_window_id"`

	CourseTimeWindowCourseID uuid.UUID `gorm:"type:uuid;not null;column:course_time_window_course_id;index"`

	CourseTimeWindowDayOfWeek int    `gorm:"not null;column:course_time_window_day_of_week"` // 0..6
	CourseTimeWindowStartTime string `gorm:"size:5;not null;column:course_time_window_start_time"` // "HH:MM"
	CourseTimeWindowEndTime   string `gorm:"size:5;not null;column:course_time_window_end_time"`   // "HH:MM"

	// Pengajar — opsional (id terdaftar atau nama bebas)
	CourseTimeWindowInstructorID   *uuid.UUID `gorm:"type:uuid;column:course_time_window_instructor_id;index"`
	CourseTimeWindowInstructorName *string    `gorm:"size:100;column:course_time_window_instructor_name"`

	// Override kapasitas course — opsional
	CourseTimeWindowCapacity *int `gorm:"column:course_time_window_capacity"`

	// Timestamps
	CourseTimeWindowCreatedAt time.Time      `gorm:"column:course_time_window_created_at;autoCreateTime"`
	CourseTimeWindowUpdatedAt time.Time      `gorm:"column:course_time_window_updated_at;autoUpdateTime"`
	CourseTimeWindowDeletedAt gorm.DeletedAt `gorm:"column:course_time_window_deleted_at;index"`
}

func (CourseTimeWindowModel) TableName() string { return "course_time_windows" }

func (m *CourseTimeWindowModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseTimeWindowID == uuid.Nil {
		m.CourseTimeWindowID = uuid.New()
	}
	return nil
}

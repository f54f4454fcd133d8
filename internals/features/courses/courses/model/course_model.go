// file: internals/features/courses/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: CourseModel
========================= */

type CourseModel struct {
	// PK
	CourseID uuid.UUID `gorm:"type:uuid;primaryKey;column:course_id"`

	CourseTitle       string  `gorm:"size:200;not null;column:course_title"`
	CourseSubject     string  `gorm:"size:100;not null;column:course_subject"`
	CourseGradeRange  string  `gorm:"size:50;not null;column:course_grade_range"`
	CourseDescription *string `gorm:"type:text;column:course_description"`

	// Kapasitas default per slot (bisa dioverride per time window)
	CourseCapacity        int  `gorm:"not null;default:4;column:course_capacity"`
	CourseDurationMinutes int  `gorm:"not null;default:60;column:course_duration_minutes"`
	CourseIsTimeFixed     bool `gorm:"not null;default:false;column:course_is_time_fixed"`
	CourseWeeks           int  `gorm:"not null;default:4;column:course_weeks"`

	CourseImageURL *string `gorm:"type:text;column:course_image_url"`

	CourseCreatedBy *uuid.UUID `gorm:"type:uuid;column:course_created_by"`

	// Timestamps
	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}

// file: internals/features/enrollment/matching/model/match_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type MatchStatus string

const (
	MatchConfirmed MatchStatus = "confirmed"
	MatchCanceled  MatchStatus = "canceled"
)

/* =========================
   Model: MatchModel
   Satu sesi terjadwal pada instant konkret; siswa bergabung lewat match_students.
   Kapasitas efektif = window.capacity (atau course.capacity) − jumlah match_students.
========================= */

type MatchModel struct {
	// PK
	MatchID uuid.UUID `gorm:"type:uuid;primaryKey;column:match_id"`

	MatchCourseID uuid.UUID `gorm:"type:uuid;not null;column:match_course_id;index"`

	MatchSlotStartAt time.Time `gorm:"not null;column:match_slot_start_at;index"`
	MatchSlotEndAt   time.Time `gorm:"not null;column:match_slot_end_at"`

	MatchInstructorID   *uuid.UUID `gorm:"type:uuid;column:match_instructor_id"`
	MatchInstructorName *string    `gorm:"size:100;column:match_instructor_name"`

	MatchStatus MatchStatus `gorm:"type:varchar(20);default:'confirmed';not null;column:match_status"`

	MatchUpdatedBy *uuid.UUID `gorm:"type:uuid;column:match_updated_by"`

	MatchStudents []MatchStudentModel `gorm:"foreignKey:MatchStudentMatchID;references:MatchID;constraint:OnDelete:CASCADE"`

	MatchCreatedAt time.Time `gorm:"column:match_created_at;autoCreateTime"`
	MatchUpdatedAt time.Time `gorm:"column:match_updated_at;autoUpdateTime"`
}

func (MatchModel) TableName() string { return "matches" }

func (m *MatchModel) BeforeCreate(tx *gorm.DB) error {
	if m.MatchID == uuid.Nil {
		m.MatchID = uuid.New()
	}
	return nil
}

/* =========================
   Model: MatchStudentModel (join row)
========================= */

type MatchStudentModel struct {
	// PK
	MatchStudentID uuid.UUID `gorm:"type:uuid;primaryKey;column:match_student_id"`

	MatchStudentMatchID   uuid.UUID `gorm:"type:uuid;not null;column:match_student_match_id;index:idx_match_student_unique,unique"`
	MatchStudentStudentID uuid.UUID `gorm:"type:uuid;not null;column:match_student_student_id;index:idx_match_student_unique,unique"`

	MatchStudentCreatedAt time.Time `gorm:"column:match_student_created_at;autoCreateTime"`
}

func (MatchStudentModel) TableName() string { return "match_students" }

func (m *MatchStudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.MatchStudentID == uuid.Nil {
		m.MatchStudentID = uuid.New()
	}
	return nil
}

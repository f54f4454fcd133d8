// file: internals/features/enrollment/matching/model/matching_run_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type MatchingRunStatus string

const (
	MatchingRunRunning MatchingRunStatus = "running"
	MatchingRunDone    MatchingRunStatus = "done"
	MatchingRunFailed  MatchingRunStatus = "failed"
)

/* =========================
   Model: MatchingRunModel
   Baris audit + guard: maksimal satu baris `running` per course
   (check-then-insert, tanpa constraint unik — lihat catatan di service).
========================= */

type MatchingRunModel struct {
	// PK
	MatchingRunID uuid.UUID `gorm:"type:uuid;primaryKey;column:matching_run_id"`

	MatchingRunCourseID uuid.UUID `gorm:"type:uuid;not null;column:matching_run_course_id;index"`

	MatchingRunStatus MatchingRunStatus `gorm:"type:varchar(20);default:'running';not null;column:matching_run_status"`

	MatchingRunRangeFrom time.Time `gorm:"not null;column:matching_run_range_from"`
	MatchingRunRangeTo   time.Time `gorm:"not null;column:matching_run_range_to"`

	MatchingRunCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:matching_run_created_by"`

	MatchingRunCreatedAt time.Time `gorm:"column:matching_run_created_at;autoCreateTime"`
	MatchingRunUpdatedAt time.Time `gorm:"column:matching_run_updated_at;autoUpdateTime"`
}

func (MatchingRunModel) TableName() string { return "matching_runs" }

func (m *MatchingRunModel) BeforeCreate(tx *gorm.DB) error {
	if m.MatchingRunID == uuid.Nil {
		m.MatchingRunID = uuid.New()
	}
	return nil
}

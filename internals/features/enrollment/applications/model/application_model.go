// file: internals/features/enrollment/applications/model/application_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationMatched   ApplicationStatus = "matched"
	ApplicationCancelled ApplicationStatus = "cancelled"
)

/* =========================
   Model: ApplicationModel
   created_at menentukan urutan FIFO saat matching.
========================= */

type ApplicationModel struct {
	// PK
	ApplicationID uuid.UUID `gorm:"type:uuid;primaryKey;column:application_id"`

	ApplicationCourseID  uuid.UUID `gorm:"type:uuid;not null;column:application_course_id;index"`
	ApplicationStudentID uuid.UUID `gorm:"type:uuid;not null;column:application_student_id;index"`

	ApplicationStatus ApplicationStatus `gorm:"type:varchar(20);default:'pending';not null;column:application_status"`

	// Preferensi mentah mode fleksibel (JSON day/time ranges yang disubmit siswa)
	ApplicationAvailability datatypes.JSON `gorm:"column:application_availability"`

	// Urutan preferensi tersimpan di kolom position anak
	ApplicationTimeChoices []ApplicationTimeChoiceModel `gorm:"foreignKey:ApplicationTimeChoiceApplicationID;references:ApplicationID;constraint:OnDelete:CASCADE"`

	ApplicationCreatedAt time.Time `gorm:"column:application_created_at;autoCreateTime"`
	ApplicationUpdatedAt time.Time `gorm:"column:application_updated_at;autoUpdateTime"`
}

func (ApplicationModel) TableName() string { return "applications" }

func (m *ApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ApplicationID == uuid.Nil {
		m.ApplicationID = uuid.New()
	}
	return nil
}

/* =========================
   Model: ApplicationTimeChoiceModel
   Mode fixed  → window_id terisi.
   Mode fleksibel → slot_start_at/slot_end_at terisi (hasil resolve preferensi).
========================= */

type ApplicationTimeChoiceModel struct {
	// PK
	ApplicationTimeChoiceID uuid.UUID `gorm:"type:uuid;primaryKey;column:application_time_choice_id"`

	ApplicationTimeChoiceApplicationID uuid.UUID `gorm:"type:uuid;not null;column:application_time_choice_application_id;index"`

	// Urutan preferensi yang disubmit siswa (0-based); JANGAN di-sort ulang berdasarkan waktu.
	ApplicationTimeChoicePosition int `gorm:"not null;default:0;column:application_time_choice_position"`

	ApplicationTimeChoiceWindowID *uuid.UUID `gorm:"type:uuid;column:application_time_choice_window_id;index"`

	ApplicationTimeChoiceSlotStartAt *time.Time `gorm:"column:application_time_choice_slot_start_at"`
	ApplicationTimeChoiceSlotEndAt   *time.Time `gorm:"column:application_time_choice_slot_end_at"`
}

func (ApplicationTimeChoiceModel) TableName() string { return "application_time_choices" }

func (m *ApplicationTimeChoiceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ApplicationTimeChoiceID == uuid.Nil {
		m.ApplicationTimeChoiceID = uuid.New()
	}
	return nil
}

// file: internals/features/home/landing/model/landing_image_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LandingImageVariant string

const (
	LandingImageDesktop LandingImageVariant = "desktop"
	LandingImageMobile  LandingImageVariant = "mobile"
)

/* =========================
   Model: LandingImageModel
   Banner landing page, satu baris per gambar per varian layar.
========================= */

type LandingImageModel struct {
	// PK
	LandingImageID uuid.UUID `gorm:"type:uuid;primaryKey;column:landing_image_id" json:"landing_image_id"`

	LandingImageVariant  LandingImageVariant `gorm:"type:varchar(10);not null;column:landing_image_variant;index" json:"variant"`
	LandingImageURL      string              `gorm:"type:text;not null;column:landing_image_url" json:"url"`
	LandingImagePosition int                 `gorm:"not null;default:0;column:landing_image_position" json:"position"`

	LandingImageCreatedBy *uuid.UUID `gorm:"type:uuid;column:landing_image_created_by" json:"-"`

	LandingImageCreatedAt time.Time `gorm:"column:landing_image_created_at;autoCreateTime" json:"created_at"`
	LandingImageUpdatedAt time.Time `gorm:"column:landing_image_updated_at;autoUpdateTime" json:"-"`
}

func (LandingImageModel) TableName() string { return "landing_images" }

func (m *LandingImageModel) BeforeCreate(tx *gorm.DB) error {
	if m.LandingImageID == uuid.Nil {
		m.LandingImageID = uuid.New()
	}
	return nil
}

// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
)

/* =========================
   Model: UserModel
========================= */

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id"`

	UserName  string `gorm:"size:100;not null;column:user_name"`
	UserEmail string `gorm:"size:255;not null;uniqueIndex;column:user_email"`

	// bcrypt hash, tidak pernah keluar lewat JSON
	UserPassword string `gorm:"size:255;not null;column:user_password" json:"-"`

	UserRole UserRole `gorm:"type:varchar(20);default:'student';not null;column:user_role"`

	// Kontak wali (opsional, untuk siswa di bawah umur)
	UserGuardianEmail *string `gorm:"size:255;column:user_guardian_email"`

	// Timestamps
	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

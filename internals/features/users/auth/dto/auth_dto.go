// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	usermodel "rinschool_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	UserName      string  `json:"user_name" validate:"required,min=3,max=100"`
	Email         string  `json:"email" validate:"required,email,max=255"`
	Password      string  `json:"password" validate:"required,min=8,max=72"`
	GuardianEmail *string `json:"guardian_email" validate:"omitempty,email,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	GuardianEmail *string   `json:"guardian_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToUserResponse(u *usermodel.UserModel) UserResponse {
	return UserResponse{
		UserID:        u.UserID.String(),
		UserName:      u.UserName,
		Email:         u.UserEmail,
		Role:          string(u.UserRole),
		GuardianEmail: u.UserGuardianEmail,
		CreatedAt:     u.UserCreatedAt,
	}
}

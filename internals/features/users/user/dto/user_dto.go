// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	usermodel "rinschool_backend/internals/features/users/user/model"
)

type UserItem struct {
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	GuardianEmail *string   `json:"guardian_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToUserItem(u *usermodel.UserModel) UserItem {
	return UserItem{
		UserID:        u.UserID.String(),
		UserName:      u.UserName,
		Email:         u.UserEmail,
		Role:          string(u.UserRole),
		GuardianEmail: u.UserGuardianEmail,
		CreatedAt:     u.UserCreatedAt,
	}
}

func ToUserItems(users []usermodel.UserModel) []UserItem {
	out := make([]UserItem, 0, len(users))
	for i := range users {
		out = append(out, ToUserItem(&users[i]))
	}
	return out
}

// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	usermodel "rinschool_backend/internals/features/users/user/model"
)

const accessTokenTTL = 24 * time.Hour

// GenerateAccessToken: HS256, claims dibaca ulang oleh middleware AuthJWT
// (id → Locals user_id, role, user_name).
func GenerateAccessToken(secret string, u *usermodel.UserModel, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"role":      string(u.UserRole),
		"user_name": u.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

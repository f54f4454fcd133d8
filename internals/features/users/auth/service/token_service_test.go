package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	usermodel "rinschool_backend/internals/features/users/user/model"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	user := &usermodel.UserModel{
		UserID:   uuid.New(),
		UserName: "Budi",
		UserRole: usermodel.RoleStudent,
	}
	now := time.Now()

	raw, err := GenerateAccessToken(secret, user, now)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	tok, err := jwt.Parse(raw, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("signing method bukan HMAC: %v", tk.Method)
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token tidak valid: %v", err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims bukan MapClaims")
	}
	if claims["id"] != user.UserID.String() {
		t.Errorf("claim id = %v, want %s", claims["id"], user.UserID)
	}
	if claims["role"] != "student" {
		t.Errorf("claim role = %v, want student", claims["role"])
	}
	if claims["user_name"] != "Budi" {
		t.Errorf("claim user_name = %v, want Budi", claims["user_name"])
	}

	exp, _ := claims["exp"].(float64)
	if int64(exp) != now.Add(accessTokenTTL).Unix() {
		t.Errorf("exp = %v, want %d", int64(exp), now.Add(accessTokenTTL).Unix())
	}
}

func TestGenerateAccessToken_RejectsWrongSecret(t *testing.T) {
	user := &usermodel.UserModel{UserID: uuid.New(), UserName: "Budi", UserRole: usermodel.RoleStudent}

	raw, err := GenerateAccessToken("secret-a", user, time.Now())
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	tok, err := jwt.Parse(raw, func(tk *jwt.Token) (any, error) {
		return []byte("secret-b"), nil
	})
	if err == nil && tok.Valid {
		t.Fatal("token dengan secret salah harus ditolak")
	}
}

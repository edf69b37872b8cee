// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/amdmunif/sood-wsb/internals/configs"
	usermodel "github.com/amdmunif/sood-wsb/internals/features/users/user/model"
)

// Masa berlaku access token. Frontend memanggil check_session saat boot,
// jadi token kedaluwarsa cukup berakhir di 204 + redirect login.
const AccessTokenTTL = 24 * time.Hour

// IssueAccessToken menandatangani JWT HS256 berisi identitas + scope tenant.
// Klaim di sini harus sinkron dengan ParseAuthContext di middleware auth.
func IssueAccessToken(user usermodel.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("missing jwt secret")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(AccessTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	if user.PKBMID != nil {
		claims["pkbm_id"] = *user.PKBMID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

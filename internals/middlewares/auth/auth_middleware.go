// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/amdmunif/sood-wsb/internals/configs"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
	helperAuth "github.com/amdmunif/sood-wsb/internals/helpers/auth"
)

var errNoToken = errors.New("token tidak ditemukan")

// AuthMiddleware memverifikasi JWT (cookie atau bearer) dan membangun
// AuthContext SEKALI untuk seluruh handler di belakangnya. Handler tidak
// pernah membaca klaim token sendiri.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, err := ParseAuthContext(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		helperAuth.SetAuthContext(c, ac)
		return c.Next()
	}
}

// OptionalAuth seperti AuthMiddleware tapi tidak menolak request tanpa
// token; dipakai endpoint check_session yang membalas 204 alih-alih 401.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ac, err := ParseAuthContext(c); err == nil {
			helperAuth.SetAuthContext(c, ac)
		}
		return c.Next()
	}
}

// RequireRoles menolak request bila role di AuthContext tidak termasuk
// daftar yang diizinkan. Pasang SETELAH AuthMiddleware.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, err := helperAuth.GetAuthContext(c)
		if err != nil {
			return err
		}
		for _, r := range roles {
			if ac.Role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Forbidden")
	}
}

// ParseAuthContext memverifikasi tanda tangan + exp token lalu memetakan
// klaim ke AuthContext.
func ParseAuthContext(c *fiber.Ctx) (helperAuth.AuthContext, error) {
	tokenString := helper.GetRawAccessToken(c)
	if tokenString == "" {
		return helperAuth.AuthContext{}, errNoToken
	}

	secret := configs.JWTSecret
	if secret == "" {
		log.Println("[ERROR] JWT_SECRET kosong")
		return helperAuth.AuthContext{}, errors.New("missing jwt secret")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}); err != nil {
		return helperAuth.AuthContext{}, err
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().After(time.Unix(int64(exp), 0)) {
			return helperAuth.AuthContext{}, errors.New("token expired")
		}
	}

	ac := helperAuth.AuthContext{}
	if v, ok := claims["user_id"].(float64); ok {
		ac.UserID = uint(v)
	}
	if v, ok := claims["name"].(string); ok {
		ac.Name = v
	}
	if v, ok := claims["email"].(string); ok {
		ac.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		ac.Role = v
	}
	if v, ok := claims["pkbm_id"].(float64); ok {
		id := uint(v)
		ac.PKBMID = &id
	}
	if ac.UserID == 0 || ac.Role == "" {
		return helperAuth.AuthContext{}, errors.New("klaim token tidak lengkap")
	}
	return ac, nil
}

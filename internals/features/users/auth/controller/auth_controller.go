// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/amdmunif/sood-wsb/internals/configs"
	authdto "github.com/amdmunif/sood-wsb/internals/features/users/auth/dto"
	authservice "github.com/amdmunif/sood-wsb/internals/features/users/auth/service"
	usermodel "github.com/amdmunif/sood-wsb/internals/features/users/user/model"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
	helperAuth "github.com/amdmunif/sood-wsb/internals/helpers/auth"
)

const resetTokenTTL = time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🔐 POST /api/login — verifikasi bcrypt, terbitkan JWT di cookie HTTPOnly.
// Pesan error tidak membedakan email salah vs password salah.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authdto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if req.Email == "" || req.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email dan password harus diisi")
	}

	var user usermodel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("email = ?", req.Email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := authservice.IssueAccessToken(user)
	if err != nil {
		log.Printf("[ERROR] terbitkan token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	setAccessCookie(c, token, time.Now().Add(authservice.AccessTokenTTL))

	return helper.JsonRaw(c, fiber.StatusOK, fiber.Map{
		"message": "Login berhasil",
		"user":    ctrl.sessionResponse(c, user),
	})
}

// 👤 GET /api/check_session — 204 (bukan 401) saat tidak ada sesi valid,
// supaya boot frontend tidak memicu interceptor error.
func (ctrl *AuthController) CheckSession(c *fiber.Ctx) error {
	ac, err := helperAuth.GetAuthContext(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	var user usermodel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, ac.UserID).Error; err != nil {
		// akun sudah dihapus; sesi dianggap tidak ada
		return c.SendStatus(fiber.StatusNoContent)
	}
	return helper.JsonRaw(c, fiber.StatusOK, ctrl.sessionResponse(c, user))
}

// 🚪 POST /api/logout — hapus cookie; token yang masih beredar mati
// sendiri saat exp.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	setAccessCookie(c, "", time.Now().Add(-time.Hour))
	return helper.JsonMessage(c, fiber.StatusOK, "Logout berhasil")
}

// 📧 POST /api/forgot_password — balasan selalu generik agar tidak
// membocorkan email mana yang terdaftar.
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req authdto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email harus diisi")
	}

	var user usermodel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("email = ?", req.Email).
		First(&user).Error; err == nil {
		token := uuid.NewString()
		expires := time.Now().Add(resetTokenTTL)
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&user).
			Updates(map[string]interface{}{
				"reset_token":            token,
				"reset_token_expires_at": expires,
			}).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses permintaan")
		}
		// TODO: kirim via SMTP; sementara tautan dicetak ke log operator.
		log.Printf("[RESET] %s -> %s/reset-password?token=%s", user.Email, configs.FrontendURL, token)
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Jika email terdaftar, tautan reset password telah dikirim.")
}

// 🔁 POST /api/reset_password — token sekali pakai, kedaluwarsa 1 jam.
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req authdto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil || req.Token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token harus diisi")
	}
	if len(req.Password) < 6 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password minimal 6 karakter")
	}

	var user usermodel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("reset_token = ?", req.Token).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak valid atau sudah kedaluwarsa")
	}
	if user.ResetTokenExpiresAt == nil || time.Now().After(*user.ResetTokenExpiresAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak valid atau sudah kedaluwarsa")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&user).
		Updates(map[string]interface{}{
			"password":               string(hash),
			"reset_token":            nil,
			"reset_token_expires_at": nil,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan password")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Password berhasil direset. Silakan login kembali.")
}

func (ctrl *AuthController) sessionResponse(c *fiber.Ctx, user usermodel.UserModel) authdto.SessionResponse {
	resp := authdto.SessionResponse{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		PKBMID: user.PKBMID,
	}
	if user.PKBMID != nil {
		var pkbmName string
		ctrl.DB.WithContext(c.Context()).
			Table("pkbm").
			Select("name").
			Where("id = ?", *user.PKBMID).
			Scan(&pkbmName)
		resp.PKBMName = pkbmName
	}
	return resp
}

func setAccessCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   configs.GetEnv("APP_ENV", "development") == "production",
		SameSite: "Lax",
		Path:     "/",
	})
}

// internals/features/users/user/controller/user_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/amdmunif/sood-wsb/internals/constants"
	userdto "github.com/amdmunif/sood-wsb/internals/features/users/user/dto"
	usermodel "github.com/amdmunif/sood-wsb/internals/features/users/user/model"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
	helperAuth "github.com/amdmunif/sood-wsb/internals/helpers/auth"
)

// Manajemen akun login. Seluruh endpoint di sini khusus Super Admin
// (digerbangi RequireRoles di route).
type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// 👥 GET /api/users
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	var users []userdto.UserResponse
	if err := ctrl.DB.WithContext(c.Context()).
		Table("users u").
		Select("u.id, u.name, u.email, u.role, u.pkbm_id, COALESCE(p.name, '') AS pkbm_name").
		Joins("LEFT JOIN pkbm p ON u.pkbm_id = p.id").
		Order("u.name ASC").
		Scan(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pengguna")
	}
	return helper.JsonRaw(c, fiber.StatusOK, users)
}

// ➕ POST /api/users
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req userdto.SaveUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	req.ID = 0
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama, email, dan role wajib diisi")
	}
	if len(req.Password) < 6 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password minimal 6 karakter")
	}
	if req.Role != constants.RoleSuperAdmin && req.PKBMID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unit PKBM wajib dipilih untuk role ini")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	user := usermodel.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
		PKBMID:   req.PKBMID,
	}
	if user.Role == constants.RoleSuperAdmin {
		user.PKBMID = nil
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengguna")
	}
	return helper.JsonRaw(c, fiber.StatusCreated, fiber.Map{
		"message": "Pengguna berhasil ditambahkan",
		"id":      user.ID,
	})
}

// ✏️ PUT /api/users — password kosong berarti tidak diganti.
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	var req userdto.SaveUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if req.ID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama, email, dan role wajib diisi")
	}

	updates := map[string]interface{}{
		"name":    req.Name,
		"email":   req.Email,
		"role":    req.Role,
		"pkbm_id": req.PKBMID,
	}
	if req.Role == constants.RoleSuperAdmin {
		updates["pkbm_id"] = nil
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Password minimal 6 karakter")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
		}
		updates["password"] = string(hash)
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&usermodel.UserModel{}).
		Where("id = ?", req.ID).
		Updates(updates).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengguna")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Pengguna berhasil diperbarui")
}

// 🗑️ DELETE /api/users/:id — akun sendiri tidak boleh dihapus.
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}
	ac, acErr := helperAuth.GetAuthContext(c)
	if acErr == nil && ac.UserID == uint(id) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa menghapus akun sendiri")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&usermodel.UserModel{}, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengguna")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Pengguna berhasil dihapus")
}

func isDuplicateErr(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate") || strings.Contains(s, "unique")
}

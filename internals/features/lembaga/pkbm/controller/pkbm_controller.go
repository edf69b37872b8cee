// internals/features/lembaga/pkbm/controller/pkbm_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/amdmunif/sood-wsb/internals/constants"
	pkbmdto "github.com/amdmunif/sood-wsb/internals/features/lembaga/pkbm/dto"
	pkbmmodel "github.com/amdmunif/sood-wsb/internals/features/lembaga/pkbm/model"
	usermodel "github.com/amdmunif/sood-wsb/internals/features/users/user/model"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
)

type PKBMController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPKBMController(db *gorm.DB) *PKBMController {
	return &PKBMController{DB: db, Validate: validator.New()}
}

// 🏫 GET /api/pkbm — publik, dipakai halaman landing (peta & daftar unit).
func (ctrl *PKBMController) ListPKBM(c *fiber.Ctx) error {
	var rows []pkbmmodel.PKBMModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data PKBM")
	}
	out := make([]pkbmdto.PKBMResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, pkbmdto.ToPKBMResponse(r))
	}
	return helper.JsonRaw(c, fiber.StatusOK, out)
}

// ➕ POST /api/pkbm — khusus Super Admin. Bila admin_email diisi,
// akun Admin PKBM dibuat dalam transaksi yang sama.
func (ctrl *PKBMController) CreatePKBM(c *fiber.Ctx) error {
	var req pkbmdto.SavePKBMRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	req.ID = 0
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama PKBM wajib diisi")
	}
	if req.AdminEmail != "" && req.AdminPassword == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password admin wajib diisi")
	}

	pkbm := req.ToModel()
	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pkbm).Error; err != nil {
			return err
		}
		if req.AdminEmail == "" {
			return nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		adminName := req.AdminName
		if adminName == "" {
			adminName = "Admin " + pkbm.Name
		}
		admin := usermodel.UserModel{
			Name:     adminName,
			Email:    req.AdminEmail,
			Password: string(hash),
			Role:     constants.RoleAdminPKBM,
			PKBMID:   &pkbm.ID,
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email admin sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan PKBM: "+err.Error())
	}
	return helper.JsonRaw(c, fiber.StatusCreated, fiber.Map{
		"message": "PKBM berhasil ditambahkan",
		"id":      pkbm.ID,
	})
}

// ✏️ PUT /api/pkbm — khusus Super Admin; id tidak ditemukan = no-op.
func (ctrl *PKBMController) UpdatePKBM(c *fiber.Ctx) error {
	var req pkbmdto.SavePKBMRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if req.ID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama PKBM wajib diisi")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&pkbmmodel.PKBMModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"name":                 m.Name,
			"npsn":                 m.NPSN,
			"email":                m.Email,
			"address":              m.Address,
			"latitude":             m.Latitude,
			"longitude":            m.Longitude,
			"contact_person_name":  m.ContactPersonName,
			"contact_person_phone": m.ContactPersonPhone,
			"classroom_url":        m.ClassroomURL,
			"head_name":            m.HeadName,
			"teacher_name":         m.TeacherName,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui PKBM")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "PKBM berhasil diperbarui")
}

// 🗑️ DELETE /api/pkbm/:id — siswa & user unit ikut terhapus (FK cascade).
func (ctrl *PKBMController) DeletePKBM(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&pkbmmodel.PKBMModel{}, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus PKBM")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "PKBM berhasil dihapus")
}

func isDuplicateErr(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate") || strings.Contains(s, "unique")
}

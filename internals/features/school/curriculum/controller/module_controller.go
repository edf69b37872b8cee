// internals/features/school/curriculum/controller/module_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	curriculumdto "github.com/amdmunif/sood-wsb/internals/features/school/curriculum/dto"
	curriculummodel "github.com/amdmunif/sood-wsb/internals/features/school/curriculum/model"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
)

type ModuleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{DB: db, Validate: validator.New()}
}

// ➕ POST /api/modules — khusus Super Admin.
func (ctrl *ModuleController) CreateModule(c *fiber.Ctx) error {
	var req curriculumdto.CreateModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama modul dan mata pelajaran wajib diisi")
	}

	var n int64
	ctrl.DB.WithContext(c.Context()).
		Model(&curriculummodel.SubjectModel{}).
		Where("id = ?", req.SubjectID).Count(&n)
	if n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Mata pelajaran tidak ditemukan")
	}

	module := curriculummodel.ModuleModel{SubjectID: req.SubjectID, Name: req.Name}
	if err := ctrl.DB.WithContext(c.Context()).Create(&module).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan modul")
	}
	return helper.JsonRaw(c, fiber.StatusCreated, fiber.Map{
		"message": "Modul berhasil ditambahkan",
		"id":      module.ID,
	})
}

// 🗑️ DELETE /api/modules/:id — nilai pada modul ikut terhapus (FK cascade).
func (ctrl *ModuleController) DeleteModule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&curriculummodel.ModuleModel{}, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus modul")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Modul berhasil dihapus")
}

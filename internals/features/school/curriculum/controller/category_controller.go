// internals/features/school/curriculum/controller/category_controller.go
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

type CategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, Validate: validator.New()}
}

// 🗂️ GET /api/subject_categories — urut sort_order lalu nama.
func (ctrl *CategoryController) ListCategories(c *fiber.Ctx) error {
	var categories []curriculummodel.SubjectCategoryModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kategori")
	}
	return helper.JsonRaw(c, fiber.StatusOK, categories)
}

// ➕ POST /api/subject_categories — khusus Super Admin.
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var req curriculumdto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama kategori wajib diisi")
	}

	category := curriculummodel.SubjectCategoryModel{Name: req.Name, SortOrder: req.SortOrder}
	if err := ctrl.DB.WithContext(c.Context()).Create(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kategori")
	}
	return helper.JsonRaw(c, fiber.StatusCreated, fiber.Map{
		"message": "Kategori berhasil ditambahkan",
		"id":      category.ID,
	})
}

// ✏️ PUT /api/subject_categories — partial update.
func (ctrl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	var req curriculumdto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.ID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}

	var category curriculummodel.SubjectCategoryModel
	if err := ctrl.DB.WithContext(c.Context()).First(&category, req.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}

	updates := map[string]interface{}{}
	if v, ok := req.Name.Get(); ok {
		if v == nil || strings.TrimSpace(*v) == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama kategori wajib diisi")
		}
		updates["name"] = strings.TrimSpace(*v)
	}
	if v, ok := req.SortOrder.Get(); ok && v != nil {
		updates["sort_order"] = *v
	}
	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&category).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kategori")
		}
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Kategori diperbarui")
}

// 🗑️ DELETE /api/subject_categories/:id — mapel TIDAK ikut terhapus;
// category_id mapel di-NULL-kan oleh FK SET NULL.
func (ctrl *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&curriculummodel.SubjectCategoryModel{}, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Kategori dihapus")
}

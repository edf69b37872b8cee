// internals/features/school/curriculum/controller/subject_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	curriculumdto "github.com/amdmunif/sood-wsb/internals/features/school/curriculum/dto"
	curriculummodel "github.com/amdmunif/sood-wsb/internals/features/school/curriculum/model"
	gradeservice "github.com/amdmunif/sood-wsb/internals/features/school/grades/service"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

// 📚 GET /api/subjects — seluruh mapel + modul, urutan kanonik
// (kategori → mapel; tanpa kategori paling akhir).
func (ctrl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	subjects, err := gradeservice.LoadSubjectTree(ctrl.DB.WithContext(c.Context()))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat mata pelajaran")
	}
	return helper.JsonRaw(c, fiber.StatusOK, subjects)
}

// ➕ POST /api/subjects — khusus Super Admin.
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req curriculumdto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama mata pelajaran wajib diisi")
	}
	if req.CategoryID != nil {
		var n int64
		ctrl.DB.WithContext(c.Context()).
			Model(&curriculummodel.SubjectCategoryModel{}).
			Where("id = ?", *req.CategoryID).Count(&n)
		if n == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori tidak ditemukan")
		}
	}

	subject := curriculummodel.SubjectModel{
		Name:       req.Name,
		SortOrder:  req.SortOrder,
		CategoryID: req.CategoryID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&subject).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan mata pelajaran")
	}
	return helper.JsonRaw(c, fiber.StatusCreated, fiber.Map{
		"message": "Mata pelajaran berhasil ditambahkan",
		"id":      subject.ID,
	})
}

// ✏️ PUT /api/subjects — partial update; category_id boleh di-null-kan
// (lepas dari kategori) dan itu beda dengan tidak dikirim sama sekali.
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	var req curriculumdto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.ID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}

	var subject curriculummodel.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).First(&subject, req.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Mata pelajaran tidak ditemukan")
	}

	updates := map[string]interface{}{}
	if v, ok := req.Name.Get(); ok {
		if v == nil || strings.TrimSpace(*v) == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama mata pelajaran wajib diisi")
		}
		updates["name"] = strings.TrimSpace(*v)
	}
	if v, ok := req.SortOrder.Get(); ok && v != nil {
		updates["sort_order"] = *v
	}
	if v, ok := req.CategoryID.Get(); ok {
		if v == nil {
			updates["category_id"] = nil
		} else {
			var n int64
			ctrl.DB.WithContext(c.Context()).
				Model(&curriculummodel.SubjectCategoryModel{}).
				Where("id = ?", *v).Count(&n)
			if n == 0 {
				return helper.JsonError(c, fiber.StatusBadRequest, "Kategori tidak ditemukan")
			}
			updates["category_id"] = *v
		}
	}
	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&subject).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui mata pelajaran")
		}
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Mata pelajaran diperbarui")
}

// 🗑️ DELETE /api/subjects/:id — modul & nilai ikut terhapus (FK cascade).
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&curriculummodel.SubjectModel{}, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus mata pelajaran")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Mata pelajaran dihapus")
}

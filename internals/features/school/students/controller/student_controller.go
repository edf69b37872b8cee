// internals/features/school/students/controller/student_controller.go
package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	studentDTO "github.com/amdmunif/sood-wsb/internals/features/school/students/dto"
	studentModel "github.com/amdmunif/sood-wsb/internals/features/school/students/model"
	studentService "github.com/amdmunif/sood-wsb/internals/features/school/students/service"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
	helperAuth "github.com/amdmunif/sood-wsb/internals/helpers/auth"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

type studentListRow struct {
	ID                  uint    `json:"id"`
	Name                string  `json:"name"`
	Email               *string `json:"email"`
	NIK                 *string `json:"nik"`
	NIS                 string  `json:"nis"`
	PKBMID              uint    `json:"pkbm_id"`
	PKBMName            *string `json:"pkbm_name"`
	HeadmasterName      *string `json:"headmaster_name"`
	HomeroomTeacherName *string `json:"homeroom_teacher_name"`
}

// GET /api/students[?pkbm_id=]
// LEFT JOIN ke pkbm supaya data murid tetap tampil walau tenant bermasalah.
func (h *StudentController) ListStudents(c *fiber.Ctx) error {
	ac, err := helperAuth.GetAuthContext(c)
	if err != nil {
		return err
	}
	scope := helperAuth.ResolveScope(ac, c.Query("pkbm_id", "all"))

	q := h.DB.Table("students s").
		Select(`s.id, s.name, s.email, s.nik, s.nis, s.pkbm_id,
			p.name AS pkbm_name, p.head_name AS headmaster_name, p.teacher_name AS homeroom_teacher_name`).
		Joins("LEFT JOIN pkbm p ON s.pkbm_id = p.id").
		Order("s.name ASC")

	var rows []studentListRow
	if err := scope.ApplyStudentScope(q, "s.pkbm_id").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data murid. Detail: "+err.Error())
	}
	if rows == nil {
		rows = []studentListRow{}
	}
	return helper.JsonRaw(c, fiber.StatusOK, rows)
}

// POST /api/students
// NIS dibangkitkan di dalam transaksi yang sama dengan insert supaya urutan
// per tenant tidak lompat saat dua create beruntun.
func (h *StudentController) CreateStudent(c *fiber.Ctx) error {
	ac, err := helperAuth.GetAuthContext(c)
	if err != nil {
		return err
	}

	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if req.Name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama wajib diisi.")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// tenant: Super Admin boleh pilih, selain itu dipaksa ke tenant sendiri
	var pkbmID uint
	if ac.IsSuperAdmin() {
		if req.PKBMID != nil {
			pkbmID = *req.PKBMID
		}
	} else if ac.PKBMID != nil {
		pkbmID = *ac.PKBMID
	}
	if pkbmID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID Unit PKBM tidak ditemukan.")
	}

	var nis string
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("pkbm_id = ?", pkbmID).
			Count(&count).Error; err != nil {
			return err
		}
		nis = studentService.FormatNIS(time.Now().Year(), pkbmID, count+1)

		s := studentModel.StudentModel{
			Name:   req.Name,
			Email:  req.Email,
			NIK:    req.NIK,
			NIS:    nis,
			PKBMID: pkbmID,
		}
		return tx.Create(&s).Error
	})
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email atau NIK sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Peserta didik berhasil ditambahkan",
		"nis":     nis,
	})
}

// PUT /api/students
func (h *StudentController) UpdateStudent(c *fiber.Ctx) error {
	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if req.ID == 0 || req.Name == "" || req.Email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data tidak lengkap.")
	}

	// update id yang tidak ada = no-op, bukan 404 (kontrak lama)
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{"name": req.Name, "email": req.Email}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Data peserta didik diperbarui")
}

// DELETE /api/students/:id
// FK cascade ikut menghapus seluruh nilai siswa tsb.
func (h *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}
	if err := h.DB.Delete(&studentModel.StudentModel{}, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Peserta didik dihapus")
}

// POST /api/import_students
// Baris pertama berlabel "nama" dianggap header dan dilewati; baris kurang
// dari 2 kolom atau tanpa nama/email di-skip. Upsert by email, satu
// transaksi untuk seluruh payload.
func (h *StudentController) ImportStudents(c *fiber.Ctx) error {
	ac, err := helperAuth.GetAuthContext(c)
	if err != nil {
		return err
	}

	var req studentDTO.ImportStudentsRequest
	if err := c.BodyParser(&req); err != nil || req.Data == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	count := 0
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		for i, row := range req.Data {
			if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "nama") {
				continue
			}
			if len(row) < 2 {
				continue
			}
			name := strings.TrimSpace(row[0])
			email := strings.TrimSpace(row[1])
			if name == "" || email == "" {
				continue
			}

			var pkbmID uint
			if ac.IsSuperAdmin() {
				if len(row) > 2 {
					if v, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 64); err == nil {
						pkbmID = uint(v)
					}
				}
			} else if ac.PKBMID != nil {
				pkbmID = *ac.PKBMID
			}
			if pkbmID == 0 {
				continue
			}

			var seq int64
			if err := tx.Model(&studentModel.StudentModel{}).
				Where("pkbm_id = ?", pkbmID).
				Count(&seq).Error; err != nil {
				return err
			}
			s := studentModel.StudentModel{
				Name:   name,
				Email:  &email,
				NIS:    studentService.FormatNIS(time.Now().Year(), pkbmID, seq+1),
				PKBMID: pkbmID,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "pkbm_id"}),
			}).Create(&s).Error; err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonMessage(c, fiber.StatusOK, fmt.Sprintf("Berhasil mengimpor %d data peserta dari Excel.", count))
}

// internals/features/school/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeModel "github.com/amdmunif/sood-wsb/internals/features/school/grades/model"
	gradeService "github.com/amdmunif/sood-wsb/internals/features/school/grades/service"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
	helperAuth "github.com/amdmunif/sood-wsb/internals/helpers/auth"
)

type GradeController struct {
	DB *gorm.DB
}

// GET /api/grades?student_id=
// Balasan: {module_id: score} — key hilang berarti belum dinilai.
func (h *GradeController) GetStudentGrades(c *fiber.Ctx) error {
	studentID, err := strconv.ParseUint(c.Query("student_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID Siswa diperlukan")
	}

	var rows []gradeModel.GradeModel
	if err := h.DB.
		Where("student_id = ?", studentID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	grades := make(map[uint]int, len(rows))
	for _, r := range rows {
		grades[r.ModuleID] = r.Score
	}
	return helper.JsonRaw(c, fiber.StatusOK, grades)
}

type saveGradesRequest struct {
	StudentID uint                   `json:"student_id"`
	Grades    map[string]interface{} `json:"grades"`
}

// POST /api/grades
// Body: {student_id, grades: {module_id: score|null}}. Null/"" menghapus,
// bilangan bulat 0–100 meng-upsert, nilai lain di-skip tanpa error — sel
// valid lain di request yang sama tetap ter-commit.
func (h *GradeController) SaveGrades(c *fiber.Ctx) error {
	var req saveGradesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.StudentID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID Siswa diperlukan")
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		store := gradeService.NewGormGradeStore(tx)
		for moduleRaw, scoreRaw := range req.Grades {
			moduleID, err := strconv.ParseUint(moduleRaw, 10, 64)
			if err != nil {
				continue
			}
			switch op, score := gradeService.NormalizeScore(scoreRaw); op {
			case gradeService.OpDelete:
				if err := store.Delete(req.StudentID, uint(moduleID)); err != nil {
					return err
				}
			case gradeService.OpUpsert:
				if err := store.Upsert(req.StudentID, uint(moduleID), score); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Nilai berhasil disimpan")
}

// POST /api/import_grades (multipart, field "importFile")
// Seluruh file diproses dalam SATU transaksi: error struktural maupun error
// baris membatalkan semuanya, tidak ada commit parsial.
func (h *GradeController) ImportGrades(c *fiber.Ctx) error {
	fh, err := c.FormFile("importFile")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal mengunggah file atau file tidak ditemukan")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal mengunggah file atau file tidak ditemukan")
	}
	defer f.Close()

	var res gradeService.ImportResult
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		res, txErr = gradeService.ImportGrades(f, gradeService.NewGormGradeStore(tx))
		return txErr
	})
	if err != nil {
		var ie *gradeService.ImportError
		if errors.As(err, &ie) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses file: "+ie.Msg)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses file: "+err.Error())
	}

	return c.JSON(fiber.Map{
		"message":       res.Message(),
		"success_count": res.SuccessCount,
	})
}

// GET /api/export_grades?pkbm_id=
// CSV matriks: sel kosong ditulis 0 (kontrak export lama).
func (h *GradeController) ExportGrades(c *fiber.Ctx) error {
	ac, err := helperAuth.GetAuthContext(c)
	if err != nil {
		return err
	}
	scope := helperAuth.ResolveScope(ac, c.Query("pkbm_id", "all"))

	matrix, err := gradeService.LoadMatrix(h.DB, scope)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=matriks_nilai_sood.csv`)
	if err := gradeService.WriteCSV(c, gradeService.FlattenCSV(matrix)); err != nil {
		return err
	}
	return nil
}

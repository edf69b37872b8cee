// internals/features/school/grades/controller/report_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeService "github.com/amdmunif/sood-wsb/internals/features/school/grades/service"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
	helperAuth "github.com/amdmunif/sood-wsb/internals/helpers/auth"
)

type ReportController struct {
	DB *gorm.DB
}

// GET /api/reports?type=pkbm|student|subject|matrix[&pkbm_id=]
// Semua rollup memakai COALESCE(AVG(...), 0): tenant/siswa/mapel tanpa nilai
// menghasilkan rata-rata 0, bukan null.
func (h *ReportController) GetReport(c *fiber.Ctx) error {
	ac, err := helperAuth.GetAuthContext(c)
	if err != nil {
		return err
	}

	switch c.Query("type") {
	case "pkbm":
		return h.pkbmReport(c, ac)
	case "student":
		return h.studentReport(c, ac)
	case "subject":
		return h.subjectReport(c, ac)
	case "matrix":
		return h.matrixReport(c, ac)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipe laporan tidak valid")
	}
}

type pkbmReportRow struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	StudentCount int64   `json:"student_count"`
	AverageScore float64 `json:"average_score"`
}

func (h *ReportController) pkbmReport(c *fiber.Ctx, ac helperAuth.AuthContext) error {
	if !ac.IsSuperAdmin() {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	var rows []pkbmReportRow
	if err := h.DB.Raw(`
		SELECT p.id, p.name,
		       (SELECT COUNT(*) FROM students WHERE pkbm_id = p.id) AS student_count,
		       COALESCE((SELECT AVG(g.score) FROM grades g JOIN students s ON g.student_id = s.id WHERE s.pkbm_id = p.id), 0) AS average_score
		FROM pkbm p
		ORDER BY average_score DESC`).Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if rows == nil {
		rows = []pkbmReportRow{}
	}
	return helper.JsonRaw(c, fiber.StatusOK, rows)
}

type studentReportRow struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	PKBMName         string  `json:"pkbm_name"`
	ModulesCompleted int64   `json:"modules_completed"`
	AverageScore     float64 `json:"average_score"`
}

func (h *ReportController) studentReport(c *fiber.Ctx, ac helperAuth.AuthContext) error {
	scope := helperAuth.ResolveScope(ac, c.Query("pkbm_id", "all"))

	q := h.DB.Table("students s").
		Select(`s.id, s.name, p.name AS pkbm_name,
			(SELECT COUNT(*) FROM grades WHERE student_id = s.id) AS modules_completed,
			COALESCE((SELECT AVG(score) FROM grades WHERE student_id = s.id), 0) AS average_score`).
		Joins("JOIN pkbm p ON s.pkbm_id = p.id").
		Order("average_score DESC")

	var rows []studentReportRow
	if err := scope.ApplyStudentScope(q, "s.pkbm_id").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if rows == nil {
		rows = []studentReportRow{}
	}
	return helper.JsonRaw(c, fiber.StatusOK, rows)
}

type subjectReportRow struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	AverageScore float64 `json:"average_score"`
}

func (h *ReportController) subjectReport(c *fiber.Ctx, ac helperAuth.AuthContext) error {
	scope := helperAuth.ResolveScope(ac, c.Query("pkbm_id", "all"))

	// dua varian query tetap: global vs satu tenant — tidak ada penyambungan
	// string dari input caller
	var (
		rows []subjectReportRow
		err  error
	)
	if scope.All {
		err = h.DB.Raw(`
			SELECT sub.id, sub.name,
			       COALESCE((SELECT AVG(g.score)
			                 FROM grades g
			                 JOIN modules m ON g.module_id = m.id
			                 WHERE m.subject_id = sub.id), 0) AS average_score
			FROM subjects sub
			ORDER BY sub.name ASC`).Scan(&rows).Error
	} else {
		err = h.DB.Raw(`
			SELECT sub.id, sub.name,
			       COALESCE((SELECT AVG(g.score)
			                 FROM grades g
			                 JOIN modules m ON g.module_id = m.id
			                 JOIN students s ON g.student_id = s.id
			                 WHERE m.subject_id = sub.id AND s.pkbm_id = ?), 0) AS average_score
			FROM subjects sub
			ORDER BY sub.name ASC`, scope.PKBMID).Scan(&rows).Error
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if rows == nil {
		rows = []subjectReportRow{}
	}
	return helper.JsonRaw(c, fiber.StatusOK, rows)
}

func (h *ReportController) matrixReport(c *fiber.Ctx, ac helperAuth.AuthContext) error {
	scope := helperAuth.ResolveScope(ac, c.Query("pkbm_id", "all"))

	matrix, err := gradeService.LoadMatrix(h.DB, scope)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonRaw(c, fiber.StatusOK, matrix)
}

// internals/features/home/dashboard/controller/dashboard_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementmodel "github.com/amdmunif/sood-wsb/internals/features/home/announcements/model"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
	helperAuth "github.com/amdmunif/sood-wsb/internals/helpers/auth"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type pkbmPerformance struct {
	PKBMID       uint    `gorm:"column:pkbm_id" json:"pkbm_id"`
	PKBMName     string  `gorm:"column:pkbm_name" json:"pkbm_name"`
	StudentCount int     `gorm:"column:student_count" json:"student_count"`
	AverageScore float64 `gorm:"column:average_score" json:"average_score"`
}

// 📊 GET /api/dashboard_stats — isi kartu dashboard, dibentuk per role:
// Super Admin melihat angka lintas tenant + top-5 unit, selain itu
// angka unit sendiri saja.
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	ac, err := helperAuth.GetAuthContext(c)
	if err != nil {
		return err
	}
	scope := helperAuth.ResolveScope(ac, c.Query("pkbm_id"))
	db := ctrl.DB.WithContext(c.Context())

	var totalStudents int64
	sq := db.Table("students s")
	if err := scope.ApplyStudentScope(sq, "s.pkbm_id").Count(&totalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat statistik")
	}

	var avgGrade *float64
	gq := db.Table("grades g").
		Select("AVG(g.score)").
		Joins("JOIN students s ON g.student_id = s.id")
	if err := scope.ApplyStudentScope(gq, "s.pkbm_id").Scan(&avgGrade).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat statistik")
	}

	var recent []announcementmodel.AnnouncementModel
	if err := db.Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat statistik")
	}

	stats := fiber.Map{
		"total_students":       totalStudents,
		"average_grade":        roundedAvg(avgGrade),
		"recent_announcements": recent,
	}

	if ac.IsSuperAdmin() {
		var totalPKBM, totalUsers, totalSubjects, totalModules int64
		db.Table("pkbm").Count(&totalPKBM)
		db.Table("users").Count(&totalUsers)
		db.Table("subjects").Count(&totalSubjects)
		db.Table("modules").Count(&totalModules)

		var top []pkbmPerformance
		if err := db.Table("pkbm p").
			Select("p.id AS pkbm_id, p.name AS pkbm_name, COUNT(DISTINCT s.id) AS student_count, COALESCE(AVG(g.score), 0) AS average_score").
			Joins("LEFT JOIN students s ON s.pkbm_id = p.id").
			Joins("LEFT JOIN grades g ON g.student_id = s.id").
			Group("p.id, p.name").
			Order("average_score DESC").
			Limit(5).
			Scan(&top).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat statistik")
		}
		if top == nil {
			top = []pkbmPerformance{}
		}

		stats["total_pkbm"] = totalPKBM
		stats["total_users"] = totalUsers
		stats["total_subjects"] = totalSubjects
		stats["total_modules"] = totalModules
		stats["pkbm_performance"] = top
	}

	return helper.JsonRaw(c, fiber.StatusOK, stats)
}

func roundedAvg(v *float64) float64 {
	if v == nil {
		return 0
	}
	// satu angka di belakang koma, cukup untuk kartu dashboard
	return float64(int(*v*10+0.5)) / 10
}

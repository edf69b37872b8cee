package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amdmunif/sood-wsb/internals/constants"
	pkbmModel "github.com/amdmunif/sood-wsb/internals/features/lembaga/pkbm/model"
	curriculumModel "github.com/amdmunif/sood-wsb/internals/features/school/curriculum/model"
	gradeModel "github.com/amdmunif/sood-wsb/internals/features/school/grades/model"
	studentModel "github.com/amdmunif/sood-wsb/internals/features/school/students/model"
	helperAuth "github.com/amdmunif/sood-wsb/internals/helpers/auth"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("ambil *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&pkbmModel.PKBMModel{},
		&studentModel.StudentModel{},
		&curriculumModel.SubjectCategoryModel{},
		&curriculumModel.SubjectModel{},
		&curriculumModel.ModuleModel{},
		&gradeModel.GradeModel{},
	); err != nil {
		t.Fatalf("migrasi: %v", err)
	}
	return db
}

// newReportApp memasang GetReport di balik konteks Super Admin, seperti
// yang dilakukan middleware auth di route sebenarnya.
func newReportApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	h := &ReportController{DB: db}
	app.Get("/reports", func(c *fiber.Ctx) error {
		helperAuth.SetAuthContext(c, helperAuth.AuthContext{
			UserID: 1,
			Name:   "Super",
			Role:   constants.RoleSuperAdmin,
		})
		return h.GetReport(c)
	})
	return app
}

func TestPkbmReportTenantTanpaNilai(t *testing.T) {
	db := newTestDB(t)

	terisi := pkbmModel.PKBMModel{Name: "PKBM Terisi"}
	kosong := pkbmModel.PKBMModel{Name: "PKBM Kosong"}
	if err := db.Create(&terisi).Error; err != nil {
		t.Fatalf("seed pkbm: %v", err)
	}
	if err := db.Create(&kosong).Error; err != nil {
		t.Fatalf("seed pkbm: %v", err)
	}
	student := studentDengan(t, db, terisi.ID)
	moduleID := modulDengan(t, db, "Matematika")
	if err := db.Create(&gradeModel.GradeModel{StudentID: student, ModuleID: moduleID, Score: 75}).Error; err != nil {
		t.Fatalf("seed nilai: %v", err)
	}

	resp, err := newReportApp(db).Test(httptest.NewRequest("GET", "/reports?type=pkbm", nil))
	if err != nil {
		t.Fatalf("app.Test() err = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var rows []struct {
		Name         string  `json:"name"`
		StudentCount int64   `json:"student_count"`
		AverageScore float64 `json:"average_score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("jumlah baris = %d, want 2", len(rows))
	}
	// urutan DESC berdasarkan rata-rata: yang terisi dulu
	if rows[0].Name != "PKBM Terisi" || rows[0].AverageScore != 75 {
		t.Errorf("baris pertama = %+v, want PKBM Terisi dengan rata-rata 75", rows[0])
	}
	if rows[1].Name != "PKBM Kosong" {
		t.Fatalf("baris kedua = %+v, want PKBM Kosong", rows[1])
	}
	if rows[1].StudentCount != 0 {
		t.Errorf("student_count tenant kosong = %d, want 0", rows[1].StudentCount)
	}
	if rows[1].AverageScore != 0 {
		t.Errorf("average_score tenant kosong = %v, want 0 (bukan null)", rows[1].AverageScore)
	}
}

func TestSubjectReportMapelTanpaNilai(t *testing.T) {
	db := newTestDB(t)

	pkbm := pkbmModel.PKBMModel{Name: "PKBM Harapan"}
	if err := db.Create(&pkbm).Error; err != nil {
		t.Fatalf("seed pkbm: %v", err)
	}
	student := studentDengan(t, db, pkbm.ID)
	dinilai := modulDengan(t, db, "Bahasa Indonesia")
	modulDengan(t, db, "Tanpa Nilai")
	if err := db.Create(&gradeModel.GradeModel{StudentID: student, ModuleID: dinilai, Score: 80}).Error; err != nil {
		t.Fatalf("seed nilai: %v", err)
	}

	resp, err := newReportApp(db).Test(httptest.NewRequest("GET", "/reports?type=subject", nil))
	if err != nil {
		t.Fatalf("app.Test() err = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var rows []struct {
		Name         string  `json:"name"`
		AverageScore float64 `json:"average_score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := map[string]float64{}
	for _, r := range rows {
		got[r.Name] = r.AverageScore
	}
	if got["Bahasa Indonesia"] != 80 {
		t.Errorf("rata-rata Bahasa Indonesia = %v, want 80", got["Bahasa Indonesia"])
	}
	if avg, ok := got["Tanpa Nilai"]; !ok || avg != 0 {
		t.Errorf("rata-rata mapel tanpa nilai = %v (ada=%v), want 0", avg, ok)
	}
}

// studentDengan menanam satu siswa untuk tenant pkbmID dan mengembalikan ID-nya.
func studentDengan(t *testing.T, db *gorm.DB, pkbmID uint) uint {
	t.Helper()
	s := studentModel.StudentModel{Name: "Budi", NIS: "2601001", PKBMID: pkbmID}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed siswa: %v", err)
	}
	return s.ID
}

// modulDengan menanam satu mapel bernama name berikut satu modulnya,
// mengembalikan ID modul.
func modulDengan(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	sub := curriculumModel.SubjectModel{Name: name}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("seed mapel: %v", err)
	}
	m := curriculumModel.ModuleModel{SubjectID: sub.ID, Name: name + " Modul 1"}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed modul: %v", err)
	}
	return m.ID
}

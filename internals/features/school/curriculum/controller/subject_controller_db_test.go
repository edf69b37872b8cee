package controller

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	pkbmmodel "github.com/amdmunif/sood-wsb/internals/features/lembaga/pkbm/model"
	curriculummodel "github.com/amdmunif/sood-wsb/internals/features/school/curriculum/model"
	grademodel "github.com/amdmunif/sood-wsb/internals/features/school/grades/model"
	studentmodel "github.com/amdmunif/sood-wsb/internals/features/school/students/model"
)

// newTestDB membuka SQLite in-memory dengan FK aktif, skema sama seperti
// migrasi produksi. Satu koneksi saja supaya :memory: tidak terpecah.
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
		&pkbmmodel.PKBMModel{},
		&studentmodel.StudentModel{},
		&curriculummodel.SubjectCategoryModel{},
		&curriculummodel.SubjectModel{},
		&curriculummodel.ModuleModel{},
		&grademodel.GradeModel{},
	); err != nil {
		t.Fatalf("migrasi: %v", err)
	}
	return db
}

func TestDeleteSubjectMenghapusModulDanNilai(t *testing.T) {
	db := newTestDB(t)

	pkbm := pkbmmodel.PKBMModel{Name: "PKBM Harapan"}
	if err := db.Create(&pkbm).Error; err != nil {
		t.Fatalf("seed pkbm: %v", err)
	}
	student := studentmodel.StudentModel{Name: "Siti", NIS: "2601001", PKBMID: pkbm.ID}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed siswa: %v", err)
	}
	subject := curriculummodel.SubjectModel{Name: "Matematika"}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed mapel: %v", err)
	}
	modules := []curriculummodel.ModuleModel{
		{SubjectID: subject.ID, Name: "Modul 1"},
		{SubjectID: subject.ID, Name: "Modul 2"},
	}
	if err := db.Create(&modules).Error; err != nil {
		t.Fatalf("seed modul: %v", err)
	}
	grades := []grademodel.GradeModel{
		{StudentID: student.ID, ModuleID: modules[0].ID, Score: 80},
		{StudentID: student.ID, ModuleID: modules[1].ID, Score: 90},
	}
	if err := db.Create(&grades).Error; err != nil {
		t.Fatalf("seed nilai: %v", err)
	}

	app := fiber.New()
	ctrl := NewSubjectController(db)
	app.Delete("/subjects/:id", ctrl.DeleteSubject)

	resp, err := app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/subjects/%d", subject.ID), nil))
	if err != nil {
		t.Fatalf("app.Test() err = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var moduleCount, gradeCount int64
	db.Model(&curriculummodel.ModuleModel{}).Where("subject_id = ?", subject.ID).Count(&moduleCount)
	db.Model(&grademodel.GradeModel{}).Count(&gradeCount)
	if moduleCount != 0 {
		t.Errorf("masih ada %d modul setelah mapel dihapus", moduleCount)
	}
	if gradeCount != 0 {
		t.Errorf("masih ada %d nilai setelah mapel dihapus", gradeCount)
	}

	// siswa tidak boleh ikut terhapus
	var studentCount int64
	db.Model(&studentmodel.StudentModel{}).Count(&studentCount)
	if studentCount != 1 {
		t.Errorf("jumlah siswa = %d, want 1", studentCount)
	}
}

func TestDeleteCategoryMelepasMapel(t *testing.T) {
	db := newTestDB(t)

	category := curriculummodel.SubjectCategoryModel{Name: "Umum"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed kategori: %v", err)
	}
	subject := curriculummodel.SubjectModel{Name: "IPA", CategoryID: &category.ID}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed mapel: %v", err)
	}

	app := fiber.New()
	ctrl := NewCategoryController(db)
	app.Delete("/subject_categories/:id", ctrl.DeleteCategory)

	resp, err := app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/subject_categories/%d", category.ID), nil))
	if err != nil {
		t.Fatalf("app.Test() err = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var got curriculummodel.SubjectModel
	if err := db.First(&got, subject.ID).Error; err != nil {
		t.Fatalf("mapel ikut terhapus: %v", err)
	}
	if got.CategoryID != nil {
		t.Errorf("category_id = %d, want NULL", *got.CategoryID)
	}
}

// internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/amdmunif/sood-wsb/internals/constants"
	curriculumcontroller "github.com/amdmunif/sood-wsb/internals/features/school/curriculum/controller"
	gradecontroller "github.com/amdmunif/sood-wsb/internals/features/school/grades/controller"
	studentcontroller "github.com/amdmunif/sood-wsb/internals/features/school/students/controller"
	authMiddleware "github.com/amdmunif/sood-wsb/internals/middlewares/auth"
)

// SchoolRoutes: data akademik — siswa, kurikulum, nilai, laporan, export.
// Semua butuh sesi; mutasi kurikulum khusus Super Admin. Pembatasan tenant
// TIDAK di sini, tapi lewat ResolveScope di dalam handler.
func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	authed := api.Group("", authMiddleware.AuthMiddleware())
	superOnly := authMiddleware.RequireRoles(constants.RoleSuperAdmin)

	// ---------- siswa ----------
	students := studentcontroller.NewStudentController(db)
	authed.Get("/students", students.ListStudents)
	authed.Post("/students", students.CreateStudent)
	authed.Put("/students", students.UpdateStudent)
	authed.Delete("/students/:id", students.DeleteStudent)
	authed.Post("/import_students", students.ImportStudents)

	// ---------- kurikulum (global, mutasi khusus Super Admin) ----------
	subjects := curriculumcontroller.NewSubjectController(db)
	authed.Get("/subjects", subjects.ListSubjects)
	authed.Post("/subjects", superOnly, subjects.CreateSubject)
	authed.Put("/subjects", superOnly, subjects.UpdateSubject)
	authed.Delete("/subjects/:id", superOnly, subjects.DeleteSubject)

	modules := curriculumcontroller.NewModuleController(db)
	authed.Post("/modules", superOnly, modules.CreateModule)
	authed.Delete("/modules/:id", superOnly, modules.DeleteModule)

	categories := curriculumcontroller.NewCategoryController(db)
	authed.Get("/subject_categories", categories.ListCategories)
	authed.Post("/subject_categories", superOnly, categories.CreateCategory)
	authed.Put("/subject_categories", superOnly, categories.UpdateCategory)
	authed.Delete("/subject_categories/:id", superOnly, categories.DeleteCategory)

	// ---------- nilai & laporan ----------
	grades := &gradecontroller.GradeController{DB: db}
	authed.Get("/grades", grades.GetStudentGrades)
	authed.Post("/grades", grades.SaveGrades)
	authed.Post("/import_grades", grades.ImportGrades)
	authed.Get("/export_grades", grades.ExportGrades)

	reports := &gradecontroller.ReportController{DB: db}
	authed.Get("/reports", reports.GetReport)
}

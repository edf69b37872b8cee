// internals/features/school/grades/service/matrix.go
package service

import (
	"sort"

	"gorm.io/gorm"

	helperAuth "github.com/amdmunif/sood-wsb/internals/helpers/auth"
)

// Urutan kanonik kolom matriks: kategori (sort_order) → mapel (sort_order)
// → mapel (id) → modul (id). Mapel tanpa kategori diurutkan paling akhir.
const uncategorizedSortOrder = 9999

type ModuleCol struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SubjectBlock struct {
	ID                uint        `json:"id"`
	Name              string      `json:"name"`
	SortOrder         int         `json:"sort_order"`
	CategoryID        *uint       `json:"category_id"`
	CategoryName      *string     `json:"category_name"`
	CategorySortOrder int         `json:"category_sort_order"`
	Modules           []ModuleCol `json:"modules"`
}

type StudentRow struct {
	ID     uint         `json:"id"`
	Name   string       `json:"name"`
	PKBM   string       `json:"pkbm"`
	Grades map[uint]int `json:"grades"`
}

type GradeCell struct {
	StudentID uint `gorm:"column:student_id"`
	ModuleID  uint `gorm:"column:module_id"`
	Score     int  `gorm:"column:score"`
}

// Matrix = grid siswa × modul untuk layar review dan export CSV.
type Matrix struct {
	Subjects []SubjectBlock `json:"subjects"`
	Matrix   []StudentRow   `json:"matrix"`
}

// SortSubjects menegakkan urutan kanonik di satu tempat (bukan di SQL,
// karena perilaku NULL ordering beda antara MySQL dan Postgres).
func SortSubjects(subjects []SubjectBlock) {
	sort.SliceStable(subjects, func(i, j int) bool {
		a, b := subjects[i], subjects[j]
		ca, cb := a.CategorySortOrder, b.CategorySortOrder
		if a.CategoryID == nil {
			ca = uncategorizedSortOrder
		}
		if b.CategoryID == nil {
			cb = uncategorizedSortOrder
		}
		if ca != cb {
			return ca < cb
		}
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.ID < b.ID
	})
	for i := range subjects {
		sort.Slice(subjects[i].Modules, func(a, b int) bool {
			return subjects[i].Modules[a].ID < subjects[i].Modules[b].ID
		})
	}
}

// AssembleMatrix mengisi peta nilai per siswa dari daftar nilai mentah.
// Siswa tanpa nilai tetap mendapat map kosong, tidak pernah nil.
func AssembleMatrix(subjects []SubjectBlock, students []StudentRow, grades []GradeCell) Matrix {
	byStudent := make(map[uint]map[uint]int, len(students))
	for i := range students {
		students[i].Grades = make(map[uint]int)
		byStudent[students[i].ID] = students[i].Grades
	}
	for _, g := range grades {
		if m, ok := byStudent[g.StudentID]; ok {
			m[g.ModuleID] = g.Score
		}
	}
	if students == nil {
		students = []StudentRow{}
	}
	return Matrix{Subjects: subjects, Matrix: students}
}

// LoadMatrix membaca kurikulum global + siswa & nilai dalam scope, lalu
// merakit matriks. Scope SUDAH harus hasil ResolveScope.
func LoadMatrix(db *gorm.DB, scope helperAuth.Scope) (Matrix, error) {
	subjects, err := LoadSubjectTree(db)
	if err != nil {
		return Matrix{}, err
	}

	var students []StudentRow
	q := db.Table("students s").
		Select("s.id, s.name, p.name AS pkbm").
		Joins("JOIN pkbm p ON s.pkbm_id = p.id").
		Order("s.name ASC")
	if err := scope.ApplyStudentScope(q, "s.pkbm_id").Scan(&students).Error; err != nil {
		return Matrix{}, err
	}

	var grades []GradeCell
	gq := db.Table("grades g").
		Select("g.student_id, g.module_id, g.score").
		Joins("JOIN students s ON g.student_id = s.id")
	if err := scope.ApplyStudentScope(gq, "s.pkbm_id").Scan(&grades).Error; err != nil {
		return Matrix{}, err
	}

	return AssembleMatrix(subjects, students, grades), nil
}

// LoadSubjectTree mengambil mapel + modul global (kurikulum tidak per
// tenant) dalam dua query, modul dikelompokkan di memori.
func LoadSubjectTree(db *gorm.DB) ([]SubjectBlock, error) {
	var subjects []SubjectBlock
	if err := db.Table("subjects s").
		Select("s.id, s.name, s.sort_order, s.category_id, c.name AS category_name, COALESCE(c.sort_order, ?) AS category_sort_order", uncategorizedSortOrder).
		Joins("LEFT JOIN subject_categories c ON s.category_id = c.id").
		Scan(&subjects).Error; err != nil {
		return nil, err
	}

	var modules []struct {
		ID        uint   `gorm:"column:id"`
		SubjectID uint   `gorm:"column:subject_id"`
		Name      string `gorm:"column:name"`
	}
	if err := db.Table("modules").
		Select("id, subject_id, name").
		Order("id ASC").
		Scan(&modules).Error; err != nil {
		return nil, err
	}

	bySubject := make(map[uint][]ModuleCol, len(subjects))
	for _, m := range modules {
		bySubject[m.SubjectID] = append(bySubject[m.SubjectID], ModuleCol{ID: m.ID, Name: m.Name})
	}
	for i := range subjects {
		mods := bySubject[subjects[i].ID]
		if mods == nil {
			mods = []ModuleCol{}
		}
		subjects[i].Modules = mods
	}

	SortSubjects(subjects)
	if subjects == nil {
		subjects = []SubjectBlock{}
	}
	return subjects, nil
}

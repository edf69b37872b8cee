package model

import (
	curriculumModel "github.com/amdmunif/sood-wsb/internals/features/school/curriculum/model"
	studentModel "github.com/amdmunif/sood-wsb/internals/features/school/students/model"
)

// GradeModel = satu nilai untuk pasangan (siswa, modul), unik per pasangan.
// Tidak ada baris untuk nilai kosong: absennya baris berarti "belum dinilai",
// bukan nol.
type GradeModel struct {
	ID        uint `gorm:"column:id;primaryKey" json:"id"`
	StudentID uint `gorm:"column:student_id;not null;uniqueIndex:uq_grades_student_module" json:"student_id"`
	ModuleID  uint `gorm:"column:module_id;not null;uniqueIndex:uq_grades_student_module" json:"module_id"`
	Score     int  `gorm:"column:score;not null" json:"score"`

	Student *studentModel.StudentModel   `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Module  *curriculumModel.ModuleModel `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"-"`
}

func (GradeModel) TableName() string { return "grades" }

package service

import (
	"reflect"
	"testing"
)

func uintPtr(v uint) *uint { return &v }

func TestSortSubjects(t *testing.T) {
	subjects := []SubjectBlock{
		{ID: 9, Name: "Tanpa Kategori", SortOrder: 0},
		{ID: 3, Name: "IPA", SortOrder: 2, CategoryID: uintPtr(1), CategorySortOrder: 1},
		{ID: 5, Name: "IPS", SortOrder: 1, CategoryID: uintPtr(2), CategorySortOrder: 2},
		{ID: 1, Name: "Matematika", SortOrder: 1, CategoryID: uintPtr(1), CategorySortOrder: 1},
		{ID: 2, Name: "Bahasa", SortOrder: 1, CategoryID: uintPtr(1), CategorySortOrder: 1,
			Modules: []ModuleCol{{ID: 7, Name: "Modul 2"}, {ID: 4, Name: "Modul 1"}}},
	}
	SortSubjects(subjects)

	var gotIDs []uint
	for _, s := range subjects {
		gotIDs = append(gotIDs, s.ID)
	}
	// kategori 1 (mapel sort 1: id 1,2 → sort 2: id 3), kategori 2, tanpa kategori terakhir
	want := []uint{1, 2, 3, 5, 9}
	if !reflect.DeepEqual(gotIDs, want) {
		t.Errorf("urutan mapel = %v, want %v", gotIDs, want)
	}

	// modul selalu ascending by id
	mods := subjects[1].Modules
	if mods[0].ID != 4 || mods[1].ID != 7 {
		t.Errorf("urutan modul = %v, want id 4 lalu 7", mods)
	}
}

func TestAssembleMatrix(t *testing.T) {
	subjects := []SubjectBlock{{ID: 1, Name: "Matematika", Modules: []ModuleCol{{ID: 5, Name: "Aljabar"}}}}
	students := []StudentRow{
		{ID: 101, Name: "Andi", PKBM: "PKBM A"},
		{ID: 102, Name: "Budi", PKBM: "PKBM A"},
	}
	grades := []GradeCell{
		{StudentID: 101, ModuleID: 5, Score: 80},
		{StudentID: 999, ModuleID: 5, Score: 10}, // siswa di luar scope → diabaikan
	}

	m := AssembleMatrix(subjects, students, grades)

	if len(m.Matrix) != 2 {
		t.Fatalf("jumlah baris = %d, want 2", len(m.Matrix))
	}
	if got := m.Matrix[0].Grades[5]; got != 80 {
		t.Errorf("grades Andi[5] = %d, want 80", got)
	}
	// siswa tanpa nilai: map kosong, bukan nil
	if m.Matrix[1].Grades == nil {
		t.Fatal("grades Budi nil, want map kosong")
	}
	if len(m.Matrix[1].Grades) != 0 {
		t.Errorf("grades Budi = %v, want kosong", m.Matrix[1].Grades)
	}
}

func TestAssembleMatrix_NoStudents(t *testing.T) {
	m := AssembleMatrix([]SubjectBlock{}, nil, nil)
	if m.Matrix == nil {
		t.Error("matrix nil, want slice kosong")
	}
	if m.Subjects == nil {
		t.Error("subjects nil, want slice kosong")
	}
}

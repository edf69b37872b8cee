package service

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestFlattenCSV(t *testing.T) {
	m := Matrix{
		Subjects: []SubjectBlock{
			{ID: 1, Name: "Matematika", Modules: []ModuleCol{{ID: 5, Name: "Aljabar"}, {ID: 6, Name: "Geometri"}}},
			{ID: 2, Name: "IPA", Modules: []ModuleCol{{ID: 9, Name: "Fisika"}}},
		},
		Matrix: []StudentRow{
			{ID: 101, Name: "Andi", PKBM: "PKBM A", Grades: map[uint]int{5: 80}},
			{ID: 102, Name: "Budi", PKBM: "PKBM B", Grades: map[uint]int{}},
		},
	}

	rows := FlattenCSV(m)

	wantHeader := []string{"Nama Siswa", "PKBM", "Matematika - Aljabar", "Matematika - Geometri", "IPA - Fisika"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}
	// sel tanpa nilai ditulis 0 (beda dengan JSON yang menghilangkan key)
	wantAndi := []string{"Andi", "PKBM A", "80", "0", "0"}
	if !reflect.DeepEqual(rows[1], wantAndi) {
		t.Errorf("baris Andi = %v, want %v", rows[1], wantAndi)
	}
	wantBudi := []string{"Budi", "PKBM B", "0", "0", "0"}
	if !reflect.DeepEqual(rows[2], wantBudi) {
		t.Errorf("baris Budi = %v, want %v", rows[2], wantBudi)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]string{{"Nama Siswa", "PKBM"}, {"Andi", "PKBM A"}}
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV() err = %v", err)
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if got[0] != "Nama Siswa,PKBM" || got[1] != "Andi,PKBM A" {
		t.Errorf("output = %q", buf.String())
	}
}

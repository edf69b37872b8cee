package service

import (
	"errors"
	"strings"
	"testing"
)

// memStore = GradeStore in-memory untuk menguji rekonsiliasi tanpa DB.
type memStore struct {
	grades  map[[2]uint]int
	deletes [][2]uint
	failOn  *[2]uint
}

func newMemStore() *memStore {
	return &memStore{grades: make(map[[2]uint]int)}
}

func (s *memStore) Upsert(studentID, moduleID uint, score int) error {
	key := [2]uint{studentID, moduleID}
	if s.failOn != nil && *s.failOn == key {
		return errors.New("store error")
	}
	s.grades[key] = score
	return nil
}

func (s *memStore) Delete(studentID, moduleID uint) error {
	key := [2]uint{studentID, moduleID}
	delete(s.grades, key)
	s.deletes = append(s.deletes, key)
	return nil
}

func TestDetectDelimiter(t *testing.T) {
	if got := DetectDelimiter("Nama;Matematika (ID:5)"); got != ';' {
		t.Errorf("DetectDelimiter dengan titik koma = %q, want ';'", got)
	}
	if got := DetectDelimiter("Nama,Matematika (ID:5)"); got != ',' {
		t.Errorf("DetectDelimiter dengan koma = %q, want ','", got)
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		cells   []string
		want    map[int]uint
		wantErr bool
	}{
		{
			name:  "header campur label dan modul",
			cells: []string{"Nama", "Matematika (ID:5)", "IPA (ID:9)"},
			want:  map[int]uint{1: 5, 2: 9},
		},
		{
			name:  "BOM di sel pertama dibuang",
			cells: []string{"\uFEFFBahasa (ID:3)"},
			want:  map[int]uint{0: 3},
		},
		{
			// export yang di-save ulang bisa menumpuk lebih dari satu BOM
			name:  "BOM bertumpuk tetap dibuang semua",
			cells: []string{"\uFEFF\uFEFF\uFEFFBahasa (ID:3)"},
			want:  map[int]uint{0: 3},
		},
		{
			name:    "tanpa pola ID sama sekali",
			cells:   []string{"Nama", "Matematika", "IPA"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeader(tt.cells)
			if tt.wantErr {
				var ie *ImportError
				if !errors.As(err, &ie) {
					t.Fatalf("ParseHeader() err = %v, want *ImportError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHeader() err = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseHeader() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("mapping[%d] = %d, want %d", k, got[k], v)
				}
			}
			if strings.ContainsRune(tt.cells[0], '\uFEFF') {
				t.Errorf("sel pertama masih mengandung BOM: %q", tt.cells[0])
			}
		})
	}
}

func TestPlanCell(t *testing.T) {
	tests := []struct {
		raw       string
		wantOp    CellOp
		wantScore int
	}{
		{raw: "", wantOp: OpDelete},
		{raw: "  ", wantOp: OpDelete},
		{raw: "0", wantOp: OpUpsert, wantScore: 0},
		{raw: "100", wantOp: OpUpsert, wantScore: 100},
		{raw: " 80 ", wantOp: OpUpsert, wantScore: 80},
		{raw: "101", wantOp: OpSkip},
		{raw: "-5", wantOp: OpSkip},
		{raw: "80.5", wantOp: OpSkip},
		{raw: "ubah-ke-kosong", wantOp: OpSkip},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			op, score := PlanCell(tt.raw)
			if op != tt.wantOp || score != tt.wantScore {
				t.Errorf("PlanCell(%q) = (%v, %d), want (%v, %d)", tt.raw, op, score, tt.wantOp, tt.wantScore)
			}
		})
	}
}

func TestImportGrades_Scenario(t *testing.T) {
	// skenario acuan: sel valid di-upsert, sel non-angka di-skip tapi TIDAK
	// menghapus — hanya sel kosong yang menghapus
	csv := "Nama,Matematika (ID:5),IPA (ID:9)\n101,80,ubah-ke-kosong\n"
	store := newMemStore()
	store.grades[[2]uint{101, 9}] = 70 // nilai lama

	res, err := ImportGrades(strings.NewReader(csv), store)
	if err != nil {
		t.Fatalf("ImportGrades() err = %v", err)
	}
	if res.SuccessCount != 1 {
		t.Errorf("SuccessCount = %d, want 1", res.SuccessCount)
	}
	if res.RowCount != 1 {
		t.Errorf("RowCount = %d, want 1", res.RowCount)
	}
	if got := store.grades[[2]uint{101, 5}]; got != 80 {
		t.Errorf("grade(101,5) = %d, want 80", got)
	}
	// "ubah-ke-kosong" bukan angka → di-skip, nilai lama tetap
	if got, ok := store.grades[[2]uint{101, 9}]; !ok || got != 70 {
		t.Errorf("grade(101,9) = %d (ok=%v), want tetap 70", got, ok)
	}
}

func TestImportGrades_EmptyCellDeletes(t *testing.T) {
	csv := "Nama,Matematika (ID:5),IPA (ID:9)\n101,80,\n"
	store := newMemStore()
	store.grades[[2]uint{101, 9}] = 70

	res, err := ImportGrades(strings.NewReader(csv), store)
	if err != nil {
		t.Fatalf("ImportGrades() err = %v", err)
	}
	if _, ok := store.grades[[2]uint{101, 9}]; ok {
		t.Error("grade(101,9) masih ada, harusnya terhapus oleh sel kosong")
	}
	if res.SuccessCount != 1 {
		t.Errorf("SuccessCount = %d, want 1 (delete tidak dihitung)", res.SuccessCount)
	}
}

func TestImportGrades_SemicolonEqualsComma(t *testing.T) {
	comma := "Nama,Matematika (ID:5),IPA (ID:9)\n101,80,90\n102,70,60\n"
	semicolon := "Nama;Matematika (ID:5);IPA (ID:9)\n101;80;90\n102;70;60\n"

	s1, s2 := newMemStore(), newMemStore()
	r1, err1 := ImportGrades(strings.NewReader(comma), s1)
	r2, err2 := ImportGrades(strings.NewReader(semicolon), s2)
	if err1 != nil || err2 != nil {
		t.Fatalf("err = %v / %v", err1, err2)
	}
	if r1 != r2 {
		t.Errorf("hasil beda antar delimiter: %+v vs %+v", r1, r2)
	}
	if len(s1.grades) != len(s2.grades) {
		t.Fatalf("jumlah nilai beda: %d vs %d", len(s1.grades), len(s2.grades))
	}
	for k, v := range s1.grades {
		if s2.grades[k] != v {
			t.Errorf("grade%v = %d vs %d", k, v, s2.grades[k])
		}
	}
}

func TestImportGrades_InvalidHeaderWritesNothing(t *testing.T) {
	csv := "Nama,Matematika,IPA\n101,80,90\n"
	store := newMemStore()
	store.grades[[2]uint{101, 5}] = 55

	_, err := ImportGrades(strings.NewReader(csv), store)
	var ie *ImportError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *ImportError", err)
	}
	if len(store.grades) != 1 || store.grades[[2]uint{101, 5}] != 55 {
		t.Error("state nilai berubah padahal header tidak valid")
	}
	if len(store.deletes) != 0 {
		t.Error("ada delete padahal header tidak valid")
	}
}

func TestImportGrades_SkipsBadStudentRows(t *testing.T) {
	csv := "ID,Matematika (ID:5)\n" +
		"101,80\n" +
		",90\n" + // id kosong → skip
		"abc,70\n" + // id non-numerik → skip
		"102,60\n"
	store := newMemStore()

	res, err := ImportGrades(strings.NewReader(csv), store)
	if err != nil {
		t.Fatalf("ImportGrades() err = %v", err)
	}
	if res.RowCount != 4 {
		t.Errorf("RowCount = %d, want 4 (baris di-skip tetap terhitung)", res.RowCount)
	}
	if res.SuccessCount != 2 {
		t.Errorf("SuccessCount = %d, want 2", res.SuccessCount)
	}
	if len(store.grades) != 2 {
		t.Errorf("jumlah nilai = %d, want 2", len(store.grades))
	}
}

func TestImportGrades_BOMAndQuotedCells(t *testing.T) {
	csv := "\uFEFFNama,\"Matematika (ID:5)\"\n\"101\",\"80\"\n"
	store := newMemStore()

	res, err := ImportGrades(strings.NewReader(csv), store)
	if err != nil {
		t.Fatalf("ImportGrades() err = %v", err)
	}
	if res.SuccessCount != 1 || store.grades[[2]uint{101, 5}] != 80 {
		t.Errorf("hasil = %+v, grades = %v", res, store.grades)
	}
}

func TestImportGrades_StoreErrorAborts(t *testing.T) {
	csv := "Nama,Matematika (ID:5)\n101,80\n"
	store := newMemStore()
	fail := [2]uint{101, 5}
	store.failOn = &fail

	if _, err := ImportGrades(strings.NewReader(csv), store); err == nil {
		t.Fatal("ImportGrades() err = nil, want error dari store")
	}
}

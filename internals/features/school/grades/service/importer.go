// internals/features/school/grades/service/importer.go
package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gradeModel "github.com/amdmunif/sood-wsb/internals/features/school/grades/model"
)

// Konvensi header template: sel yang mengandung "(ID:<angka>)" menandai kolom
// nilai untuk modul tsb; sel lain (nama siswa dsb) diabaikan.
var headerModuleRe = regexp.MustCompile(`\(ID:(\d+)\)`)

// ImportError = kegagalan struktural (header tidak valid, file korup).
// Seluruh transaksi di-rollback; beda dengan baris jelek yang cuma di-skip.
type ImportError struct {
	Msg string
}

func (e *ImportError) Error() string { return e.Msg }

// ImportResult = ringkasan lunak per-file: berapa sel berhasil di-upsert
// (delete TIDAK dihitung) dan berapa baris data yang terbaca.
type ImportResult struct {
	SuccessCount int
	RowCount     int
}

func (r ImportResult) Message() string {
	return fmt.Sprintf("Proses Berhasil. Memperbarui %d entri nilai dari %d peserta didik.", r.SuccessCount, r.RowCount)
}

// GradeStore abstraksi penulisan nilai supaya rekonsiliasi bisa diuji tanpa
// database. Implementasi produksi membungkus transaksi GORM.
type GradeStore interface {
	Upsert(studentID, moduleID uint, score int) error
	Delete(studentID, moduleID uint) error
}

// DetectDelimiter: titik koma bila ada di baris pertama, selain itu koma.
func DetectDelimiter(firstLine string) rune {
	if strings.ContainsRune(firstLine, ';') {
		return ';'
	}
	return ','
}

// ParseHeader memetakan index kolom → module_id dari baris header.
// BOM UTF-8 dibuang dari sel pertama (bisa lebih dari satu, export dari
// spreadsheet yang di-save ulang kadang menumpuk BOM). Nol mapping = header
// tidak valid.
func ParseHeader(cells []string) (map[int]uint, error) {
	if len(cells) > 0 {
		cells[0] = strings.TrimLeft(cells[0], "\uFEFF")
	}
	mapping := make(map[int]uint)
	for i, cell := range cells {
		if m := headerModuleRe.FindStringSubmatch(cell); m != nil {
			id, err := strconv.ParseUint(m[1], 10, 64)
			if err != nil {
				continue
			}
			mapping[i] = uint(id)
		}
	}
	if len(mapping) == 0 {
		return nil, &ImportError{Msg: "Format header tidak valid. Gunakan template yang di-download dari sistem."}
	}
	return mapping, nil
}

// CellOp = keputusan per sel nilai.
type CellOp int

const (
	OpSkip   CellOp = iota // bukan angka bulat / di luar 0–100 → diabaikan diam-diam
	OpDelete               // sel kosong → hapus nilai lama
	OpUpsert               // angka bulat 0–100 → tulis/timpa
)

// PlanCell menerjemahkan isi mentah satu sel nilai menjadi operasi.
func PlanCell(raw string) (CellOp, int) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return OpDelete, 0
	}
	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 || score > 100 {
		return OpSkip, 0
	}
	return OpUpsert, score
}

// ImportGrades memproses satu file CSV utuh terhadap store.
// Baris 1 = header; baris lain = record siswa (kolom 0 harus id numerik,
// selain itu baris di-skip tanpa dihitung error). Error store manapun
// menghentikan proses — pemanggil wajib membungkus dalam satu transaksi.
func ImportGrades(r io.Reader, store GradeStore) (ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, &ImportError{Msg: "Gagal membaca file: " + err.Error()}
	}

	firstLine, _, _ := strings.Cut(string(raw), "\n")
	cr := csv.NewReader(strings.NewReader(string(raw)))
	cr.Comma = DetectDelimiter(firstLine)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		res     ImportResult
		mapping map[int]uint
		cols    []int
	)

	for rowIdx := 0; ; rowIdx++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ImportResult{}, &ImportError{Msg: "Gagal membaca file: " + err.Error()}
		}

		if rowIdx == 0 {
			mapping, err = ParseHeader(record)
			if err != nil {
				return ImportResult{}, err
			}
			// urutan kolom stabil supaya hasil deterministik
			for col := range mapping {
				cols = append(cols, col)
			}
			sort.Ints(cols)
			continue
		}

		res.RowCount++

		if len(record) == 0 {
			continue
		}
		studentRaw := strings.TrimSpace(record[0])
		studentID, err := strconv.ParseUint(studentRaw, 10, 64)
		if studentRaw == "" || err != nil {
			continue
		}

		for _, col := range cols {
			moduleID := mapping[col]
			raw := ""
			if col < len(record) {
				raw = record[col]
			}
			switch op, score := PlanCell(raw); op {
			case OpDelete:
				if err := store.Delete(uint(studentID), moduleID); err != nil {
					return ImportResult{}, err
				}
			case OpUpsert:
				if err := store.Upsert(uint(studentID), moduleID, score); err != nil {
					return ImportResult{}, err
				}
				res.SuccessCount++
			}
		}
	}

	if mapping == nil {
		return ImportResult{}, &ImportError{Msg: "Format header tidak valid. Gunakan template yang di-download dari sistem."}
	}
	return res, nil
}

// gormGradeStore = implementasi GradeStore di atas transaksi GORM.
type gormGradeStore struct {
	tx *gorm.DB
}

func NewGormGradeStore(tx *gorm.DB) GradeStore { return &gormGradeStore{tx: tx} }

func (s *gormGradeStore) Upsert(studentID, moduleID uint, score int) error {
	g := gradeModel.GradeModel{StudentID: studentID, ModuleID: moduleID, Score: score}
	return s.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "module_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score"}),
	}).Create(&g).Error
}

func (s *gormGradeStore) Delete(studentID, moduleID uint) error {
	return s.tx.
		Where("student_id = ? AND module_id = ?", studentID, moduleID).
		Delete(&gradeModel.GradeModel{}).Error
}

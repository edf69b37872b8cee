// internals/features/school/grades/service/export.go
package service

import (
	"encoding/csv"
	"io"
	"strconv"
)

// FlattenCSV meratakan matriks menjadi baris CSV: satu kolom per pasangan
// (mapel, modul) berlabel "<mapel> - <modul>", satu baris per siswa.
// Sel tanpa nilai ditulis 0 — SENGAJA beda dengan tampilan JSON yang
// menghilangkan key; dua representasi ini dipertahankan terpisah.
func FlattenCSV(m Matrix) [][]string {
	header := []string{"Nama Siswa", "PKBM"}
	var moduleIDs []uint
	for _, sub := range m.Subjects {
		for _, mod := range sub.Modules {
			header = append(header, sub.Name+" - "+mod.Name)
			moduleIDs = append(moduleIDs, mod.ID)
		}
	}

	rows := [][]string{header}
	for _, st := range m.Matrix {
		row := []string{st.Name, st.PKBM}
		for _, mid := range moduleIDs {
			row = append(row, strconv.Itoa(st.Grades[mid]))
		}
		rows = append(rows, row)
	}
	return rows
}

func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

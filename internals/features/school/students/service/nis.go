// internals/features/school/students/service/nis.go
package service

import "fmt"

// FormatNIS membentuk Nomor Induk Siswa: YYYYPPNNN
// (tahun, kode PKBM pad-2, nomor urut pad-3). Id/urutan di atas lebar pad
// tidak dipotong, hanya memanjang.
func FormatNIS(year int, pkbmID uint, sequence int64) string {
	return fmt.Sprintf("%d%02d%03d", year, pkbmID, sequence)
}

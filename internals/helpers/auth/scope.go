// helpers/auth/scope.go
package helper

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Scope = hasil resolusi filter tenant. Hanya dua varian: semua tenant atau
// satu PKBM. Dipakai seragam oleh matrix, laporan, export, dan CRUD siswa
// supaya aturan "role non-privileged selalu dikunci ke tenantnya sendiri"
// ditegakkan di satu tempat.
type Scope struct {
	All    bool
	PKBMID uint
}

// ResolveScope menerjemahkan filter yang DIMINTA ("all", "", atau id angka)
// menjadi scope yang DIIZINKAN untuk caller.
//   - Super Admin: boleh "all" atau id eksplisit; string tak valid → all.
//   - Selain itu: apapun yang diminta, dikunci ke PKBM miliknya. User tanpa
//     pkbm_id mendapat scope PKBM 0 (kosong), bukan akses global.
func ResolveScope(ac AuthContext, requested string) Scope {
	requested = strings.TrimSpace(requested)

	if !ac.IsSuperAdmin() {
		if ac.PKBMID != nil {
			return Scope{PKBMID: *ac.PKBMID}
		}
		return Scope{PKBMID: 0}
	}

	if requested == "" || requested == "all" {
		return Scope{All: true}
	}
	id, err := strconv.ParseUint(requested, 10, 64)
	if err != nil {
		return Scope{All: true}
	}
	return Scope{PKBMID: uint(id)}
}

// ApplyStudentScope menambah klausa filter tenant pada query yang sudah
// punya join/alias tabel students sebagai s. Selalu parameterized.
func (s Scope) ApplyStudentScope(q *gorm.DB, column string) *gorm.DB {
	if s.All {
		return q
	}
	return q.Where(column+" = ?", s.PKBMID)
}

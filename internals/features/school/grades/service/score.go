// internals/features/school/grades/service/score.go
package service

import (
	"encoding/json"
	"math"
)

// NormalizeScore menerjemahkan satu nilai dari body editor nilai interaktif
// (bisa angka, string, atau null) menjadi operasi sel. Aturannya sama dengan
// importer: null/"" → hapus, bilangan bulat 0–100 → upsert, selain itu
// di-skip diam-diam tanpa menggagalkan sel lain.
func NormalizeScore(v interface{}) (CellOp, int) {
	switch val := v.(type) {
	case nil:
		return OpDelete, 0
	case string:
		return PlanCell(val)
	case json.Number:
		return PlanCell(val.String())
	case float64:
		if val != math.Trunc(val) {
			return OpSkip, 0
		}
		score := int(val)
		if score < 0 || score > 100 {
			return OpSkip, 0
		}
		return OpUpsert, score
	default:
		return OpSkip, 0
	}
}

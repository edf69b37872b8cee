package service

import (
	"encoding/json"
	"testing"
)

func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		wantOp    CellOp
		wantScore int
	}{
		{name: "null menghapus", value: nil, wantOp: OpDelete},
		{name: "string kosong menghapus", value: "", wantOp: OpDelete},
		{name: "angka valid", value: float64(80), wantOp: OpUpsert, wantScore: 80},
		{name: "batas bawah", value: float64(0), wantOp: OpUpsert, wantScore: 0},
		{name: "batas atas", value: float64(100), wantOp: OpUpsert, wantScore: 100},
		{name: "di atas 100 di-skip", value: float64(150), wantOp: OpSkip},
		{name: "negatif di-skip", value: float64(-5), wantOp: OpSkip},
		{name: "pecahan di-skip", value: float64(80.5), wantOp: OpSkip},
		{name: "string angka valid", value: "75", wantOp: OpUpsert, wantScore: 75},
		{name: "string bukan angka di-skip", value: "abc", wantOp: OpSkip},
		{name: "json.Number", value: json.Number("60"), wantOp: OpUpsert, wantScore: 60},
		{name: "tipe aneh di-skip", value: true, wantOp: OpSkip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, score := NormalizeScore(tt.value)
			if op != tt.wantOp || score != tt.wantScore {
				t.Errorf("NormalizeScore(%v) = (%v, %d), want (%v, %d)", tt.value, op, score, tt.wantOp, tt.wantScore)
			}
		})
	}
}

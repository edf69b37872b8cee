package service

import "testing"

func TestFormatNIS(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		pkbmID   uint
		sequence int64
		want     string
	}{
		{name: "umum", year: 2026, pkbmID: 2, sequence: 1, want: "202602001"},
		{name: "urutan tiga digit", year: 2026, pkbmID: 14, sequence: 123, want: "202614123"},
		{name: "pkbm di atas dua digit tidak dipotong", year: 2026, pkbmID: 104, sequence: 7, want: "2026104007"},
		{name: "urutan di atas tiga digit tidak dipotong", year: 2026, pkbmID: 2, sequence: 1050, want: "2026021050"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNIS(tt.year, tt.pkbmID, tt.sequence); got != tt.want {
				t.Errorf("FormatNIS(%d, %d, %d) = %q, want %q", tt.year, tt.pkbmID, tt.sequence, got, tt.want)
			}
		})
	}
}

package dto

import (
	"encoding/json"
	"testing"
)

// category_id harus bisa dibedakan: tidak dikirim / null / angka.
func TestPatchFieldTriState(t *testing.T) {
	cases := []struct {
		name        string
		payload     string
		wantPresent bool
		wantNil     bool
		wantValue   uint
	}{
		{"tidak dikirim", `{"id":1}`, false, true, 0},
		{"null eksplisit", `{"id":1,"category_id":null}`, true, true, 0},
		{"ada nilai", `{"id":1,"category_id":7}`, true, false, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req UpdateSubjectRequest
			if err := json.Unmarshal([]byte(tc.payload), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			v, present := req.CategoryID.Get()
			if present != tc.wantPresent {
				t.Fatalf("present = %v, mau %v", present, tc.wantPresent)
			}
			if (v == nil) != tc.wantNil {
				t.Fatalf("nil = %v, mau %v", v == nil, tc.wantNil)
			}
			if v != nil && *v != tc.wantValue {
				t.Fatalf("value = %d, mau %d", *v, tc.wantValue)
			}
		})
	}
}

func TestPatchFieldRejectsWrongType(t *testing.T) {
	var req UpdateSubjectRequest
	if err := json.Unmarshal([]byte(`{"id":1,"category_id":"abc"}`), &req); err == nil {
		t.Fatal("string untuk category_id seharusnya error")
	}
}

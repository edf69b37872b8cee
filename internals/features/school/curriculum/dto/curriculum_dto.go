// internals/features/school/curriculum/dto/curriculum_dto.go
package dto

import (
	"encoding/json"
	"strings"
)

/* =========================================================
   PATCH FIELD — tri-state (absent | null | value)
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

/* =========================================================
   SUBJECT
   ========================================================= */

type CreateSubjectRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=160"`
	SortOrder  int    `json:"sort_order"`
	CategoryID *uint  `json:"category_id"`
}

func (r *CreateSubjectRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

// UpdateSubjectRequest: partial update; category_id harus bisa dibedakan
// antara "tidak dikirim" dan "di-null-kan" (lepas dari kategori).
type UpdateSubjectRequest struct {
	ID         uint               `json:"id" validate:"required"`
	Name       PatchField[string] `json:"name"`
	SortOrder  PatchField[int]    `json:"sort_order"`
	CategoryID PatchField[uint]   `json:"category_id"`
}

/* =========================================================
   MODULE / CATEGORY
   ========================================================= */

type CreateModuleRequest struct {
	SubjectID uint   `json:"subject_id" validate:"required"`
	Name      string `json:"name" validate:"required,min=1,max=160"`
}

type CreateCategoryRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=120"`
	SortOrder int    `json:"sort_order"`
}

type UpdateCategoryRequest struct {
	ID        uint               `json:"id" validate:"required"`
	Name      PatchField[string] `json:"name"`
	SortOrder PatchField[int]    `json:"sort_order"`
}

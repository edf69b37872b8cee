// internals/features/school/students/dto/student_dto.go
package dto

import "strings"

type CreateStudentRequest struct {
	Name   string  `json:"name" validate:"required,min=1,max=160"`
	Email  *string `json:"email" validate:"omitempty,email"`
	NIK    *string `json:"nik" validate:"omitempty,len=16,numeric"`
	PKBMID *uint   `json:"pkbm_id"`
}

func (r *CreateStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Email)
	trimPtr(&r.NIK)
}

type UpdateStudentRequest struct {
	ID    uint   `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required,min=1,max=160"`
	Email string `json:"email" validate:"required,email"`
}

func (r *UpdateStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// ImportStudentsRequest = payload impor Excel dari frontend: array baris,
// tiap baris [nama, email, pkbm_id?].
type ImportStudentsRequest struct {
	Data [][]string `json:"data" validate:"required"`
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}

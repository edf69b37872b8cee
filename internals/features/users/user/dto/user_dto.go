// internals/features/users/user/dto/user_dto.go
package dto

import "strings"

type SaveUserRequest struct {
	ID       uint   `json:"id"` // 0 saat create
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof='Super Admin' 'Admin PKBM' 'Peserta PKBM'"`
	PKBMID   *uint  `json:"pkbm_id"`
	Password string `json:"password"` // wajib saat create, opsional saat update
}

func (r *SaveUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.TrimSpace(r.Role)
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	PKBMID   *uint  `json:"pkbm_id"`
	PKBMName string `json:"pkbm_name"`
}

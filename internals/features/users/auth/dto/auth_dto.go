// internals/features/users/auth/dto/auth_dto.go
package dto

import "strings"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// SessionResponse = profil sesi yang dikonsumsi frontend setelah login
// dan pada check_session.
type SessionResponse struct {
	UserID   uint   `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	PKBMID   *uint  `json:"pkbm_id"`
	PKBMName string `json:"pkbm_name"`
}

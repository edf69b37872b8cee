// helpers/auth/auth_context.go
package helper

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amdmunif/sood-wsb/internals/constants"
)

// AuthContext dibangun SEKALI per request oleh middleware auth dari JWT yang
// sudah diverifikasi, lalu dibaca handler lewat Locals. Handler tidak boleh
// membaca klaim token langsung.
type AuthContext struct {
	UserID uint
	Name   string
	Email  string
	Role   string
	PKBMID *uint // nil untuk Super Admin
}

const LocAuthContext = "auth_ctx"

func (a AuthContext) IsSuperAdmin() bool { return constants.IsSuperAdmin(a.Role) }

// GetAuthContext mengambil AuthContext dari Locals. Error = request lolos ke
// handler tanpa lewat middleware auth (salah mounting route).
func GetAuthContext(c *fiber.Ctx) (AuthContext, error) {
	v := c.Locals(LocAuthContext)
	ac, ok := v.(AuthContext)
	if !ok {
		return AuthContext{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return ac, nil
}

func SetAuthContext(c *fiber.Ctx, ac AuthContext) {
	c.Locals(LocAuthContext, ac)
}

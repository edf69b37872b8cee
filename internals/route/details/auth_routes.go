// internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authcontroller "github.com/amdmunif/sood-wsb/internals/features/users/auth/controller"
	"github.com/amdmunif/sood-wsb/internals/middlewares"
	authMiddleware "github.com/amdmunif/sood-wsb/internals/middlewares/auth"
)

// AuthRoutes: seluruh endpoint sesi. check_session dipasangi OptionalAuth,
// bukan AuthMiddleware, karena kontraknya 204 (bukan 401) saat belum login.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authcontroller.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Get("/check_session", authMiddleware.OptionalAuth(), ctrl.CheckSession)
	api.Post("/logout", ctrl.Logout)
	api.Post("/forgot_password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	api.Post("/reset_password", ctrl.ResetPassword)
}

// internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/amdmunif/sood-wsb/internals/constants"
	usercontroller "github.com/amdmunif/sood-wsb/internals/features/users/user/controller"
	authMiddleware "github.com/amdmunif/sood-wsb/internals/middlewares/auth"
)

// UserRoutes: manajemen akun, seluruhnya khusus Super Admin.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := usercontroller.NewUserController(db)

	users := api.Group("/users",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRoles(constants.RoleSuperAdmin),
	)
	users.Get("/", ctrl.ListUsers)
	users.Post("/", ctrl.CreateUser)
	users.Put("/", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
}

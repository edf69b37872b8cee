// internals/route/details/lembaga_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/amdmunif/sood-wsb/internals/constants"
	pkbmcontroller "github.com/amdmunif/sood-wsb/internals/features/lembaga/pkbm/controller"
	authMiddleware "github.com/amdmunif/sood-wsb/internals/middlewares/auth"
)

// LembagaRoutes: unit PKBM. GET publik (halaman landing menampilkan daftar
// unit + peta), mutasi khusus Super Admin.
func LembagaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := pkbmcontroller.NewPKBMController(db)

	api.Get("/pkbm", ctrl.ListPKBM)

	superOnly := api.Group("",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRoles(constants.RoleSuperAdmin),
	)
	superOnly.Post("/pkbm", ctrl.CreatePKBM)
	superOnly.Put("/pkbm", ctrl.UpdatePKBM)
	superOnly.Delete("/pkbm/:id", ctrl.DeletePKBM)
}

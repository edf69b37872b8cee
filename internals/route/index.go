// internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/amdmunif/sood-wsb/internals/configs"
	routeDetails "github.com/amdmunif/sood-wsb/internals/route/details"
)

var startTime time.Time

// SetupRoutes memasang seluruh endpoint di bawah /api + base routes.
// Kontrak path mengikuti frontend lama (flat, bukan REST bersarang).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// file upload (logo, hero, PDF tutorial) disajikan statis
	app.Static(configs.UploadsBase, configs.UploadsDir)

	api := app.Group("/api")

	log.Println("[INFO] Mounting Auth routes...")
	routeDetails.AuthRoutes(api, db)

	log.Println("[INFO] Mounting Lembaga routes...")
	routeDetails.LembagaRoutes(api, db)

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolRoutes(api, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(api, db)

	log.Println("[INFO] Mounting Home routes...")
	routeDetails.HomeRoutes(api, db)
}

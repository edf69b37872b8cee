package middlewares

import (
	"github.com/gofiber/fiber/v2"

	mwlogger "github.com/amdmunif/sood-wsb/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global. Urutan: recovery paling luar
// supaya panic dari middleware lain ikut tertangkap.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(mwlogger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}

package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Log memakai waktu WIB supaya sejalan dengan jam operasional PKBM.
const logTimeZone = "Asia/Jakarta"

// LoggerMiddleware mencatat satu baris ringkas per request masuk.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   logTimeZone,
		Format:     "[SOOD] ${time} ${ip} ${method} ${path} -> ${status} (${latency})\n",
	})
}

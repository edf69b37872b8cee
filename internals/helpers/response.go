package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Kontrak wire mengikuti API lama: body polos (array/objek langsung),
// pesan status lewat kunci "message". Frontend lama bergantung pada bentuk
// ini, jadi JANGAN dibungkus envelope tambahan.

// ✅ Payload polos (list, objek, matriks)
func JsonRaw(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// ✅ Pesan sukses sederhana: {"message": "..."}
func JsonMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// ✅ Error Response sederhana
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"message": message})
}

// ✅ Khusus error validasi (validator.v10) → 400 + map field→tag
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validasi gagal",
		"errors":  errorsMap,
	})
}

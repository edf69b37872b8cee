// internals/features/home/landing/controller/landing_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	landingmodel "github.com/amdmunif/sood-wsb/internals/features/home/landing/model"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
)

type LandingController struct {
	DB *gorm.DB
}

func NewLandingController(db *gorm.DB) *LandingController {
	return &LandingController{DB: db}
}

// defaultSettings = nilai tampil sebelum operator pernah menyimpan apa pun.
func defaultSettings() landingmodel.LandingSettingsModel {
	return landingmodel.LandingSettingsModel{
		ID:           1,
		HeroTitle:    "Sekolah Online Orang Dewasa",
		HeroSubtitle: "Pemerintah Kabupaten Wonosobo",
		HeroCTAText:  "Masuk",
		HeroCTAURL:   "/login",
		AboutTitle:   "Tentang SOOD",
	}
}

// 🌐 GET /api/landing_settings — publik. Belum ada baris = kembalikan default.
func (ctrl *LandingController) GetSettings(c *fiber.Ctx) error {
	var settings landingmodel.LandingSettingsModel
	err := ctrl.DB.WithContext(c.Context()).First(&settings, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonRaw(c, fiber.StatusOK, defaultSettings())
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pengaturan website")
	}
	return helper.JsonRaw(c, fiber.StatusOK, settings)
}

// 💾 POST /api/landing_settings — khusus Super Admin, multipart.
// Field file opsional: logo, favicon, hero_image, tutorial_pdf.
// Gambar di-reencode webp; PDF disimpan apa adanya.
func (ctrl *LandingController) SaveSettings(c *fiber.Ctx) error {
	settings := defaultSettings()
	if err := ctrl.DB.WithContext(c.Context()).First(&settings, 1).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pengaturan website")
	}
	settings.ID = 1

	assignIfSent(c, "hero_title", &settings.HeroTitle)
	assignIfSent(c, "hero_subtitle", &settings.HeroSubtitle)
	assignIfSent(c, "hero_cta_text", &settings.HeroCTAText)
	assignIfSent(c, "hero_cta_url", &settings.HeroCTAURL)
	assignIfSent(c, "about_title", &settings.AboutTitle)
	assignIfSent(c, "about_content", &settings.AboutContent)
	assignIfSent(c, "contact_address", &settings.ContactAddress)
	assignIfSent(c, "contact_email", &settings.ContactEmail)
	assignIfSent(c, "contact_phone", &settings.ContactPhone)
	assignIfSent(c, "tutorial_video_url", &settings.TutorialVideoURL)
	if v := c.FormValue("extra"); v != "" {
		settings.Extra = []byte(v)
	}

	if fh, err := c.FormFile("logo"); err == nil {
		url, err := helper.SaveUploadedImage("logo", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		settings.LogoURL = url
	}
	if fh, err := c.FormFile("favicon"); err == nil {
		url, err := helper.SaveUploadedImage("favicon", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		settings.FaviconURL = url
	}
	if fh, err := c.FormFile("hero_image"); err == nil {
		url, err := helper.SaveUploadedImage("hero", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		settings.HeroImageURL = url
	}
	if fh, err := c.FormFile("tutorial_pdf"); err == nil {
		if !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
			return helper.JsonError(c, fiber.StatusBadRequest, "File tutorial harus berformat PDF")
		}
		url, err := helper.SaveUploadedFile("tutorial", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		settings.TutorialPDFURL = url
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&settings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan website")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Pengaturan website berhasil disimpan")
}

// assignIfSent hanya menimpa bila field dikirim di form (boleh string kosong
// untuk mengosongkan nilai).
func assignIfSent(c *fiber.Ctx, key string, dst *string) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return
	}
	if vals, ok := form.Value[key]; ok && len(vals) > 0 {
		*dst = vals[0]
	}
}

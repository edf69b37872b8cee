// internals/features/home/announcements/controller/announcement_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementmodel "github.com/amdmunif/sood-wsb/internals/features/home/announcements/model"
	helper "github.com/amdmunif/sood-wsb/internals/helpers"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

type saveAnnouncementRequest struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// 📣 GET /api/announcements — publik, terbaru dulu.
func (ctrl *AnnouncementController) ListAnnouncements(c *fiber.Ctx) error {
	var rows []announcementmodel.AnnouncementModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pengumuman")
	}
	return helper.JsonRaw(c, fiber.StatusOK, rows)
}

// ➕ POST /api/announcements
func (ctrl *AnnouncementController) CreateAnnouncement(c *fiber.Ctx) error {
	var req saveAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Judul dan isi pengumuman wajib diisi")
	}

	row := announcementmodel.AnnouncementModel{Title: req.Title, Content: req.Content}
	if err := ctrl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengumuman")
	}
	return helper.JsonRaw(c, fiber.StatusCreated, fiber.Map{
		"message": "Pengumuman berhasil dibuat",
		"id":      row.ID,
	})
}

// ✏️ PUT /api/announcements — id tidak ditemukan = no-op.
func (ctrl *AnnouncementController) UpdateAnnouncement(c *fiber.Ctx) error {
	var req saveAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.ID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Judul dan isi pengumuman wajib diisi")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&announcementmodel.AnnouncementModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{"title": req.Title, "content": req.Content}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Pengumuman berhasil diperbarui")
}

// 🗑️ DELETE /api/announcements/:id
func (ctrl *AnnouncementController) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid.")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&announcementmodel.AnnouncementModel{}, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Pengumuman berhasil dihapus")
}

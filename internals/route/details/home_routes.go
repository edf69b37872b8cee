// internals/route/details/home_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/amdmunif/sood-wsb/internals/constants"
	announcementcontroller "github.com/amdmunif/sood-wsb/internals/features/home/announcements/controller"
	dashboardcontroller "github.com/amdmunif/sood-wsb/internals/features/home/dashboard/controller"
	landingcontroller "github.com/amdmunif/sood-wsb/internals/features/home/landing/controller"
	authMiddleware "github.com/amdmunif/sood-wsb/internals/middlewares/auth"
)

// HomeRoutes: konten halaman depan + dashboard.
func HomeRoutes(api fiber.Router, db *gorm.DB) {
	superOnly := authMiddleware.RequireRoles(constants.RoleSuperAdmin)
	adminRoles := authMiddleware.RequireRoles(constants.AdminRoles...)

	// pengumuman: baca publik, tulis oleh admin (unit maupun pusat)
	ann := announcementcontroller.NewAnnouncementController(db)
	api.Get("/announcements", ann.ListAnnouncements)
	annAuthed := api.Group("", authMiddleware.AuthMiddleware(), adminRoles)
	annAuthed.Post("/announcements", ann.CreateAnnouncement)
	annAuthed.Put("/announcements", ann.UpdateAnnouncement)
	annAuthed.Delete("/announcements/:id", ann.DeleteAnnouncement)

	// pengaturan landing: baca publik, simpan khusus Super Admin
	landing := landingcontroller.NewLandingController(db)
	api.Get("/landing_settings", landing.GetSettings)
	api.Post("/landing_settings",
		authMiddleware.AuthMiddleware(), superOnly, landing.SaveSettings)

	// dashboard: semua role yang punya sesi
	dash := dashboardcontroller.NewDashboardController(db)
	api.Get("/dashboard_stats",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRoles(constants.AllRoles...),
		dash.GetStats)
}

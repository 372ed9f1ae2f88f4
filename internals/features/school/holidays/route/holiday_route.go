// file: internals/features/school/holidays/route/holiday_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/holidays/controller"
)

// HolidayAdminRoutes registers the write surface (scoped to the
// caller's school by the path-scope middleware on the parent group).
func HolidayAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHolidayController(db)

	h := admin.Group("/:school_id/holidays")
	h.Post("/", ctrl.CreateHoliday)
	h.Patch("/:id", ctrl.UpdateHoliday)
	h.Delete("/:id", ctrl.DeleteHoliday)
}

// HolidayUserRoutes registers the read surface for any signed-in user.
func HolidayUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHolidayController(db)

	h := user.Group("/:school_id/holidays")
	h.Get("/", ctrl.ListHolidays)
	h.Get("/range", ctrl.GetHolidaysInRange)
	h.Get("/:id", ctrl.GetHolidayByID)
}

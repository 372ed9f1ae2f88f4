// file: internals/features/school/timetable/route/timetable_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/timetable/controller"
)

// TimetableAdminRoutes registers the grid editor surface: the full
// week view plus the three write operations.
func TimetableAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTimetableController(db)

	t := admin.Group("/:school_id/timetable")
	t.Get("/", ctrl.GetWeek)
	t.Get("/meta", ctrl.GetMeta)
	t.Get("/blocked-days", ctrl.GetBlockedDays)
	t.Post("/save", ctrl.SaveWeek)
	t.Post("/copy-previous", ctrl.CopyPreviousWeek)
	t.Post("/clear-week", ctrl.ClearWeek)
}

// TimetableUserRoutes registers the personal read-only projections.
func TimetableUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTimetableController(db)

	t := user.Group("/:school_id/timetable")
	t.Get("/for-teacher", ctrl.ForTeacher)
	t.Get("/for-student", ctrl.ForStudent)
	t.Get("/blocked-days", ctrl.GetBlockedDays)
}

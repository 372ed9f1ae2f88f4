// file: internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/attendance/controller"
)

// AttendanceUserRoutes: marking is done by teachers, so it lives on
// the signed-in surface rather than the admin one.
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	a := user.Group("/:school_id/attendance")
	a.Post("/mark", ctrl.MarkAttendance)
	a.Get("/", ctrl.GetAttendance)
}

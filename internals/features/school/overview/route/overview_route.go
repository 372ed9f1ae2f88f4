// file: internals/features/school/overview/route/overview_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/overview/controller"
)

// OverviewAdminRoutes registers the dashboard counters.
func OverviewAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOverviewController(db)

	admin.Get("/:school_id/overview", ctrl.AdminOverview)
}

// OverviewUserRoutes registers the personal landing views and the
// student roster listings.
func OverviewUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOverviewController(db)

	o := user.Group("/:school_id/overview")
	o.Get("/teacher-today", ctrl.TeacherToday)
	o.Get("/student-today", ctrl.StudentToday)

	s := user.Group("/:school_id/students")
	s.Get("/peers", ctrl.StudentPeers)
	s.Get("/for-teacher", ctrl.TeacherStudents)
}

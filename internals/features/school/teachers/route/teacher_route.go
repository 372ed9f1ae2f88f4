// file: internals/features/school/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/teachers/controller"
)

func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	t := admin.Group("/:school_id/teachers")
	t.Post("/", ctrl.CreateTeacher)
	t.Get("/", ctrl.ListTeachers)
	t.Get("/:id", ctrl.GetTeacherByID)
	t.Patch("/:id", ctrl.UpdateTeacher)
	t.Post("/:id/activate", ctrl.ActivateTeacher)
	t.Delete("/:id", ctrl.DeleteTeacher)
}

// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	s := admin.Group("/:school_id/students")
	s.Post("/", ctrl.CreateStudent)
	s.Get("/", ctrl.ListStudents)
	s.Get("/:id", ctrl.GetStudentByID)
	s.Patch("/:id", ctrl.UpdateStudent)
	s.Delete("/:id", ctrl.DeleteStudent)
}

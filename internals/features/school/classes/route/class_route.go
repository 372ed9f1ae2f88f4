// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/classes/controller"
)

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db)

	cls := admin.Group("/:school_id/classes")
	cls.Post("/", ctrl.CreateClass)
	cls.Patch("/:id", ctrl.UpdateClass)
	cls.Delete("/:id", ctrl.DeleteClass)

	sec := admin.Group("/:school_id/sections")
	sec.Post("/", ctrl.CreateSection)
	sec.Delete("/:id", ctrl.DeleteSection)
}

func ClassUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db)

	user.Get("/:school_id/classes", ctrl.ListClasses)
	user.Get("/:school_id/sections", ctrl.ListSections)
}

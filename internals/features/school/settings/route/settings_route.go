// file: internals/features/school/settings/route/settings_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/settings/controller"
)

func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSettingsController(db)

	s := admin.Group("/:school_id/settings")
	s.Get("/", ctrl.GetSettings)
	s.Put("/", ctrl.PutSettings)
}

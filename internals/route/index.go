// file: internals/route/index.go
package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "schoolku_backend/internals/features/school/attendance/route"
	classRoute "schoolku_backend/internals/features/school/classes/route"
	holidayRoute "schoolku_backend/internals/features/school/holidays/route"
	overviewRoute "schoolku_backend/internals/features/school/overview/route"
	settingsRoute "schoolku_backend/internals/features/school/settings/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"
	teacherRoute "schoolku_backend/internals/features/school/teachers/route"
	timetableRoute "schoolku_backend/internals/features/school/timetable/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	authService "schoolku_backend/internals/features/users/auth/service"
	authMiddleware "schoolku_backend/internals/middlewares/auth_school"
	featureMiddleware "schoolku_backend/internals/middlewares/features"
)

// SetupRoutes mounts the whole API surface:
//
//	/api/auth  - register/login/logout/me
//	/api/u     - any signed-in user (scoped reads, personal views)
//	/api/a     - school admins (grid editing, CRUD, settings)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		BlacklistChecker:    authService.IsTokenBlacklisted(db),
		AllowCookieFallback: true,
	})

	user := app.Group("/api/u", jwt, featureMiddleware.RequirePathScopeMatch())
	timetableRoute.TimetableUserRoutes(user, db)
	holidayRoute.HolidayUserRoutes(user, db)
	classRoute.ClassUserRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, db)
	overviewRoute.OverviewUserRoutes(user, db)

	admin := app.Group("/api/a", jwt,
		featureMiddleware.RequirePathScopeMatch(),
		featureMiddleware.IsSchoolAdmin(),
	)
	timetableRoute.TimetableAdminRoutes(admin, db)
	holidayRoute.HolidayAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	settingsRoute.SettingsAdminRoutes(admin, db)
	overviewRoute.OverviewAdminRoutes(admin, db)

	registerBaseRoutes(app, db)
}

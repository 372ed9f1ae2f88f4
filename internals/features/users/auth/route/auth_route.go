package route

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authctl "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/features/users/auth/service"
	middlewares "schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth_school"
)

// AuthRoutes: public register/login, authed logout/me.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authctl.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	authed := grp.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			BlacklistChecker:    service.IsTokenBlacklisted(db),
			AllowCookieFallback: true,
		}),
	)
	authed.Post("/logout", ctl.Logout)
	authed.Get("/me", ctl.Me)
}

// file: internals/middlewares/features/is_school_admin.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// IsSchoolAdmin requires an admin role in the token.
func IsSchoolAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsAdmin(c) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("this endpoint"))
		}
		return c.Next()
	}
}

// RequirePathScopeMatch rejects requests whose :school_id path param
// differs from the school scope in the token. Routes without the param
// pass through.
func RequirePathScopeMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pathID := strings.TrimSpace(c.Params("school_id"))
		if pathID == "" {
			return c.Next()
		}
		id, err := uuid.Parse(pathID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "school_id invalid")
		}
		act, err := helperAuth.GetSchoolIDFromToken(c)
		if err != nil {
			return err
		}
		if act != id {
			return fiber.NewError(fiber.StatusForbidden, "school scope mismatch")
		}
		return c.Next()
	}
}

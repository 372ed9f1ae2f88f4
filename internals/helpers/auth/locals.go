// file: internals/helpers/auth/locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

/* ============================================
   Locals keys (auth middleware sets these)
   ============================================ */

const (
	LocUserID    = "user_id"    // string | uuid
	LocRole      = "role"       // string
	LocSchoolID  = "school_id"  // string UUID
	LocTeacherID = "teacher_id" // string UUID (only for teacher accounts)
	LocStudentID = "student_id" // string UUID (only for student accounts)
)

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, bool) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, false
	}
	switch t := v.(type) {
	case uuid.UUID:
		return t, t != uuid.Nil
	case string:
		id, err := uuid.Parse(strings.TrimSpace(t))
		return id, err == nil && id != uuid.Nil
	case []byte:
		id, err := uuid.Parse(strings.TrimSpace(string(t)))
		return id, err == nil && id != uuid.Nil
	default:
		return uuid.Nil, false
	}
}

// GetUserIDFromToken returns the authenticated user's id.
// 401 when not logged in, 400 when the claim is malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}
	if id, ok := localUUID(c, LocUserID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
}

func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocSchoolID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "School scope missing from token")
}

// GetTeacherIDFromToken resolves the teacher record id embedded at login.
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocTeacherID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Teacher record missing from token")
}

func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocStudentID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Student record missing from token")
}

func GetRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool   { return GetRole(c) == constants.RoleAdmin }
func IsTeacher(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleTeacher }
func IsStudent(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleStudent }

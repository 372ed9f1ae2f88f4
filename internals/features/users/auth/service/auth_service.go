// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	authModel "schoolku_backend/internals/features/users/auth/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

const accessTokenTTL = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	s := strings.TrimSpace(configs.JWTSecret)
	if s == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	return s, nil
}

/* ========================== REGISTER ========================== */

type registerRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hash),
		Role:     constants.RoleStudent,
	}
	if err := db.WithContext(c.Context()).Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	return helper.JsonCreated(c, "Account created", fiber.Map{
		"id":        user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

/* ========================== LOGIN ========================== */

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.WithContext(c.Context()).
		Where("email = ? AND is_active = TRUE", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()
	claims := jwt.MapClaims{
		"id":   user.ID.String(),
		"role": strings.ToLower(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	if user.SchoolID != nil && *user.SchoolID != uuid.Nil {
		claims["school_id"] = user.SchoolID.String()
	}

	// attach the teacher/student record so personal timetable views can
	// resolve without extra lookups per request
	switch strings.ToLower(user.Role) {
	case constants.RoleTeacher:
		var t teacherModel.TeacherModel
		if err := db.Where("teacher_user_id = ?", user.ID).First(&t).Error; err == nil {
			claims["teacher_id"] = t.TeacherID.String()
			claims["school_id"] = t.TeacherSchoolID.String()
		}
	case constants.RoleStudent:
		var s studentModel.StudentModel
		if err := db.Where("student_email = ?", user.Email).First(&s).Error; err == nil {
			claims["student_id"] = s.StudentID.String()
			claims["school_id"] = s.StudentSchoolID.String()
		}
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login success", fiber.Map{
		"access_token": token,
		"user": fiber.Map{
			"id":        user.ID,
			"full_name": user.FullName,
			"email":     user.Email,
			"role":      strings.ToLower(user.Role),
		},
	})
}

/* ========================== LOGOUT ========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	} else {
		raw = strings.TrimSpace(c.Cookies("access_token"))
	}
	if raw != "" {
		entry := authModel.TokenBlacklist{
			Token:     raw,
			ExpiredAt: nowUTC().Add(accessTokenTTL),
		}
		if err := db.WithContext(c.Context()).Create(&entry).Error; err != nil {
			log.Printf("[WARN] blacklist insert failed: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  nowUTC().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.JsonOK(c, "Logged out", nil)
}

/* ========================== BLACKLIST CHECK ========================== */

// IsTokenBlacklisted is plugged into the auth middleware.
func IsTokenBlacklisted(db *gorm.DB) func(raw string) (bool, error) {
	return func(raw string) (bool, error) {
		var n int64
		err := db.Model(&authModel.TokenBlacklist{}).
			Where("token = ? AND deleted_at IS NULL", raw).
			Count(&n).Error
		return n > 0, err
	}
}

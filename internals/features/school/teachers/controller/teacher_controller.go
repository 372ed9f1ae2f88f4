// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	dto "schoolku_backend/internals/features/school/teachers/dto"
	model "schoolku_backend/internals/features/school/teachers/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

var validate = validator.New()

// CreateTeacher - POST /:school_id/teachers
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(schoolID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to create teacher")
	}

	return helper.JsonCreated(c, "Teacher created", dto.FromModelTeacher(m))
}

// ListTeachers - GET /:school_id/teachers?q=&active=&page=&per_page=
func (ctrl *TeacherController) ListTeachers(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.TeacherModel{}).
		Where("teacher_school_id = ?", schoolID)
	if kw := strings.TrimSpace(c.Query("q")); kw != "" {
		pat := "%" + kw + "%"
		tx = tx.Where("teacher_first_name ILIKE ? OR teacher_last_name ILIKE ? OR teacher_subject ILIKE ?", pat, pat, pat)
	}
	if c.Query("active") == "true" {
		tx = tx.Where("teacher_is_active = TRUE")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to count teachers")
	}

	var rows []model.TeacherModel
	if err := tx.
		Order("teacher_first_name ASC, teacher_last_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch teachers")
	}

	out := make([]*dto.TeacherResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelTeacher(&rows[i]))
	}
	return helper.JsonList(c, "Teachers fetched", out,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GetTeacherByID - GET /:school_id/teachers/:id
func (ctrl *TeacherController) GetTeacherByID(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.TeacherModel
	if err := ctrl.DB.
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch teacher")
	}

	return helper.JsonOK(c, "Teacher fetched", dto.FromModelTeacher(&m))
}

// UpdateTeacher - PATCH /:school_id/teachers/:id
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.PatchTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.TeacherModel
	if err := ctrl.DB.
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch teacher")
	}

	req.Apply(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to update teacher")
	}

	return helper.JsonUpdated(c, "Teacher updated", dto.FromModelTeacher(&m))
}

// ActivateTeacher - POST /:school_id/teachers/:id/activate
// Links the teacher record to an existing login account. The account
// is promoted to the teacher role and scoped to the school.
func (ctrl *TeacherController) ActivateTeacher(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ActivateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.TeacherModel
	if err := ctrl.DB.
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch teacher")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("id = ?", req.TeacherUserID).
			Updates(map[string]any{
				"role":      constants.RoleTeacher,
				"school_id": schoolID,
			}).Error; err != nil {
			return err
		}
		m.TeacherUserID = &req.TeacherUserID
		return tx.Save(&m).Error
	})
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to activate teacher account")
	}

	return helper.JsonUpdated(c, "Teacher account linked", dto.FromModelTeacher(&m))
}

// DeleteTeacher - DELETE /:school_id/teachers/:id (soft delete)
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		Delete(&model.TeacherModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Failed to delete teacher")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"teacher_id": id})
}

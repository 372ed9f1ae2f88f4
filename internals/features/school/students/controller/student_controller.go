// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/school/students/dto"
	model "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

// CreateStudent - POST /:school_id/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel(schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created", dto.FromModelStudent(m))
}

// ListStudents - GET /:school_id/students?class_id=&section_id=&q=&status=&page=&per_page=
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_school_id = ?", schoolID)
	if raw := c.Query("class_id"); raw != "" {
		id, err := helper.ParseUUIDQuery(c, "class_id")
		if err != nil {
			return err
		}
		tx = tx.Where("student_class_id = ?", id)
	}
	if raw := c.Query("section_id"); raw != "" {
		id, err := helper.ParseUUIDQuery(c, "section_id")
		if err != nil {
			return err
		}
		tx = tx.Where("student_section_id = ?", id)
	}
	if kw := strings.TrimSpace(c.Query("q")); kw != "" {
		pat := "%" + kw + "%"
		tx = tx.Where("student_first_name ILIKE ? OR student_last_name ILIKE ? OR student_email ILIKE ?", pat, pat, pat)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("student_status = ?", st)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to count students")
	}

	var rows []model.StudentModel
	if err := tx.
		Order("student_first_name ASC, student_last_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch students")
	}

	out := make([]*dto.StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelStudent(&rows[i]))
	}
	return helper.JsonList(c, "Students fetched", out,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GetStudentByID - GET /:school_id/students/:id
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch student")
	}

	return helper.JsonOK(c, "Student fetched", dto.FromModelStudent(&m))
}

// UpdateStudent - PATCH /:school_id/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.PatchStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch student")
	}

	req.Apply(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to update student")
	}

	return helper.JsonUpdated(c, "Student updated", dto.FromModelStudent(&m))
}

// DeleteStudent - DELETE /:school_id/students/:id (soft delete)
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_id": id})
}

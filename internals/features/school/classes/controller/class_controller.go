// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/school/classes/dto"
	model "schoolku_backend/internals/features/school/classes/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// CreateClass - POST /:school_id/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(schoolID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to create class")
	}

	return helper.JsonCreated(c, "Class created", dto.FromModelClass(m))
}

// ListClasses - GET /:school_id/classes?active=true
func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	tx := ctrl.DB.Where("class_school_id = ?", schoolID)
	if c.Query("active") == "true" {
		tx = tx.Where("class_is_active = TRUE")
	}

	var rows []model.ClassModel
	if err := tx.Order("class_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch classes")
	}

	out := make([]*dto.ClassResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelClass(&rows[i]))
	}
	return helper.JsonOK(c, "Classes fetched", out)
}

// UpdateClass - PATCH /:school_id/classes/:id
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.PatchClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ClassModel
	if err := ctrl.DB.
		Where("class_id = ? AND class_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch class")
	}

	req.Apply(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to update class")
	}

	return helper.JsonUpdated(c, "Class updated", dto.FromModelClass(&m))
}

// DeleteClass - DELETE /:school_id/classes/:id (soft delete)
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.
		Where("class_id = ? AND class_school_id = ?", id, schoolID).
		Delete(&model.ClassModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	return helper.JsonDeleted(c, "Class deleted", fiber.Map{"class_id": id})
}

/* =========================================================
   Sections
   ========================================================= */

// CreateSection - POST /:school_id/sections
func (ctrl *ClassController) CreateSection(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var req dto.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// parent class must belong to the same school
	var count int64
	if err := ctrl.DB.Model(&model.ClassModel{}).
		Where("class_id = ? AND class_school_id = ?", req.SectionClassID, schoolID).
		Count(&count).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to verify class")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Class not found in this school")
	}

	m := req.ToModel(schoolID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to create section")
	}

	return helper.JsonCreated(c, "Section created", dto.FromModelSection(m))
}

// ListSections - GET /:school_id/sections?class_id=
func (ctrl *ClassController) ListSections(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	tx := ctrl.DB.Where("section_school_id = ?", schoolID)
	if raw := c.Query("class_id"); raw != "" {
		classID, err := helper.ParseUUIDQuery(c, "class_id")
		if err != nil {
			return err
		}
		tx = tx.Where("section_class_id = ?", classID)
	}

	var rows []model.SectionModel
	if err := tx.Order("section_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch sections")
	}

	out := make([]*dto.SectionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelSection(&rows[i]))
	}
	return helper.JsonOK(c, "Sections fetched", out)
}

// DeleteSection - DELETE /:school_id/sections/:id (soft delete)
func (ctrl *ClassController) DeleteSection(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.
		Where("section_id = ? AND section_school_id = ?", id, schoolID).
		Delete(&model.SectionModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Failed to delete section")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Section not found")
	}

	return helper.JsonDeleted(c, "Section deleted", fiber.Map{"section_id": id})
}

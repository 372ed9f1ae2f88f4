// file: internals/features/school/settings/controller/settings_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "schoolku_backend/internals/features/school/settings/dto"
	model "schoolku_backend/internals/features/school/settings/model"
	helper "schoolku_backend/internals/helpers"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

var validate = validator.New()

// GetSettings - GET /:school_id/settings
// A school without a stored row reports the defaults.
func (ctrl *SettingsController) GetSettings(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var m model.SchoolSettingsModel
	err = ctrl.DB.Where("school_settings_school_id = ?", schoolID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "School settings fetched", &dto.SettingsResponse{
			SchoolID:    schoolID,
			WorkingDays: model.DefaultWorkingDays(),
			UpdatedAt:   time.Time{},
		})
	}
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch school settings")
	}

	return helper.JsonOK(c, "School settings fetched", dto.FromModelSettings(&m))
}

// PutSettings - PUT /:school_id/settings
// Upserts the single settings row of the school.
func (ctrl *SettingsController) PutSettings(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var req dto.PutSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.Normalize(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := model.SchoolSettingsModel{
		SchoolSettingsSchoolID:    schoolID,
		SchoolSettingsWorkingDays: req.WorkingDays,
	}

	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "school_settings_school_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"school_settings_working_days",
			"school_settings_updated_at",
		}),
	}).Create(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to save school settings")
	}

	return helper.JsonUpdated(c, "School settings saved", dto.FromModelSettings(&m))
}

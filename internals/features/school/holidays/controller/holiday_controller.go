// file: internals/features/school/holidays/controller/holiday_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/school/holidays/dto"
	model "schoolku_backend/internals/features/school/holidays/model"
	service "schoolku_backend/internals/features/school/holidays/service"
	helper "schoolku_backend/internals/helpers"
	week "schoolku_backend/internals/helpers/week"
)

type HolidayController struct {
	DB *gorm.DB
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{DB: db}
}

var validate = validator.New()

/* =========================================================
   CREATE - POST /:school_id/holidays
   ========================================================= */

func (ctrl *HolidayController) CreateHoliday(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var req dto.CreateHolidayRequest
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
		return helper.JsonDBError(c, err, "Failed to create holiday")
	}

	return helper.JsonCreated(c, "Holiday created", dto.FromModelHoliday(m))
}

/* =========================================================
   LIST - GET /:school_id/holidays?year=&month=&q=&page=&per_page=
   ========================================================= */

func (ctrl *HolidayController) ListHolidays(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var q dto.ListHolidaysQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query params")
	}
	if err := validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.HolidayModel{}).
		Where("holiday_school_id = ?", schoolID)

	if q.Year != nil {
		start := time.Date(*q.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0).AddDate(0, 0, -1)
		if q.Month != nil {
			start = time.Date(*q.Year, time.Month(*q.Month), 1, 0, 0, 0, 0, time.UTC)
			end = start.AddDate(0, 1, 0).AddDate(0, 0, -1)
		}
		tx = tx.Where("holiday_start_date <= ? AND (holiday_end_date IS NULL OR holiday_end_date >= ?)",
			week.FormatDate(end), week.FormatDate(start))
	}
	if q.Q != nil {
		kw := "%" + strings.TrimSpace(*q.Q) + "%"
		tx = tx.Where("holiday_title ILIKE ?", kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to count holidays")
	}

	var rows []model.HolidayModel
	if err := tx.
		Order("holiday_start_date ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch holidays")
	}

	out := make([]*dto.HolidayResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelHoliday(&rows[i]))
	}

	return helper.JsonList(c, "Holidays fetched", out,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================================================
   DETAIL - GET /:school_id/holidays/:id
   ========================================================= */

func (ctrl *HolidayController) GetHolidayByID(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.HolidayModel
	if err := ctrl.DB.
		Where("holiday_id = ? AND holiday_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch holiday")
	}

	return helper.JsonOK(c, "Holiday fetched", dto.FromModelHoliday(&m))
}

/* =========================================================
   UPDATE - PATCH /:school_id/holidays/:id
   ========================================================= */

func (ctrl *HolidayController) UpdateHoliday(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.PatchHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.HolidayModel
	if err := ctrl.DB.
		Where("holiday_id = ? AND holiday_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch holiday")
	}

	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to update holiday")
	}

	return helper.JsonUpdated(c, "Holiday updated", dto.FromModelHoliday(&m))
}

/* =========================================================
   DELETE - DELETE /:school_id/holidays/:id (soft delete)
   ========================================================= */

func (ctrl *HolidayController) DeleteHoliday(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.
		Where("holiday_id = ? AND holiday_school_id = ?", id, schoolID).
		Delete(&model.HolidayModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Failed to delete holiday")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Holiday not found")
	}

	return helper.JsonDeleted(c, "Holiday deleted", fiber.Map{"holiday_id": id})
}

/* =========================================================
   RANGE - GET /:school_id/holidays/range?start=&end=
   Rows overlapping [start, end]; open-ended rows count as single-day.
   ========================================================= */

func (ctrl *HolidayController) GetHolidaysInRange(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	start, ok := parseQueryDate(c, "start")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "start must be YYYY-MM-DD")
	}
	end, ok := parseQueryDate(c, "end")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "end must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end must not be before start")
	}

	rows, err := service.HolidaysOverlapping(ctrl.DB, schoolID, start, end)
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch holidays")
	}

	out := make([]*dto.HolidayResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelHoliday(&rows[i]))
	}

	return helper.JsonOK(c, "Holidays fetched", fiber.Map{
		"start":    week.FormatDate(start),
		"end":      week.FormatDate(end),
		"holidays": out,
	})
}

func parseQueryDate(c *fiber.Ctx, key string) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return time.Time{}, false
	}
	t, err := week.ParseDate(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

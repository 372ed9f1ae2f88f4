// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "schoolku_backend/internals/features/school/attendance/dto"
	model "schoolku_backend/internals/features/school/attendance/model"
	helper "schoolku_backend/internals/helpers"
	authHelper "schoolku_backend/internals/helpers/auth"
	week "schoolku_backend/internals/helpers/week"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

var markConflict = []clause.Column{
	{Name: "attendance_school_id"},
	{Name: "attendance_class_id"},
	{Name: "attendance_section_id"},
	{Name: "attendance_date"},
	{Name: "attendance_student_id"},
}

// MarkAttendance - POST /:school_id/attendance/mark
// Upserts the whole batch; re-marking a student on the same date
// overwrites the earlier status.
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	teacherID, err := authHelper.GetTeacherIDFromToken(c)
	if err != nil && !authHelper.IsAdmin(c) {
		return err
	}
	var markedBy *uuid.UUID
	if teacherID != uuid.Nil {
		markedBy = &teacherID
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	day, err := week.ParseDate(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	rows := make([]model.AttendanceRecordModel, 0, len(req.Records))
	for _, r := range req.Records {
		rows = append(rows, model.AttendanceRecordModel{
			AttendanceSchoolID:  schoolID,
			AttendanceClassID:   req.ClassID,
			AttendanceSectionID: req.SectionID,
			AttendanceDate:      datatypes.Date(day),
			AttendanceStudentID: r.StudentID,
			AttendanceTeacherID: markedBy,
			AttendanceStatus:    r.Status,
		})
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: markConflict,
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_teacher_id",
				"attendance_status",
				"attendance_updated_at",
			}),
		}).Create(&rows).Error
	})
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to save attendance")
	}

	return helper.JsonOK(c, "Attendance saved", dto.AttendanceMarkResponse{
		Date:  week.FormatDate(day),
		Count: len(rows),
	})
}

// GetAttendance - GET /:school_id/attendance?class_id=&section_id=&date=
func (ctrl *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	classID, err := helper.ParseUUIDQuery(c, "class_id")
	if err != nil {
		return err
	}
	sectionID, err := helper.ParseUUIDQuery(c, "section_id")
	if err != nil {
		return err
	}

	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		day, err = week.ParseDate(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
	}

	var rows []model.AttendanceRecordModel
	if err := ctrl.DB.
		Where("attendance_school_id = ?", schoolID).
		Where("attendance_class_id = ?", classID).
		Where("attendance_section_id = ?", sectionID).
		Where("attendance_date = ?", week.FormatDate(day)).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch attendance")
	}

	return helper.JsonOK(c, "Attendance fetched", fiber.Map{
		"date":    week.FormatDate(week.Truncate(day)),
		"records": rows,
	})
}

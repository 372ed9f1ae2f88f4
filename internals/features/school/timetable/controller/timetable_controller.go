// file: internals/features/school/timetable/controller/timetable_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "schoolku_backend/internals/features/school/classes/model"
	holidayService "schoolku_backend/internals/features/school/holidays/service"
	studentModel "schoolku_backend/internals/features/school/students/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	dto "schoolku_backend/internals/features/school/timetable/dto"
	model "schoolku_backend/internals/features/school/timetable/model"
	service "schoolku_backend/internals/features/school/timetable/service"
	helper "schoolku_backend/internals/helpers"
	authHelper "schoolku_backend/internals/helpers/auth"
	week "schoolku_backend/internals/helpers/week"
)

type TimetableController struct {
	DB *gorm.DB
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db}
}

var validate = validator.New()

/* =========================================================
   Shared parsing
   ========================================================= */

// parseWeekStart reads the week_start query param and normalizes it
// to the Monday on or before it. Missing param defaults to the
// current week.
func parseWeekStart(c *fiber.Ctx) (weekStart string, err error) {
	raw := strings.TrimSpace(c.Query("week_start"))
	if raw == "" {
		return "", nil
	}
	if _, err := week.ParseDate(raw); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "week_start must be YYYY-MM-DD")
	}
	return raw, nil
}

func (ctrl *TimetableController) weekKeyFromQuery(c *fiber.Ctx) (service.WeekKey, error) {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return service.WeekKey{}, err
	}

	classID, err := uuid.Parse(strings.TrimSpace(c.Query("class_id")))
	if err != nil {
		return service.WeekKey{}, fiber.NewError(fiber.StatusBadRequest, "class_id is not a valid UUID")
	}
	sectionID, err := uuid.Parse(strings.TrimSpace(c.Query("section_id")))
	if err != nil {
		return service.WeekKey{}, fiber.NewError(fiber.StatusBadRequest, "section_id is not a valid UUID")
	}

	monday, err := mondayFromQuery(c)
	if err != nil {
		return service.WeekKey{}, err
	}

	return service.WeekKey{
		SchoolID:  schoolID,
		ClassID:   classID,
		SectionID: sectionID,
		WeekStart: monday,
	}, nil
}

func mondayFromQuery(c *fiber.Ctx) (time.Time, error) {
	raw, err := parseWeekStart(c)
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return week.MondayOf(time.Now().UTC()), nil
	}
	d, _ := week.ParseDate(raw)
	return week.MondayOf(d), nil
}

func mondayOfRequest(raw string) (time.Time, error) {
	d, err := week.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("week_start must be YYYY-MM-DD")
	}
	return week.MondayOf(d), nil
}

/* =========================================================
   GET WEEK - GET /:school_id/timetable?class_id=&section_id=&week_start=
   Any date is accepted; the lookup key is its Monday.
   ========================================================= */

func (ctrl *TimetableController) GetWeek(c *fiber.Ctx) error {
	key, err := ctrl.weekKeyFromQuery(c)
	if err != nil {
		return err
	}

	rows, err := service.LoadWeek(ctrl.DB, key)
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch timetable")
	}

	resp := dto.WeekResponse{
		WeekStart:   week.FormatDate(key.WeekStart),
		WeekLabel:   dto.WeekLabelFor(key.WeekStart),
		Entries:     dto.FromModelSlots(rows),
		Grid:        service.BuildGrid(service.EntriesFromModels(rows)),
		BlockedDays: holidayService.BlockedDays(ctrl.DB, key.SchoolID, key.WeekStart),
		Periods:     service.DefaultPeriods(),
	}

	return helper.JsonOK(c, "Timetable fetched", resp)
}

/* =========================================================
   SAVE - POST /:school_id/timetable/save
   Validates every entry first; a single bad slot rejects the whole
   batch. Duplicate (day, period) keys collapse to the last one.
   ========================================================= */

func (ctrl *TimetableController) SaveWeek(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var req dto.SaveTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationErrorWithStatus(c, fiber.StatusBadRequest, err)
	}

	monday, err := mondayOfRequest(req.WeekStart)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	entries := make([]service.Entry, 0, len(req.Entries))
	for _, s := range req.Entries {
		entries = append(entries, s.ToEntry())
	}
	if err := service.ValidateEntries(entries); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	entries = service.DedupeLastWins(entries)

	key := service.WeekKey{
		SchoolID:  schoolID,
		ClassID:   req.ClassID,
		SectionID: req.SectionID,
		WeekStart: monday,
	}

	var createdBy *uuid.UUID
	if uid, err := authHelper.GetUserIDFromToken(c); err == nil {
		createdBy = &uid
	}

	if err := service.SaveWeek(ctrl.DB, key, entries, createdBy); err != nil {
		return helper.JsonDBError(c, err, "Failed to save timetable")
	}

	return helper.JsonOK(c, "Timetable saved", fiber.Map{
		"week_start":  week.FormatDate(monday),
		"saved_count": len(entries),
	})
}

/* =========================================================
   COPY PREVIOUS - POST /:school_id/timetable/copy-previous
   An empty prior week copies zero slots and still succeeds.
   ========================================================= */

func (ctrl *TimetableController) CopyPreviousWeek(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var req dto.WeekOpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationErrorWithStatus(c, fiber.StatusBadRequest, err)
	}

	monday, err := mondayOfRequest(req.WeekStart)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	key := service.WeekKey{
		SchoolID:  schoolID,
		ClassID:   req.ClassID,
		SectionID: req.SectionID,
		WeekStart: monday,
	}

	var createdBy *uuid.UUID
	if uid, err := authHelper.GetUserIDFromToken(c); err == nil {
		createdBy = &uid
	}

	copied, err := service.CopyPreviousWeek(ctrl.DB, key, createdBy)
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to copy previous week")
	}

	return helper.JsonOK(c, "Previous week copied", fiber.Map{
		"week_start":   week.FormatDate(monday),
		"copied_count": copied,
	})
}

/* =========================================================
   CLEAR WEEK - POST /:school_id/timetable/clear-week
   Idempotent: clearing an empty week succeeds.
   ========================================================= */

func (ctrl *TimetableController) ClearWeek(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var req dto.WeekOpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationErrorWithStatus(c, fiber.StatusBadRequest, err)
	}

	monday, err := mondayOfRequest(req.WeekStart)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	deleted, err := service.ClearWeek(ctrl.DB, service.WeekKey{
		SchoolID:  schoolID,
		ClassID:   req.ClassID,
		SectionID: req.SectionID,
		WeekStart: monday,
	})
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to clear week")
	}

	return helper.JsonOK(c, "Week cleared", fiber.Map{
		"week_start":    week.FormatDate(monday),
		"deleted_count": deleted,
	})
}

/* =========================================================
   META - GET /:school_id/timetable/meta
   Teacher picklist + the bell schedule.
   ========================================================= */

func (ctrl *TimetableController) GetMeta(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var teachers []teacherModel.TeacherModel
	if err := ctrl.DB.
		Where("teacher_school_id = ? AND teacher_is_active = TRUE", schoolID).
		Order("teacher_first_name ASC").
		Find(&teachers).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch teachers")
	}

	meta := dto.MetaResponse{
		Teachers: make([]dto.MetaTeacher, 0, len(teachers)),
		Periods:  service.DefaultPeriods(),
	}
	for i := range teachers {
		t := &teachers[i]
		meta.Teachers = append(meta.Teachers, dto.MetaTeacher{
			TeacherID: t.TeacherID,
			FullName:  strings.TrimSpace(t.TeacherFirstName + " " + t.TeacherLastName),
		})
	}

	return helper.JsonOK(c, "Timetable meta fetched", meta)
}

/* =========================================================
   BLOCKED DAYS - GET /:school_id/timetable/blocked-days?week_start=
   ========================================================= */

func (ctrl *TimetableController) GetBlockedDays(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	monday, err := mondayFromQuery(c)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Blocked days fetched", fiber.Map{
		"week_start":   week.FormatDate(monday),
		"blocked_days": holidayService.BlockedDays(ctrl.DB, schoolID, monday),
	})
}

/* =========================================================
   FOR TEACHER - GET /:school_id/timetable/for-teacher?week_start=
   The teacher is resolved from the token; admins may pass
   ?teacher_id= explicitly.
   ========================================================= */

func (ctrl *TimetableController) ForTeacher(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	teacherID, err := authHelper.GetTeacherIDFromToken(c)
	if err != nil {
		if !authHelper.IsAdmin(c) {
			return err
		}
		teacherID, err = uuid.Parse(strings.TrimSpace(c.Query("teacher_id")))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "teacher_id is required")
		}
	}

	monday, err := mondayFromQuery(c)
	if err != nil {
		return err
	}

	rows, err := service.ForTeacher(ctrl.DB, schoolID, teacherID, monday)
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch teacher timetable")
	}

	out := make([]dto.PersonalSlot, 0, len(rows))
	classNames, sectionNames := ctrl.displayNames(rows)
	for i := range rows {
		r := &rows[i]
		out = append(out, dto.PersonalSlot{
			DayOfWeek:   r.TimetableDayOfWeek,
			PeriodNo:    r.TimetablePeriodNo,
			StartTime:   r.TimetableStartTime,
			EndTime:     r.TimetableEndTime,
			Notes:       r.TimetableNotes,
			ClassID:     r.TimetableClassID,
			SectionID:   r.TimetableSectionID,
			ClassName:   classNames[r.TimetableClassID],
			SectionName: sectionNames[r.TimetableSectionID],
		})
	}

	return helper.JsonOK(c, "Teacher timetable fetched", fiber.Map{
		"week_start": week.FormatDate(monday),
		"entries":    out,
	})
}

/* =========================================================
   FOR STUDENT - GET /:school_id/timetable/for-student?week_start=
   The student's class/section comes from their own record.
   ========================================================= */

func (ctrl *TimetableController) ForStudent(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	// explicit class/section for admins; students fall back to their
	// own record
	var classID, sectionID uuid.UUID
	if c.Query("class_id") != "" && c.Query("section_id") != "" && authHelper.IsAdmin(c) {
		if classID, err = helper.ParseUUIDQuery(c, "class_id"); err != nil {
			return err
		}
		if sectionID, err = helper.ParseUUIDQuery(c, "section_id"); err != nil {
			return err
		}
	} else {
		studentID, err := authHelper.GetStudentIDFromToken(c)
		if err != nil {
			return err
		}

		var student studentModel.StudentModel
		if err := ctrl.DB.
			Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
			First(&student).Error; err != nil {
			return helper.JsonDBError(c, err, "Failed to resolve student record")
		}
		classID = student.StudentClassID
		sectionID = student.StudentSectionID
	}

	monday, err := mondayFromQuery(c)
	if err != nil {
		return err
	}

	rows, err := service.ForSection(ctrl.DB, schoolID, classID, sectionID, monday)
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch student timetable")
	}

	teacherNames := ctrl.teacherNames(rows)
	classNames, sectionNames := ctrl.displayNames(rows)

	out := make([]dto.PersonalSlot, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		slot := dto.PersonalSlot{
			DayOfWeek:   r.TimetableDayOfWeek,
			PeriodNo:    r.TimetablePeriodNo,
			StartTime:   r.TimetableStartTime,
			EndTime:     r.TimetableEndTime,
			Notes:       r.TimetableNotes,
			ClassID:     r.TimetableClassID,
			SectionID:   r.TimetableSectionID,
			ClassName:   classNames[r.TimetableClassID],
			SectionName: sectionNames[r.TimetableSectionID],
			TeacherID:   r.TimetableTeacherID,
		}
		if r.TimetableTeacherID != nil {
			slot.TeacherName = teacherNames[*r.TimetableTeacherID]
		}
		out = append(out, slot)
	}

	return helper.JsonOK(c, "Student timetable fetched", fiber.Map{
		"week_start": week.FormatDate(monday),
		"entries":    out,
	})
}

/* =========================================================
   Display-name lookups (batch, best effort)
   ========================================================= */

func (ctrl *TimetableController) displayNames(rows []model.TimetableEntryModel) (classes, sections map[uuid.UUID]string) {
	classes = map[uuid.UUID]string{}
	sections = map[uuid.UUID]string{}

	classIDs := map[uuid.UUID]bool{}
	sectionIDs := map[uuid.UUID]bool{}
	for i := range rows {
		classIDs[rows[i].TimetableClassID] = true
		sectionIDs[rows[i].TimetableSectionID] = true
	}
	if len(classIDs) == 0 {
		return
	}

	var cls []classModel.ClassModel
	if err := ctrl.DB.Where("class_id IN ?", keys(classIDs)).Find(&cls).Error; err == nil {
		for i := range cls {
			classes[cls[i].ClassID] = cls[i].ClassName
		}
	}
	var secs []classModel.SectionModel
	if err := ctrl.DB.Where("section_id IN ?", keys(sectionIDs)).Find(&secs).Error; err == nil {
		for i := range secs {
			sections[secs[i].SectionID] = secs[i].SectionName
		}
	}
	return
}

func (ctrl *TimetableController) teacherNames(rows []model.TimetableEntryModel) map[uuid.UUID]string {
	out := map[uuid.UUID]string{}

	ids := map[uuid.UUID]bool{}
	for i := range rows {
		if rows[i].TimetableTeacherID != nil {
			ids[*rows[i].TimetableTeacherID] = true
		}
	}
	if len(ids) == 0 {
		return out
	}

	var ts []teacherModel.TeacherModel
	if err := ctrl.DB.Where("teacher_id IN ?", keys(ids)).Find(&ts).Error; err == nil {
		for i := range ts {
			t := &ts[i]
			out[t.TeacherID] = strings.TrimSpace(t.TeacherFirstName + " " + t.TeacherLastName)
		}
	}
	return out
}

func keys(set map[uuid.UUID]bool) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

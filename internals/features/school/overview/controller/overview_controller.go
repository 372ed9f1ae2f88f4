// file: internals/features/school/overview/controller/overview_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	classModel "schoolku_backend/internals/features/school/classes/model"
	dto "schoolku_backend/internals/features/school/overview/dto"
	studentModel "schoolku_backend/internals/features/school/students/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	timetableDTO "schoolku_backend/internals/features/school/timetable/dto"
	tModel "schoolku_backend/internals/features/school/timetable/model"
	timetableService "schoolku_backend/internals/features/school/timetable/service"
	helper "schoolku_backend/internals/helpers"
	authHelper "schoolku_backend/internals/helpers/auth"
	week "schoolku_backend/internals/helpers/week"
)

type OverviewController struct {
	DB *gorm.DB
}

func NewOverviewController(db *gorm.DB) *OverviewController {
	return &OverviewController{DB: db}
}

/* =========================================================
   ADMIN OVERVIEW - GET /:school_id/overview
   Aggregate counts for the dashboard cards.
   ========================================================= */

func (ctrl *OverviewController) AdminOverview(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var resp dto.AdminOverviewResponse

	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_school_id = ? AND student_status = ?", schoolID, "active").
		Count(&resp.Students).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to count students")
	}
	if err := ctrl.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_school_id = ? AND teacher_is_active = TRUE", schoolID).
		Count(&resp.Teachers).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to count teachers")
	}
	if err := ctrl.DB.Model(&classModel.ClassModel{}).
		Where("class_school_id = ?", schoolID).
		Count(&resp.Classes).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to count classes")
	}
	if err := ctrl.DB.Model(&classModel.SectionModel{}).
		Where("section_school_id = ?", schoolID).
		Count(&resp.Sections).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to count sections")
	}

	return helper.JsonOK(c, "Overview fetched", resp)
}

/* =========================================================
   TEACHER TODAY - GET /:school_id/overview/teacher-today
   Today's classes for the signed-in teacher, in period order.
   ========================================================= */

func (ctrl *OverviewController) TeacherToday(c *fiber.Ctx) error {
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

	now := time.Now().UTC()
	monday := week.MondayOf(now)
	today := week.DayIndex(now)

	rows, err := timetableService.ForTeacher(ctrl.DB, schoolID, teacherID, monday)
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch today's schedule")
	}
	rows = onDay(rows, today)

	classNames, sectionNames := ctrl.displayNames(rows)
	schedule := make([]timetableDTO.PersonalSlot, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		schedule = append(schedule, timetableDTO.PersonalSlot{
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

	return helper.JsonOK(c, "Today's schedule fetched", dto.TeacherTodayResponse{
		ClassesCount: len(schedule),
		// pending attendance approximated by today's class count
		PendingCount: len(schedule),
		Schedule:     schedule,
	})
}

/* =========================================================
   STUDENT TODAY - GET /:school_id/overview/student-today
   Today's classes plus a month-to-date attendance summary.
   ========================================================= */

func (ctrl *OverviewController) StudentToday(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

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

	now := time.Now().UTC()
	monday := week.MondayOf(now)
	today := week.DayIndex(now)

	rows, err := timetableService.ForSection(ctrl.DB, schoolID, student.StudentClassID, student.StudentSectionID, monday)
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch today's schedule")
	}
	rows = onDay(rows, today)

	classNames, sectionNames := ctrl.displayNames(rows)
	teacherNames := ctrl.teacherNames(rows)
	schedule := make([]timetableDTO.PersonalSlot, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		slot := timetableDTO.PersonalSlot{
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
		schedule = append(schedule, slot)
	}

	summary, err := ctrl.monthAttendance(schoolID, studentID, now)
	if err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch attendance summary")
	}

	return helper.JsonOK(c, "Today's overview fetched", dto.StudentTodayResponse{
		ClassesCount: len(schedule),
		Schedule:     schedule,
		Attendance:   summary,
	})
}

func (ctrl *OverviewController) monthAttendance(schoolID, studentID uuid.UUID, now time.Time) (dto.AttendanceSummary, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var out dto.AttendanceSummary
	base := func() *gorm.DB {
		return ctrl.DB.Model(&attendanceModel.AttendanceRecordModel{}).
			Where("attendance_school_id = ? AND attendance_student_id = ?", schoolID, studentID).
			Where("attendance_date >= ? AND attendance_date < ?",
				week.FormatDate(monthStart), week.FormatDate(monthEnd))
	}
	if err := base().Where("attendance_status = ?", attendanceModel.StatusPresent).
		Count(&out.Present).Error; err != nil {
		return out, err
	}
	if err := base().Where("attendance_status = ?", attendanceModel.StatusAbsent).
		Count(&out.Absent).Error; err != nil {
		return out, err
	}
	return out, nil
}

/* =========================================================
   STUDENT LISTINGS
   GET /:school_id/students/peers        (any student)
   GET /:school_id/students/for-teacher  (any teacher)
   Same filtered listing, gated by who is asking.
   ========================================================= */

func (ctrl *OverviewController) StudentPeers(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	if _, err := authHelper.GetStudentIDFromToken(c); err != nil && !authHelper.IsAdmin(c) {
		return err
	}
	return ctrl.listStudents(c, schoolID)
}

func (ctrl *OverviewController) TeacherStudents(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	if _, err := authHelper.GetTeacherIDFromToken(c); err != nil && !authHelper.IsAdmin(c) {
		return err
	}
	return ctrl.listStudents(c, schoolID)
}

func (ctrl *OverviewController) listStudents(c *fiber.Ctx, schoolID uuid.UUID) error {
	p := helper.ResolvePaging(c, 10, 100)

	tx := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_school_id = ?", schoolID)

	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_id is not a valid UUID")
		}
		tx = tx.Where("student_class_id = ?", classID)
	}
	if raw := strings.TrimSpace(c.Query("section_id")); raw != "" {
		sectionID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "section_id is not a valid UUID")
		}
		tx = tx.Where("student_section_id = ?", sectionID)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pat := "%" + q + "%"
		tx = tx.Where("student_first_name ILIKE ? OR student_last_name ILIKE ?", pat, pat)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to count students")
	}

	var rows []studentModel.StudentModel
	if err := tx.
		Order("student_first_name ASC, student_last_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Failed to fetch students")
	}

	out := make([]dto.PeerResponse, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		out = append(out, dto.PeerResponse{
			StudentID: r.StudentID,
			FirstName: r.StudentFirstName,
			LastName:  r.StudentLastName,
			ClassID:   r.StudentClassID,
			SectionID: r.StudentSectionID,
		})
	}

	return helper.JsonList(c, "Students fetched", out,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================================================
   Display-name lookups (batch, best effort)
   ========================================================= */

func onDay(rows []tModel.TimetableEntryModel, day int) []tModel.TimetableEntryModel {
	out := rows[:0]
	for i := range rows {
		if rows[i].TimetableDayOfWeek == day {
			out = append(out, rows[i])
		}
	}
	return out
}

func (ctrl *OverviewController) displayNames(rows []tModel.TimetableEntryModel) (classes, sections map[uuid.UUID]string) {
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
	if err := ctrl.DB.Where("class_id IN ?", setKeys(classIDs)).Find(&cls).Error; err == nil {
		for i := range cls {
			classes[cls[i].ClassID] = cls[i].ClassName
		}
	}
	var secs []classModel.SectionModel
	if err := ctrl.DB.Where("section_id IN ?", setKeys(sectionIDs)).Find(&secs).Error; err == nil {
		for i := range secs {
			sections[secs[i].SectionID] = secs[i].SectionName
		}
	}
	return
}

func (ctrl *OverviewController) teacherNames(rows []tModel.TimetableEntryModel) map[uuid.UUID]string {
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
	if err := ctrl.DB.Where("teacher_id IN ?", setKeys(ids)).Find(&ts).Error; err == nil {
		for i := range ts {
			t := &ts[i]
			out[t.TeacherID] = strings.TrimSpace(t.TeacherFirstName + " " + t.TeacherLastName)
		}
	}
	return out
}

func setKeys(set map[uuid.UUID]bool) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// file: internals/features/school/timetable/dto/timetable_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	holidayService "schoolku_backend/internals/features/school/holidays/service"
	model "schoolku_backend/internals/features/school/timetable/model"
	service "schoolku_backend/internals/features/school/timetable/service"
	week "schoolku_backend/internals/helpers/week"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type SlotInput struct {
	DayOfWeek int        `json:"day_of_week" validate:"required,min=1,max=7"`
	PeriodNo  int        `json:"period_no" validate:"required,min=1"`
	TeacherID *uuid.UUID `json:"teacher_id"`
	StartTime string     `json:"start_time" validate:"required"`
	EndTime   string     `json:"end_time" validate:"required"`
	Notes     *string    `json:"notes" validate:"omitempty,max=500"`
}

func (s SlotInput) ToEntry() service.Entry {
	return service.Entry{
		DayOfWeek: s.DayOfWeek,
		PeriodNo:  s.PeriodNo,
		TeacherID: s.TeacherID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Notes:     s.Notes,
	}
}

type SaveTimetableRequest struct {
	ClassID   uuid.UUID   `json:"class_id" validate:"required"`
	SectionID uuid.UUID   `json:"section_id" validate:"required"`
	WeekStart string      `json:"week_start" validate:"required,datetime=2006-01-02"`
	Entries   []SlotInput `json:"entries" validate:"required,dive"`
}

// WeekOpRequest keys copy-previous and clear-week.
type WeekOpRequest struct {
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	SectionID uuid.UUID `json:"section_id" validate:"required"`
	WeekStart string    `json:"week_start" validate:"required,datetime=2006-01-02"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type SlotResponse struct {
	DayOfWeek int        `json:"day_of_week"`
	PeriodNo  int        `json:"period_no"`
	TeacherID *uuid.UUID `json:"teacher_id"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
	Notes     *string    `json:"notes,omitempty"`
}

func FromModelSlot(m *model.TimetableEntryModel) SlotResponse {
	return SlotResponse{
		DayOfWeek: m.TimetableDayOfWeek,
		PeriodNo:  m.TimetablePeriodNo,
		TeacherID: m.TimetableTeacherID,
		StartTime: m.TimetableStartTime,
		EndTime:   m.TimetableEndTime,
		Notes:     m.TimetableNotes,
	}
}

func FromModelSlots(rows []model.TimetableEntryModel) []SlotResponse {
	out := make([]SlotResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelSlot(&rows[i]))
	}
	return out
}

// WeekResponse is the admin grid view. Entries holds only the saved
// slots; Grid is the full 7-day x period matrix with unsaved cells
// defaulted to the catalog bounds.
type WeekResponse struct {
	WeekStart   string                      `json:"week_start"`
	WeekLabel   string                      `json:"week_label"`
	Entries     []SlotResponse              `json:"entries"`
	Grid        []service.Entry             `json:"grid"`
	BlockedDays []holidayService.BlockedDay `json:"blocked_days"`
	Periods     []service.Period            `json:"periods"`
}

// PersonalSlot decorates a slot with display names for the teacher
// and student views.
type PersonalSlot struct {
	DayOfWeek   int        `json:"day_of_week"`
	PeriodNo    int        `json:"period_no"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Notes       *string    `json:"notes,omitempty"`
	ClassID     uuid.UUID  `json:"class_id"`
	SectionID   uuid.UUID  `json:"section_id"`
	ClassName   string     `json:"class_name,omitempty"`
	SectionName string     `json:"section_name,omitempty"`
	TeacherID   *uuid.UUID `json:"teacher_id,omitempty"`
	TeacherName string     `json:"teacher_name,omitempty"`
}

// MetaResponse feeds the grid editor: teacher picklist + bell schedule.
type MetaResponse struct {
	Teachers []MetaTeacher    `json:"teachers"`
	Periods  []service.Period `json:"periods"`
}

type MetaTeacher struct {
	TeacherID uuid.UUID `json:"teacher_id"`
	FullName  string    `json:"full_name"`
}

// WeekLabelFor renders the display label of a Monday.
func WeekLabelFor(monday time.Time) string {
	return week.FormatWithWeekday(monday)
}

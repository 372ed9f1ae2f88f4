// file: internals/features/school/timetable/model/timetable_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimetableEntryModel is one filled slot of a weekly grid. A slot is
// addressed by (school, class, section, week_start, day_of_week,
// period_no); week_start is always a Monday and day_of_week runs
// 1=Monday .. 7=Sunday.
type TimetableEntryModel struct {
	TimetableID uuid.UUID `gorm:"column:timetable_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_id"`

	TimetableSchoolID  uuid.UUID `gorm:"column:timetable_school_id;type:uuid;not null;uniqueIndex:uq_timetable_slot,priority:1" json:"timetable_school_id"`
	TimetableClassID   uuid.UUID `gorm:"column:timetable_class_id;type:uuid;not null;uniqueIndex:uq_timetable_slot,priority:2" json:"timetable_class_id"`
	TimetableSectionID uuid.UUID `gorm:"column:timetable_section_id;type:uuid;not null;uniqueIndex:uq_timetable_slot,priority:3" json:"timetable_section_id"`

	TimetableWeekStart datatypes.Date `gorm:"column:timetable_week_start;type:date;not null;uniqueIndex:uq_timetable_slot,priority:4" json:"timetable_week_start"`
	TimetableDayOfWeek int            `gorm:"column:timetable_day_of_week;not null;uniqueIndex:uq_timetable_slot,priority:5" json:"timetable_day_of_week"`
	TimetablePeriodNo  int            `gorm:"column:timetable_period_no;not null;uniqueIndex:uq_timetable_slot,priority:6" json:"timetable_period_no"`

	TimetableTeacherID *uuid.UUID `gorm:"column:timetable_teacher_id;type:uuid;index" json:"timetable_teacher_id,omitempty"`

	TimetableStartTime string `gorm:"column:timetable_start_time;type:varchar(5);not null" json:"timetable_start_time"` // HH:MM
	TimetableEndTime   string `gorm:"column:timetable_end_time;type:varchar(5);not null" json:"timetable_end_time"`     // HH:MM

	TimetableNotes *string `gorm:"column:timetable_notes;type:text" json:"timetable_notes,omitempty"`

	TimetableCreatedBy *uuid.UUID `gorm:"column:timetable_created_by;type:uuid" json:"timetable_created_by,omitempty"`

	// Hard-deleted on clear-week; the slot unique index must stay
	// free for the next save.
	TimetableCreatedAt time.Time `gorm:"column:timetable_created_at;autoCreateTime" json:"timetable_created_at"`
	TimetableUpdatedAt time.Time `gorm:"column:timetable_updated_at;autoUpdateTime" json:"timetable_updated_at"`
}

func (TimetableEntryModel) TableName() string {
	return "timetable_entries"
}

func (m *TimetableEntryModel) WeekStartTime() time.Time {
	return time.Time(m.TimetableWeekStart)
}

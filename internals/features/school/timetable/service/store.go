// file: internals/features/school/timetable/service/store.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "schoolku_backend/internals/features/school/timetable/model"
	week "schoolku_backend/internals/helpers/week"
)

// WeekKey addresses one class/section grid for one Monday.
type WeekKey struct {
	SchoolID  uuid.UUID
	ClassID   uuid.UUID
	SectionID uuid.UUID
	WeekStart time.Time // normalized to Monday by the caller
}

// slotConflict is the upsert conflict target: the natural key of a slot.
var slotConflict = []clause.Column{
	{Name: "timetable_school_id"},
	{Name: "timetable_class_id"},
	{Name: "timetable_section_id"},
	{Name: "timetable_week_start"},
	{Name: "timetable_day_of_week"},
	{Name: "timetable_period_no"},
}

// EntriesFromModels detaches stored rows into plain entries, keeping
// the (day, period) order of the input.
func EntriesFromModels(rows []model.TimetableEntryModel) []Entry {
	out := make([]Entry, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		out = append(out, Entry{
			DayOfWeek: r.TimetableDayOfWeek,
			PeriodNo:  r.TimetablePeriodNo,
			TeacherID: r.TimetableTeacherID,
			StartTime: r.TimetableStartTime,
			EndTime:   r.TimetableEndTime,
			Notes:     r.TimetableNotes,
		})
	}
	return out
}

// LoadWeek fetches the saved slots for a week key, ordered by
// (day, period).
func LoadWeek(db *gorm.DB, key WeekKey) ([]model.TimetableEntryModel, error) {
	var rows []model.TimetableEntryModel
	err := weekScope(db, key).
		Order("timetable_day_of_week ASC, timetable_period_no ASC").
		Find(&rows).Error
	return rows, err
}

// SaveWeek upserts a validated, deduped batch in one transaction:
// either every slot lands or none do. Existing rows at the same
// natural key are overwritten (last writer wins).
func SaveWeek(db *gorm.DB, key WeekKey, entries []Entry, createdBy *uuid.UUID) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]model.TimetableEntryModel, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, model.TimetableEntryModel{
			TimetableSchoolID:  key.SchoolID,
			TimetableClassID:   key.ClassID,
			TimetableSectionID: key.SectionID,
			TimetableWeekStart: datatypes.Date(key.WeekStart),
			TimetableDayOfWeek: e.DayOfWeek,
			TimetablePeriodNo:  e.PeriodNo,
			TimetableTeacherID: e.TeacherID,
			TimetableStartTime: e.StartTime,
			TimetableEndTime:   e.EndTime,
			TimetableNotes:     e.Notes,
			TimetableCreatedBy: createdBy,
		})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: slotConflict,
			DoUpdates: clause.AssignmentColumns([]string{
				"timetable_teacher_id",
				"timetable_start_time",
				"timetable_end_time",
				"timetable_notes",
				"timetable_updated_at",
			}),
		}).Create(&rows).Error
	})
}

// CopyPreviousWeek re-keys the prior week's slots onto this week and
// upserts them. An empty prior week copies nothing and is not an
// error.
func CopyPreviousWeek(db *gorm.DB, key WeekKey, createdBy *uuid.UUID) (int, error) {
	prev := key
	prev.WeekStart = week.AddDays(key.WeekStart, -7)

	prior, err := LoadWeek(db, prev)
	if err != nil {
		return 0, err
	}
	if len(prior) == 0 {
		return 0, nil
	}

	entries := EntriesFromModels(prior)

	if err := SaveWeek(db, key, entries, createdBy); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// ClearWeek hard-deletes every slot of the week. Clearing an empty
// week is a no-op.
func ClearWeek(db *gorm.DB, key WeekKey) (int64, error) {
	res := weekScope(db, key).Delete(&model.TimetableEntryModel{})
	return res.RowsAffected, res.Error
}

func weekScope(db *gorm.DB, key WeekKey) *gorm.DB {
	return db.
		Where("timetable_school_id = ?", key.SchoolID).
		Where("timetable_class_id = ?", key.ClassID).
		Where("timetable_section_id = ?", key.SectionID).
		Where("timetable_week_start = ?", week.FormatDate(key.WeekStart))
}

// ForTeacher returns every slot across all class/sections taught by
// one teacher in the week, ordered by (day, period).
func ForTeacher(db *gorm.DB, schoolID, teacherID uuid.UUID, weekStart time.Time) ([]model.TimetableEntryModel, error) {
	var rows []model.TimetableEntryModel
	err := db.
		Where("timetable_school_id = ?", schoolID).
		Where("timetable_teacher_id = ?", teacherID).
		Where("timetable_week_start = ?", week.FormatDate(weekStart)).
		Order("timetable_day_of_week ASC, timetable_period_no ASC").
		Find(&rows).Error
	return rows, err
}

// ForSection returns the week's slots for one (class, section), the
// student-facing projection.
func ForSection(db *gorm.DB, schoolID, classID, sectionID uuid.UUID, weekStart time.Time) ([]model.TimetableEntryModel, error) {
	return LoadWeek(db, WeekKey{
		SchoolID:  schoolID,
		ClassID:   classID,
		SectionID: sectionID,
		WeekStart: weekStart,
	})
}

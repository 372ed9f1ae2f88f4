// file: internals/features/school/holidays/service/overlay.go
package service

import (
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "schoolku_backend/internals/features/school/holidays/model"
	settingsModel "schoolku_backend/internals/features/school/settings/model"
	week "schoolku_backend/internals/helpers/week"
)

// BlockedDay is one non-schedulable day inside a week grid.
type BlockedDay struct {
	DayOfWeek int    `json:"day_of_week"` // 1=Monday .. 7=Sunday
	Date      string `json:"date"`        // YYYY-MM-DD
	Reason    string `json:"reason"`      // holiday title, or "Non-working day"
}

// BlockedDaysFrom computes the blocked days of the week starting at
// weekStart (a Monday). Non-working day indexes are always blocked;
// holidays that overlap the week block the specific dates they cover.
// Holiday reasons win over the generic non-working label.
func BlockedDaysFrom(holidays []model.HolidayModel, nonWorking []int64, weekStart time.Time) []BlockedDay {
	weekStart = week.Truncate(weekStart)
	weekEnd := week.AddDays(weekStart, 6)

	byDay := make(map[int]BlockedDay, 7)

	for _, d := range nonWorking {
		if d < 1 || d > 7 {
			continue
		}
		idx := int(d)
		date := week.AddDays(weekStart, idx-1)
		byDay[idx] = BlockedDay{
			DayOfWeek: idx,
			Date:      week.FormatDate(date),
			Reason:    "Non-working day",
		}
	}

	for i := range holidays {
		h := &holidays[i]
		start := week.Truncate(h.StartTime())
		end := week.Truncate(h.EndTime())
		if end.Before(weekStart) || start.After(weekEnd) {
			continue
		}
		if start.Before(weekStart) {
			start = weekStart
		}
		if end.After(weekEnd) {
			end = weekEnd
		}
		for d := start; !d.After(end); d = week.AddDays(d, 1) {
			idx := week.DayIndex(d)
			byDay[idx] = BlockedDay{
				DayOfWeek: idx,
				Date:      week.FormatDate(d),
				Reason:    h.HolidayTitle,
			}
		}
	}

	out := make([]BlockedDay, 0, len(byDay))
	for _, b := range byDay {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out
}

// HolidaysOverlapping loads the school's holidays that touch [start, end].
// Open-ended rows (no end date) count as single-day.
func HolidaysOverlapping(db *gorm.DB, schoolID uuid.UUID, start, end time.Time) ([]model.HolidayModel, error) {
	var rows []model.HolidayModel
	err := db.
		Where("holiday_school_id = ?", schoolID).
		Where("holiday_start_date <= ? AND (holiday_end_date IS NULL OR holiday_end_date >= ?)",
			week.FormatDate(end), week.FormatDate(start)).
		Order("holiday_start_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// WorkingDays returns the school's configured working day indexes,
// falling back to Monday..Friday when no settings row exists.
func WorkingDays(db *gorm.DB, schoolID uuid.UUID) []int64 {
	var s settingsModel.SchoolSettingsModel
	err := db.Where("school_settings_school_id = ?", schoolID).First(&s).Error
	if err != nil || len(s.SchoolSettingsWorkingDays) == 0 {
		return settingsModel.DefaultWorkingDays()
	}
	return s.SchoolSettingsWorkingDays
}

// BlockedDays is the DB-backed entrypoint used by the timetable views.
// Lookup failures degrade to the weekend-only overlay instead of
// failing the whole request.
func BlockedDays(db *gorm.DB, schoolID uuid.UUID, weekStart time.Time) []BlockedDay {
	weekStart = week.MondayOf(weekStart)
	weekEnd := week.AddDays(weekStart, 6)

	nonWorking := nonWorkingFrom(WorkingDays(db, schoolID))

	holidays, err := HolidaysOverlapping(db, schoolID, weekStart, weekEnd)
	if err != nil {
		log.Printf("[ERROR] holiday overlay lookup failed (school=%s): %v", schoolID, err)
		holidays = nil
	}

	return BlockedDaysFrom(holidays, nonWorking, weekStart)
}

func nonWorkingFrom(working []int64) []int64 {
	set := make(map[int64]bool, len(working))
	for _, d := range working {
		set[d] = true
	}
	var out []int64
	for d := int64(1); d <= 7; d++ {
		if !set[d] {
			out = append(out, d)
		}
	}
	return out
}

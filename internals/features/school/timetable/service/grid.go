// file: internals/features/school/timetable/service/grid.go
package service

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/google/uuid"
)

// Entry is one slot of a weekly grid, detached from storage.
type Entry struct {
	DayOfWeek int        `json:"day_of_week"` // 1=Monday .. 7=Sunday
	PeriodNo  int        `json:"period_no"`
	TeacherID *uuid.UUID `json:"teacher_id"`
	StartTime string     `json:"start_time"` // HH:MM
	EndTime   string     `json:"end_time"`   // HH:MM
	Notes     *string    `json:"notes,omitempty"`
}

var hhmmRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ValidateEntry applies the per-slot rules: day range, zero-padded
// HH:MM times, end strictly after start. Fixed-width HH:MM makes the
// lexicographic comparison correct.
func ValidateEntry(e Entry) error {
	if e.DayOfWeek < 1 || e.DayOfWeek > 7 {
		return fmt.Errorf("day_of_week must be between 1 and 7")
	}
	if e.PeriodNo < 1 {
		return fmt.Errorf("period_no must be >= 1")
	}
	if !hhmmRe.MatchString(e.StartTime) || !hhmmRe.MatchString(e.EndTime) {
		return fmt.Errorf("invalid time format (expected HH:MM)")
	}
	if e.EndTime <= e.StartTime {
		return fmt.Errorf("end_time must be greater than start_time")
	}
	return nil
}

// ValidateEntries checks every entry before anything is written, so a
// bad slot rejects the whole batch.
func ValidateEntries(entries []Entry) error {
	for i, e := range entries {
		if err := ValidateEntry(e); err != nil {
			return fmt.Errorf("entries[%d]: %w", i, err)
		}
	}
	return nil
}

// DedupeLastWins collapses duplicate (day, period) keys within one
// batch, keeping the last occurrence. Relative order of the surviving
// entries follows their last appearance.
func DedupeLastWins(entries []Entry) []Entry {
	type key struct{ day, period int }
	seen := make(map[key]int, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		k := key{e.DayOfWeek, e.PeriodNo}
		if idx, ok := seen[k]; ok {
			out[idx] = e
			continue
		}
		seen[k] = len(out)
		out = append(out, e)
	}
	return out
}

// SortEntries orders by (day_of_week, period_no) ascending.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DayOfWeek != entries[j].DayOfWeek {
			return entries[i].DayOfWeek < entries[j].DayOfWeek
		}
		return entries[i].PeriodNo < entries[j].PeriodNo
	})
}

// BuildGrid merges saved entries onto a full 7-day x catalog matrix.
// Missing cells default to the catalog's period bounds with no
// teacher assigned.
func BuildGrid(saved []Entry) []Entry {
	type key struct{ day, period int }
	byKey := make(map[key]Entry, len(saved))
	for _, e := range saved {
		byKey[key{e.DayOfWeek, e.PeriodNo}] = e
	}

	periods := DefaultPeriods()
	out := make([]Entry, 0, 7*len(periods))
	for day := 1; day <= 7; day++ {
		for _, p := range periods {
			if e, ok := byKey[key{day, p.PeriodNo}]; ok {
				out = append(out, e)
				continue
			}
			out = append(out, Entry{
				DayOfWeek: day,
				PeriodNo:  p.PeriodNo,
				StartTime: p.StartTime,
				EndTime:   p.EndTime,
			})
		}
	}
	return out
}

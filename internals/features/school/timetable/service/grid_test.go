package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(day, period int, start, end string) Entry {
	return Entry{DayOfWeek: day, PeriodNo: period, StartTime: start, EndTime: end}
}

func TestValidateEntry(t *testing.T) {
	cases := []struct {
		name    string
		e       Entry
		wantErr string
	}{
		{"valid", entry(1, 1, "08:00", "08:45"), ""},
		{"valid sunday", entry(7, 7, "13:46", "14:30"), ""},
		{"day too low", entry(0, 1, "08:00", "08:45"), "day_of_week"},
		{"day too high", entry(8, 1, "08:00", "08:45"), "day_of_week"},
		{"period zero", entry(1, 0, "08:00", "08:45"), "period_no"},
		{"unpadded hour", entry(1, 1, "8:00", "08:45"), "time format"},
		{"garbage time", entry(1, 1, "08:00", "late"), "time format"},
		{"end equals start", entry(1, 1, "08:00", "08:00"), "greater than"},
		{"end before start", entry(1, 1, "09:00", "08:00"), "greater than"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEntry(tc.e)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestValidateEntriesReportsIndex(t *testing.T) {
	err := ValidateEntries([]Entry{
		entry(1, 1, "08:00", "08:45"),
		entry(9, 2, "08:46", "09:30"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entries[1]")
}

func TestDedupeLastWins(t *testing.T) {
	t1 := uuid.New()
	t2 := uuid.New()

	a := entry(1, 1, "08:00", "08:45")
	a.TeacherID = &t1
	b := entry(1, 1, "08:00", "08:45")
	b.TeacherID = &t2
	c := entry(2, 1, "08:00", "08:45")

	out := DedupeLastWins([]Entry{a, c, b})

	require.Len(t, out, 2)
	assert.Equal(t, &t2, out[0].TeacherID) // last write to (1,1) survives in place
	assert.Equal(t, 2, out[1].DayOfWeek)
}

func TestDedupeLastWinsEmpty(t *testing.T) {
	assert.Empty(t, DedupeLastWins(nil))
}

func TestSortEntries(t *testing.T) {
	es := []Entry{
		entry(2, 1, "08:00", "08:45"),
		entry(1, 3, "09:31", "10:15"),
		entry(1, 1, "08:00", "08:45"),
	}
	SortEntries(es)

	assert.Equal(t, []int{1, 1, 2}, []int{es[0].DayOfWeek, es[1].DayOfWeek, es[2].DayOfWeek})
	assert.Equal(t, []int{1, 3, 1}, []int{es[0].PeriodNo, es[1].PeriodNo, es[2].PeriodNo})
}

func TestBuildGridFillsDefaults(t *testing.T) {
	tid := uuid.New()
	saved := entry(3, 2, "08:46", "09:30")
	saved.TeacherID = &tid

	grid := BuildGrid([]Entry{saved})

	require.Len(t, grid, 7*len(DefaultPeriods()))

	// saved cell kept
	var found *Entry
	for i := range grid {
		if grid[i].DayOfWeek == 3 && grid[i].PeriodNo == 2 {
			found = &grid[i]
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, &tid, found.TeacherID)

	// a missing cell defaults to the catalog bounds, unassigned
	first := grid[0]
	assert.Equal(t, 1, first.DayOfWeek)
	assert.Equal(t, 1, first.PeriodNo)
	assert.Equal(t, "08:00", first.StartTime)
	assert.Equal(t, "08:45", first.EndTime)
	assert.Nil(t, first.TeacherID)
}

func TestPeriodCatalog(t *testing.T) {
	ps := DefaultPeriods()
	require.Len(t, ps, 7)

	for i, p := range ps {
		assert.Equal(t, i+1, p.PeriodNo)
		require.NoError(t, ValidateEntry(entry(1, p.PeriodNo, p.StartTime, p.EndTime)))
	}

	assert.Equal(t, "08:00", ps[0].StartTime)
	assert.Equal(t, "14:30", ps[6].EndTime)

	p6, ok := PeriodByNo(6)
	require.True(t, ok)
	assert.Equal(t, "13:01", p6.StartTime)

	_, ok = PeriodByNo(8)
	assert.False(t, ok)
}

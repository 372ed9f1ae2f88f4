package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	model "schoolku_backend/internals/features/school/holidays/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func holiday(title string, start time.Time, end *time.Time) model.HolidayModel {
	h := model.HolidayModel{
		HolidayTitle:     title,
		HolidayType:      model.HolidayTypeHoliday,
		HolidayStartDate: datatypes.Date(start),
	}
	if end != nil {
		h.HolidayIsMultiDay = true
		d := datatypes.Date(*end)
		h.HolidayEndDate = &d
	}
	return h
}

func TestBlockedDaysFromWeekendOnly(t *testing.T) {
	weekStart := date(2024, time.December, 23) // a Monday

	got := BlockedDaysFrom(nil, []int64{6, 7}, weekStart)

	require.Len(t, got, 2)
	assert.Equal(t, 6, got[0].DayOfWeek)
	assert.Equal(t, "2024-12-28", got[0].Date)
	assert.Equal(t, "Non-working day", got[0].Reason)
	assert.Equal(t, 7, got[1].DayOfWeek)
	assert.Equal(t, "2024-12-29", got[1].Date)
}

func TestBlockedDaysFromSingleDayHoliday(t *testing.T) {
	weekStart := date(2024, time.December, 23)
	hs := []model.HolidayModel{
		holiday("Christmas Day", date(2024, time.December, 25), nil),
	}

	got := BlockedDaysFrom(hs, []int64{6, 7}, weekStart)

	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].DayOfWeek) // Wednesday
	assert.Equal(t, "2024-12-25", got[0].Date)
	assert.Equal(t, "Christmas Day", got[0].Reason)
}

func TestBlockedDaysFromMultiDayClampedToWeek(t *testing.T) {
	weekStart := date(2024, time.December, 23)
	end := date(2025, time.January, 5)
	hs := []model.HolidayModel{
		holiday("Winter Break", date(2024, time.December, 25), &end),
	}

	got := BlockedDaysFrom(hs, []int64{6, 7}, weekStart)

	// Wed..Sun of this week, all from the break.
	require.Len(t, got, 5)
	for i, b := range got {
		assert.Equal(t, i+3, b.DayOfWeek)
		assert.Equal(t, "Winter Break", b.Reason)
	}
}

func TestBlockedDaysFromHolidayReasonWinsOverNonWorking(t *testing.T) {
	weekStart := date(2024, time.December, 23)
	hs := []model.HolidayModel{
		holiday("Founders Day", date(2024, time.December, 28), nil), // Saturday
	}

	got := BlockedDaysFrom(hs, []int64{6, 7}, weekStart)

	require.Len(t, got, 2)
	assert.Equal(t, "Founders Day", got[0].Reason)
}

func TestBlockedDaysFromOutsideWeekIgnored(t *testing.T) {
	weekStart := date(2024, time.December, 23)
	hs := []model.HolidayModel{
		holiday("New Year", date(2025, time.January, 1), nil),
		holiday("Past", date(2024, time.December, 20), nil),
	}

	got := BlockedDaysFrom(hs, nil, weekStart)
	assert.Empty(t, got)
}

func TestNonWorkingFromDefaults(t *testing.T) {
	assert.Equal(t, []int64{6, 7}, nonWorkingFrom([]int64{1, 2, 3, 4, 5}))
	assert.Equal(t, []int64{7}, nonWorkingFrom([]int64{1, 2, 3, 4, 5, 6}))
	assert.Len(t, nonWorkingFrom(nil), 7)
}

package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"thursday", date(2024, time.March, 14), date(2024, time.March, 11)},
		{"monday itself", date(2024, time.March, 11), date(2024, time.March, 11)},
		{"sunday", date(2024, time.March, 17), date(2024, time.March, 11)},
		{"saturday across month", date(2024, time.June, 1), date(2024, time.May, 27)},
		{"new year rollback", date(2025, time.January, 1), date(2024, time.December, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MondayOf(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestMondayOfLaws(t *testing.T) {
	// mondayOf(d) <= d < mondayOf(d)+7 and idempotence, over a full year
	d := date(2024, time.January, 1)
	for i := 0; i < 366; i++ {
		m := MondayOf(d)
		require.Equal(t, time.Monday, m.Weekday(), "day %s", d)
		require.False(t, m.After(d), "day %s", d)
		require.True(t, d.Before(m.AddDate(0, 0, 7)), "day %s", d)
		require.Equal(t, m, MondayOf(m), "idempotence on %s", d)
		d = d.AddDate(0, 0, 1)
	}
}

func TestAddDaysRollsOver(t *testing.T) {
	assert.Equal(t, date(2024, time.March, 1), AddDays(date(2024, time.February, 29), 1))
	assert.Equal(t, date(2023, time.December, 31), AddDays(date(2024, time.January, 1), -1))
	assert.Equal(t, date(2024, time.December, 23), AddDays(date(2024, time.December, 30), -7))
}

func TestDayIndex(t *testing.T) {
	assert.Equal(t, 1, DayIndex(date(2024, time.March, 11))) // Mon
	assert.Equal(t, 4, DayIndex(date(2024, time.March, 14))) // Thu
	assert.Equal(t, 6, DayIndex(date(2024, time.March, 16))) // Sat
	assert.Equal(t, 7, DayIndex(date(2024, time.March, 17))) // Sun
}

func TestFromUIDayIndex(t *testing.T) {
	for ui := 0; ui <= 6; ui++ {
		got, err := FromUIDayIndex(ui)
		require.NoError(t, err)
		assert.Equal(t, ui+1, got)
	}
	_, err := FromUIDayIndex(-1)
	assert.Error(t, err)
	_, err = FromUIDayIndex(7)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-14")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 14), got)

	_, err = ParseDate("14-03-2024")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestFormatWithWeekday(t *testing.T) {
	assert.Equal(t, "11-03-2024 (Monday)", FormatWithWeekday(date(2024, time.March, 11)))
	assert.Equal(t, "25-12-2024 (Wednesday)", FormatWithWeekday(date(2024, time.December, 25)))
}

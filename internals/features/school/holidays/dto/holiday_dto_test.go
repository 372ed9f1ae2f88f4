package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "schoolku_backend/internals/features/school/holidays/model"
)

func strp(s string) *string { return &s }

func TestCreateHolidaySingleDay(t *testing.T) {
	req := CreateHolidayRequest{
		HolidayTitle:     "  Founders Day ",
		HolidayStartDate: "2024-12-25",
	}

	m, err := req.ToModel(uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "Founders Day", m.HolidayTitle)
	assert.Equal(t, model.HolidayTypeHoliday, m.HolidayType)
	assert.False(t, m.HolidayIsMultiDay)
	assert.Nil(t, m.HolidayEndDate)
	assert.Equal(t, "2024-12-25", m.StartTime().Format("2006-01-02"))
}

func TestCreateHolidaySingleDayRejectsEndDate(t *testing.T) {
	req := CreateHolidayRequest{
		HolidayTitle:     "Founders Day",
		HolidayStartDate: "2024-12-25",
		HolidayEndDate:   strp("2024-12-26"),
	}

	_, err := req.ToModel(uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holiday_end_date must be empty")
}

func TestCreateHolidayMultiDay(t *testing.T) {
	req := CreateHolidayRequest{
		HolidayTitle:      "Winter Break",
		HolidayIsMultiDay: true,
		HolidayStartDate:  "2024-12-23",
		HolidayEndDate:    strp("2025-01-05"),
	}

	m, err := req.ToModel(uuid.New())
	require.NoError(t, err)
	require.NotNil(t, m.HolidayEndDate)
	assert.Equal(t, "2025-01-05", m.EndTime().Format("2006-01-02"))
}

func TestCreateHolidayMultiDayRequiresEndDate(t *testing.T) {
	req := CreateHolidayRequest{
		HolidayTitle:      "Winter Break",
		HolidayIsMultiDay: true,
		HolidayStartDate:  "2024-12-23",
	}

	_, err := req.ToModel(uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holiday_end_date is required")
}

func TestCreateHolidayEndBeforeStart(t *testing.T) {
	req := CreateHolidayRequest{
		HolidayTitle:      "Backwards",
		HolidayIsMultiDay: true,
		HolidayStartDate:  "2024-12-23",
		HolidayEndDate:    strp("2024-12-20"),
	}

	_, err := req.ToModel(uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be before")
}

func TestCreateHolidayTypeNormalization(t *testing.T) {
	req := CreateHolidayRequest{
		HolidayTitle:     "Mid-terms",
		HolidayType:      strp("Exam"),
		HolidayStartDate: "2024-11-04",
	}

	m, err := req.ToModel(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.HolidayTypeExam, m.HolidayType)
}

func TestPatchHolidayTogglingMultiDayOffDropsEndDate(t *testing.T) {
	base := CreateHolidayRequest{
		HolidayTitle:      "Winter Break",
		HolidayIsMultiDay: true,
		HolidayStartDate:  "2024-12-23",
		HolidayEndDate:    strp("2025-01-05"),
	}
	m, err := base.ToModel(uuid.New())
	require.NoError(t, err)

	off := false
	patch := PatchHolidayRequest{HolidayIsMultiDay: &off}
	require.NoError(t, patch.Apply(m))

	assert.False(t, m.HolidayIsMultiDay)
	assert.Nil(t, m.HolidayEndDate)
}

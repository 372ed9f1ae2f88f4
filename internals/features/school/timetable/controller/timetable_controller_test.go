// file: internals/features/school/timetable/controller/timetable_controller_test.go
package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	holidayService "schoolku_backend/internals/features/school/holidays/service"
	dto "schoolku_backend/internals/features/school/timetable/dto"
	service "schoolku_backend/internals/features/school/timetable/service"
)

const testSchoolID = "11111111-1111-1111-1111-111111111111"

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewTimetableController(db)
	app.Get("/:school_id/timetable", ctrl.GetWeek)
	app.Post("/:school_id/timetable/save", ctrl.SaveWeek)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSaveWeekRejectsMalformedRequestWith400(t *testing.T) {
	app := newTestApp(nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing class and section", `{"week_start":"2024-03-11","entries":[]}`},
		{"malformed week_start", `{"class_id":"22222222-2222-2222-2222-222222222222","section_id":"33333333-3333-3333-3333-333333333333","week_start":"11-03-2024","entries":[]}`},
		{"day out of range", `{"class_id":"22222222-2222-2222-2222-222222222222","section_id":"33333333-3333-3333-3333-333333333333","week_start":"2024-03-11","entries":[{"day_of_week":9,"period_no":1,"start_time":"08:00","end_time":"08:45"}]}`},
		{"end before start", `{"class_id":"22222222-2222-2222-2222-222222222222","section_id":"33333333-3333-3333-3333-333333333333","week_start":"2024-03-11","entries":[{"day_of_week":1,"period_no":1,"start_time":"08:45","end_time":"08:00"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/"+testSchoolID+"/timetable/save", tt.body)
			defer resp.Body.Close()
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGetWeekReturnsFullGridWithWeekendBlocked(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	// no slots saved; settings and holiday lookups fail over to defaults
	mock.ExpectQuery(`SELECT \* FROM "timetable_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"timetable_id"}))

	app := newTestApp(db)
	req := httptest.NewRequest(http.MethodGet,
		"/"+testSchoolID+"/timetable?class_id=22222222-2222-2222-2222-222222222222&section_id=33333333-3333-3333-3333-333333333333&week_start=2024-03-11", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			WeekStart   string                      `json:"week_start"`
			Entries     []dto.SlotResponse          `json:"entries"`
			Grid        []service.Entry             `json:"grid"`
			BlockedDays []holidayService.BlockedDay `json:"blocked_days"`
			Periods     []service.Period            `json:"periods"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "2024-03-11", body.Data.WeekStart)
	assert.Empty(t, body.Data.Entries)
	assert.Len(t, body.Data.Periods, 7)

	// every (day, period) cell is present even with nothing saved
	require.Len(t, body.Data.Grid, 7*len(body.Data.Periods))
	first := body.Data.Grid[0]
	assert.Equal(t, 1, first.DayOfWeek)
	assert.Equal(t, 1, first.PeriodNo)
	assert.Equal(t, "08:00", first.StartTime)
	assert.Nil(t, first.TeacherID)

	blocked := make([]int, 0, len(body.Data.BlockedDays))
	for _, b := range body.Data.BlockedDays {
		blocked = append(blocked, b.DayOfWeek)
	}
	assert.Equal(t, []int{6, 7}, blocked)

	require.NoError(t, mock.ExpectationsWereMet())
}

// file: internals/features/school/overview/controller/overview_controller_test.go
package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dto "schoolku_backend/internals/features/school/overview/dto"
)

func newOverviewMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

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
	return db, mock
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestAdminOverviewAggregatesCounts(t *testing.T) {
	db, mock := newOverviewMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).WillReturnRows(countRows(120))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "teachers"`).WillReturnRows(countRows(14))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "classes"`).WillReturnRows(countRows(6))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "sections"`).WillReturnRows(countRows(18))

	app := fiber.New()
	ctrl := NewOverviewController(db)
	app.Get("/:school_id/overview", ctrl.AdminOverview)

	req := httptest.NewRequest(http.MethodGet,
		"/11111111-1111-1111-1111-111111111111/overview", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.AdminOverviewResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, dto.AdminOverviewResponse{
		Students: 120,
		Teachers: 14,
		Classes:  6,
		Sections: 18,
	}, body.Data)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminOverviewRejectsBadSchoolID(t *testing.T) {
	app := fiber.New()
	ctrl := NewOverviewController(nil)
	app.Get("/:school_id/overview", ctrl.AdminOverview)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/not-a-uuid/overview", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

package service

import (
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newStoreMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func testWeekKey() WeekKey {
	return WeekKey{
		SchoolID:  uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		ClassID:   uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		SectionID: uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		WeekStart: time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), // Monday
	}
}

var slotColumns = []string{
	"timetable_id",
	"timetable_school_id",
	"timetable_class_id",
	"timetable_section_id",
	"timetable_week_start",
	"timetable_day_of_week",
	"timetable_period_no",
	"timetable_teacher_id",
	"timetable_start_time",
	"timetable_end_time",
	"timetable_notes",
}

const (
	insertPattern = `INSERT INTO "timetable_entries" .+ ON CONFLICT .+ DO UPDATE SET .+ RETURNING "timetable_id"`
	selectPattern = `SELECT \* FROM "timetable_entries" WHERE .+ ORDER BY timetable_day_of_week ASC, timetable_period_no ASC`
	deletePattern = `DELETE FROM "timetable_entries" WHERE`
)

func TestSaveWeekRoundTripKeepsSlotValues(t *testing.T) {
	db, mock := newStoreMock(t)
	key := testWeekKey()
	teacherID := uuid.MustParse("44444444-4444-4444-4444-444444444444")

	entries := []Entry{
		{DayOfWeek: 2, PeriodNo: 3, TeacherID: &teacherID, StartTime: "09:31", EndTime: "10:15"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(insertPattern).
		WithArgs(
			key.SchoolID, key.ClassID, key.SectionID,
			sqlmock.AnyArg(), // week_start date
			2, 3,
			teacherID,
			"09:31", "10:15",
			nil,              // notes
			nil,              // created_by
			sqlmock.AnyArg(), // created_at
			sqlmock.AnyArg(), // updated_at
		).
		WillReturnRows(sqlmock.NewRows([]string{"timetable_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	require.NoError(t, SaveWeek(db, key, entries, nil))

	mock.ExpectQuery(selectPattern).
		WithArgs(key.SchoolID, key.ClassID, key.SectionID, "2024-03-11").
		WillReturnRows(sqlmock.NewRows(slotColumns).AddRow(
			uuid.NewString(),
			key.SchoolID.String(), key.ClassID.String(), key.SectionID.String(),
			key.WeekStart,
			2, 3,
			teacherID.String(),
			"09:31", "10:15",
			nil,
		))

	got, err := LoadWeek(db, key)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entries, EntriesFromModels(got))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveWeekEmptyBatchTouchesNothing(t *testing.T) {
	db, mock := newStoreMock(t)

	require.NoError(t, SaveWeek(db, testWeekKey(), nil, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClearWeekIsIdempotent(t *testing.T) {
	db, mock := newStoreMock(t)
	key := testWeekKey()

	mock.ExpectExec(deletePattern).
		WithArgs(key.SchoolID, key.ClassID, key.SectionID, "2024-03-11").
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := ClearWeek(db, key)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	// clearing the now-empty week succeeds with zero rows
	mock.ExpectExec(deletePattern).
		WithArgs(key.SchoolID, key.ClassID, key.SectionID, "2024-03-11").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err = ClearWeek(db, key)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyPreviousWeekFromEmptyPriorWeek(t *testing.T) {
	db, mock := newStoreMock(t)
	key := testWeekKey()

	// only the prior-week read happens; no insert touches the target
	mock.ExpectQuery(selectPattern).
		WithArgs(key.SchoolID, key.ClassID, key.SectionID, "2024-03-04").
		WillReturnRows(sqlmock.NewRows(slotColumns))

	copied, err := CopyPreviousWeek(db, key, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, copied)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyPreviousWeekRekeysPriorSlots(t *testing.T) {
	db, mock := newStoreMock(t)
	key := testWeekKey()
	prior := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(selectPattern).
		WithArgs(key.SchoolID, key.ClassID, key.SectionID, "2024-03-04").
		WillReturnRows(sqlmock.NewRows(slotColumns).
			AddRow(uuid.NewString(), key.SchoolID.String(), key.ClassID.String(), key.SectionID.String(),
				prior, 1, 1, nil, "08:00", "08:45", nil).
			AddRow(uuid.NewString(), key.SchoolID.String(), key.ClassID.String(), key.SectionID.String(),
				prior, 2, 4, nil, "10:16", "10:45", nil))

	// the upsert carries the target Monday, not the prior one
	rowArgs := func(day, period int, start, end string) []driver.Value {
		return []driver.Value{
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			datatypes.Date(key.WeekStart),
			day, period,
			nil,
			start, end,
			nil, nil,
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		}
	}
	args := append(rowArgs(1, 1, "08:00", "08:45"), rowArgs(2, 4, "10:16", "10:45")...)

	mock.ExpectBegin()
	mock.ExpectQuery(insertPattern).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows([]string{"timetable_id"}).
			AddRow(uuid.NewString()).
			AddRow(uuid.NewString()))
	mock.ExpectCommit()

	copied, err := CopyPreviousWeek(db, key, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, copied)

	require.NoError(t, mock.ExpectationsWereMet())
}

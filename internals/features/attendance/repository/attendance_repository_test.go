package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/attendance/model"
	"eusouninja_backend/internals/testutil"
)

var classDay = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func attendanceCols() []string {
	return []string{"attendance_id", "attendance_student_id", "attendance_class_date", "attendance_present"}
}

func TestRecord_InsertsWhenMissing(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "attendance" WHERE attendance_student_id .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(attendanceCols()))
	mock.ExpectExec(`INSERT INTO "attendance"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.Record(context.Background(), "stu-1", classDay, true, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_UpdatesExistingKeepingID(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "attendance" WHERE attendance_student_id .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(attendanceCols()).
			AddRow("att-1", "stu-1", classDay, true))
	mock.ExpectExec(`UPDATE "attendance" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	notes := "late"
	id, err := repo.Record(context.Background(), "stu-1", classDay, false, &notes)
	require.NoError(t, err)
	assert.Equal(t, "att-1", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_RetriesAfterUniqueViolation(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewAttendanceRepository(db)

	// first attempt: lost the insert race
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "attendance" WHERE attendance_student_id .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(attendanceCols()))
	mock.ExpectExec(`INSERT INTO "attendance"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	// second attempt: the winner's row is there now, update it
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "attendance" WHERE attendance_student_id .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(attendanceCols()).
			AddRow("att-2", "stu-1", classDay, false))
	mock.ExpectExec(`UPDATE "attendance" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.Record(context.Background(), "stu-1", classDay, true, nil)
	require.NoError(t, err)
	assert.Equal(t, "att-2", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_NilDB(t *testing.T) {
	repo := NewAttendanceRepository(nil)
	_, err := repo.Record(context.Background(), "stu-1", classDay, true, nil)
	assert.ErrorIs(t, err, database.ErrUnavailable)
}

func TestGetByStudent_Bounds(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewAttendanceRepository(db)

	start := classDay.AddDate(0, -1, 0)
	end := classDay

	mock.ExpectQuery(`SELECT .* FROM "attendance" WHERE attendance_student_id = .* AND attendance_class_date >= .* AND attendance_class_date <= .*ORDER BY attendance_class_date DESC`).
		WithArgs("stu-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(attendanceCols()))

	rows, err := repo.GetByStudent(context.Background(), "stu-1", &start, &end)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByStudent_NoBounds(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "attendance" WHERE attendance_student_id = .*ORDER BY attendance_class_date DESC`).
		WithArgs("stu-1").
		WillReturnRows(sqlmock.NewRows(attendanceCols()).
			AddRow("att-1", "stu-1", classDay, true))

	rows, err := repo.GetByStudent(context.Background(), "stu-1", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "att-1", rows[0].AttendanceID)
}

func TestGetByDate_JoinsStudentNames(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "attendance" LEFT JOIN students ON students.student_id = attendance.attendance_student_id WHERE attendance_class_date = .*ORDER BY students.student_name ASC`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"attendance_id", "attendance_student_id", "student_name", "attendance_class_date", "attendance_present", "attendance_notes"}).
			AddRow("att-1", "stu-1", "Ana", classDay, true, nil))

	rows, err := repo.GetByDate(context.Background(), classDay)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "att-1", rows[0].ID)
	assert.Equal(t, "stu-1", rows[0].StudentID)
	require.NotNil(t, rows[0].StudentName)
	assert.Equal(t, "Ana", *rows[0].StudentName)
	assert.True(t, rows[0].Present)
	assert.Nil(t, rows[0].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadsDegradeWithoutDB(t *testing.T) {
	repo := NewAttendanceRepository(nil)

	rows, err := repo.GetByStudent(context.Background(), "stu-1", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	byDate, err := repo.GetByDate(context.Background(), classDay)
	require.NoError(t, err)
	assert.Empty(t, byDate)

	ranged, err := repo.GetByDateRange(context.Background(), classDay, classDay)
	require.NoError(t, err)
	assert.Empty(t, ranged)
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))

	rows := []model.AttendanceModel{
		{AttendancePresent: true},
		{AttendancePresent: true},
		{AttendancePresent: false},
		{AttendancePresent: true},
	}
	got := ComputeStats(rows)
	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 3, got.Present)
	assert.Equal(t, 1, got.Absent)
	assert.InDelta(t, 75.0, got.Rate, 0.001)
}

func TestDelete(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "attendance" WHERE attendance_id`).
		WithArgs("att-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "att-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

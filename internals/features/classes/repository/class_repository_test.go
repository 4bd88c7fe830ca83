package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/classes/model"
	"eusouninja_backend/internals/testutil"
)

func TestClassCreate(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "classes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), model.ClassModel{
		ClassName:      "Turma Infantil",
		ClassDayOfWeek: 2,
		ClassStartTime: "18:00",
		ClassEndTime:   "19:00",
		ClassIsActive:  true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassGetAll_OrdersBySlot(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewClassRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "classes" ORDER BY class_day_of_week ASC, class_start_time ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"class_id", "class_name", "class_day_of_week"}).
			AddRow("c-1", "Segunda cedo", 0).
			AddRow("c-2", "Quarta", 2))

	classes, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, 0, classes[0].ClassDayOfWeek)
}

func TestClassDelete_RemovesEnrollmentsFirst(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "class_enrollments" WHERE enrollment_class_id`).
		WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "classes" WHERE class_id`).
		WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "c-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnroll(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "class_enrollments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.Enroll(context.Background(), "c-1", "s-1")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnroll_DuplicateMapsToDomainError(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "class_enrollments"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := repo.Enroll(context.Background(), "c-1", "s-1")
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepo_NilDB(t *testing.T) {
	repo := NewClassRepository(nil)

	classes, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, classes)

	_, err = repo.Enroll(context.Background(), "c-1", "s-1")
	assert.ErrorIs(t, err, database.ErrUnavailable)

	rows, err := repo.ListStudentsByClass(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

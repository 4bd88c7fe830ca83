package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/students/model"
	"eusouninja_backend/internals/testutil"
)

func newStudent(name string) model.StudentModel {
	return model.StudentModel{
		StudentName:      name,
		StudentBirthDate: datatypes.Date(time.Date(2012, time.May, 1, 0, 0, 0, 0, time.UTC)),
		StudentIsActive:  true,
	}
}

func TestStudentCreate(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "students"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), newStudent("Ana"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentGetAll_OrdersByName(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "students" ORDER BY student_name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "student_name", "student_is_active"}).
			AddRow("s-1", "Ana", true).
			AddRow("s-2", "Bruno", false))

	students, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Ana", students[0].StudentName)
	assert.Equal(t, "Bruno", students[1].StudentName)
}

func TestStudentGetActive_Filters(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "students" WHERE student_is_active = .*ORDER BY student_name ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "student_name", "student_is_active"}).
			AddRow("s-1", "Ana", true))

	students, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.True(t, students[0].StudentIsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentGet_Missing(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "students" WHERE student_id`).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"student_id"}))

	s, err := repo.Get(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, s)
}

// The cascade must remove dependents before the student row, all inside one
// transaction.
func TestStudentDelete_CascadeOrder(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "guardians" WHERE guardian_student_id`).
		WithArgs("s-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "attendance" WHERE attendance_student_id`).
		WithArgs("s-1").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`DELETE FROM "class_enrollments" WHERE enrollment_student_id`).
		WithArgs("s-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "students" WHERE student_id`).
		WithArgs("s-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "s-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentDelete_RollsBackOnFailure(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "guardians" WHERE guardian_student_id`).
		WithArgs("s-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "attendance" WHERE attendance_student_id`).
		WithArgs("s-1").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	assert.Error(t, repo.Delete(context.Background(), "s-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepo_NilDB(t *testing.T) {
	repo := NewStudentRepository(nil)

	students, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, students)

	s, err := repo.Get(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = repo.Create(context.Background(), newStudent("Ana"))
	assert.ErrorIs(t, err, database.ErrUnavailable)

	assert.ErrorIs(t, repo.Update(context.Background(), "s-1", map[string]interface{}{"student_name": "x"}), database.ErrUnavailable)
	assert.ErrorIs(t, repo.Delete(context.Background(), "s-1"), database.ErrUnavailable)
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/attendance/model"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// Record upserts by (student, class date) and returns the row id, stable
// across repeated calls. The lookup takes a row lock inside a transaction;
// an insert that still loses the race hits the unique index and is retried
// once as an update.
func (r *AttendanceRepository) Record(ctx context.Context, studentID string, classDate time.Time, present bool, notes *string) (string, error) {
	if r.DB == nil {
		return "", database.ErrUnavailable
	}

	var id string
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		id, err = r.recordOnce(ctx, studentID, classDate, present, notes)
		if err != nil && isUniqueViolation(err) && attempt == 0 {
			continue
		}
		break
	}
	return id, err
}

func (r *AttendanceRepository) recordOnce(ctx context.Context, studentID string, classDate time.Time, present bool, notes *string) (string, error) {
	day := datatypes.Date(classDate)
	var id string

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.AttendanceModel
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("attendance_student_id = ? AND attendance_class_date = ?", studentID, day).
			First(&existing).Error
		if err == nil {
			id = existing.AttendanceID
			return tx.Model(&model.AttendanceModel{}).
				Where("attendance_id = ?", id).
				Updates(map[string]interface{}{
					"attendance_present": present,
					"attendance_notes":   notes,
				}).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := model.AttendanceModel{
			AttendanceID:        uuid.NewString(),
			AttendanceStudentID: studentID,
			AttendanceClassDate: day,
			AttendancePresent:   present,
			AttendanceNotes:     notes,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		id = row.AttendanceID
		return nil
	})
	return id, err
}

// AttendanceByDateRow joins the student display name for the checklist view.
type AttendanceByDateRow struct {
	ID          string         `gorm:"column:attendance_id" json:"id"`
	StudentID   string         `gorm:"column:attendance_student_id" json:"student_id"`
	StudentName *string        `gorm:"column:student_name" json:"student_name"`
	ClassDate   datatypes.Date `gorm:"column:attendance_class_date" json:"-"`
	Present     bool           `gorm:"column:attendance_present" json:"present"`
	Notes       *string        `gorm:"column:attendance_notes" json:"notes,omitempty"`
}

func (r *AttendanceRepository) GetByDate(ctx context.Context, classDate time.Time) ([]AttendanceByDateRow, error) {
	if r.DB == nil {
		return []AttendanceByDateRow{}, nil
	}
	var rows []AttendanceByDateRow
	err := r.DB.WithContext(ctx).
		Table("attendance").
		Select("attendance_id, attendance_student_id, students.student_name, attendance_class_date, attendance_present, attendance_notes").
		Joins("LEFT JOIN students ON students.student_id = attendance.attendance_student_id").
		Where("attendance_class_date = ?", datatypes.Date(classDate)).
		Order("students.student_name ASC").
		Scan(&rows).Error
	if rows == nil {
		rows = []AttendanceByDateRow{}
	}
	return rows, err
}

// GetByStudent filters by inclusive date bounds when provided (both, either
// or neither), newest first.
func (r *AttendanceRepository) GetByStudent(ctx context.Context, studentID string, startDate, endDate *time.Time) ([]model.AttendanceModel, error) {
	if r.DB == nil {
		return []model.AttendanceModel{}, nil
	}
	q := r.DB.WithContext(ctx).
		Where("attendance_student_id = ?", studentID)
	if startDate != nil {
		q = q.Where("attendance_class_date >= ?", datatypes.Date(*startDate))
	}
	if endDate != nil {
		q = q.Where("attendance_class_date <= ?", datatypes.Date(*endDate))
	}
	var out []model.AttendanceModel
	err := q.Order("attendance_class_date DESC").Find(&out).Error
	return out, err
}

// GetByDateRange returns every record in the window, for the general report.
func (r *AttendanceRepository) GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]model.AttendanceModel, error) {
	if r.DB == nil {
		return []model.AttendanceModel{}, nil
	}
	var out []model.AttendanceModel
	err := r.DB.WithContext(ctx).
		Where("attendance_class_date >= ? AND attendance_class_date <= ?",
			datatypes.Date(startDate), datatypes.Date(endDate)).
		Find(&out).Error
	return out, err
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	if r.DB == nil {
		return database.ErrUnavailable
	}
	return r.DB.WithContext(ctx).
		Where("attendance_id = ?", id).
		Delete(&model.AttendanceModel{}).Error
}

/* =========================================================
   Stats (computed in-process over the filtered row set)
========================================================= */

type Stats struct {
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Rate    float64 `json:"rate"`
}

func ComputeStats(rows []model.AttendanceModel) Stats {
	s := Stats{Total: len(rows)}
	for _, row := range rows {
		if row.AttendancePresent {
			s.Present++
		}
	}
	s.Absent = s.Total - s.Present
	if s.Total > 0 {
		s.Rate = float64(s.Present) / float64(s.Total) * 100
	}
	return s
}

func (r *AttendanceRepository) GetStats(ctx context.Context, studentID string, startDate, endDate *time.Time) (Stats, error) {
	rows, err := r.GetByStudent(ctx, studentID, startDate, endDate)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(rows), nil
}

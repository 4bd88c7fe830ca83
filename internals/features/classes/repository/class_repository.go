package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/classes/model"
)

// ErrAlreadyEnrolled maps the unique (class, student) index to a domain error.
var ErrAlreadyEnrolled = errors.New("student already enrolled in class")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) Create(ctx context.Context, m model.ClassModel) (string, error) {
	if r.DB == nil {
		return "", database.ErrUnavailable
	}
	m.ClassID = uuid.NewString()
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return "", err
	}
	return m.ClassID, nil
}

func (r *ClassRepository) Get(ctx context.Context, id string) (*model.ClassModel, error) {
	if r.DB == nil {
		return nil, nil
	}
	var m model.ClassModel
	if err := r.DB.WithContext(ctx).Where("class_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// GetAll orders by schedule slot: weekday first, then start time.
func (r *ClassRepository) GetAll(ctx context.Context) ([]model.ClassModel, error) {
	if r.DB == nil {
		return []model.ClassModel{}, nil
	}
	var out []model.ClassModel
	err := r.DB.WithContext(ctx).
		Order("class_day_of_week ASC, class_start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *ClassRepository) GetActive(ctx context.Context) ([]model.ClassModel, error) {
	if r.DB == nil {
		return []model.ClassModel{}, nil
	}
	var out []model.ClassModel
	err := r.DB.WithContext(ctx).
		Where("class_is_active = ?", true).
		Order("class_day_of_week ASC, class_start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *ClassRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if r.DB == nil {
		return database.ErrUnavailable
	}
	if len(updates) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Model(&model.ClassModel{}).
		Where("class_id = ?", id).
		Updates(updates).Error
}

// Delete removes the class and its enrollments in one transaction.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	if r.DB == nil {
		return database.ErrUnavailable
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("enrollment_class_id = ?", id).Delete(&model.ClassEnrollmentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("class_id = ?", id).Delete(&model.ClassModel{}).Error
	})
}

/* =========================================================
   Enrollments
========================================================= */

func (r *ClassRepository) Enroll(ctx context.Context, classID, studentID string) (string, error) {
	if r.DB == nil {
		return "", database.ErrUnavailable
	}
	m := model.ClassEnrollmentModel{
		EnrollmentID:        uuid.NewString(),
		EnrollmentClassID:   classID,
		EnrollmentStudentID: studentID,
		EnrollmentIsActive:  true,
	}
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return "", ErrAlreadyEnrolled
		}
		return "", err
	}
	return m.EnrollmentID, nil
}

func (r *ClassRepository) Unenroll(ctx context.Context, classID, studentID string) error {
	if r.DB == nil {
		return database.ErrUnavailable
	}
	return r.DB.WithContext(ctx).
		Where("enrollment_class_id = ? AND enrollment_student_id = ?", classID, studentID).
		Delete(&model.ClassEnrollmentModel{}).Error
}

func (r *ClassRepository) ListByStudent(ctx context.Context, studentID string) ([]model.ClassModel, error) {
	if r.DB == nil {
		return []model.ClassModel{}, nil
	}
	var out []model.ClassModel
	err := r.DB.WithContext(ctx).
		Table("classes").
		Joins("JOIN class_enrollments ON class_enrollments.enrollment_class_id = classes.class_id").
		Where("class_enrollments.enrollment_student_id = ? AND class_enrollments.enrollment_is_active = ?", studentID, true).
		Order("class_day_of_week ASC, class_start_time ASC").
		Find(&out).Error
	return out, err
}

// EnrolledStudentRow carries what the class roster view needs.
type EnrolledStudentRow struct {
	StudentID   string `gorm:"column:student_id" json:"student_id"`
	StudentName string `gorm:"column:student_name" json:"student_name"`
	IsActive    bool   `gorm:"column:student_is_active" json:"is_active"`
}

func (r *ClassRepository) ListStudentsByClass(ctx context.Context, classID string) ([]EnrolledStudentRow, error) {
	if r.DB == nil {
		return []EnrolledStudentRow{}, nil
	}
	var rows []EnrolledStudentRow
	err := r.DB.WithContext(ctx).
		Table("students").
		Select("students.student_id, students.student_name, students.student_is_active").
		Joins("JOIN class_enrollments ON class_enrollments.enrollment_student_id = students.student_id").
		Where("class_enrollments.enrollment_class_id = ? AND class_enrollments.enrollment_is_active = ?", classID, true).
		Order("students.student_name ASC").
		Scan(&rows).Error
	if rows == nil {
		rows = []EnrolledStudentRow{}
	}
	return rows, err
}

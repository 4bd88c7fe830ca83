package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	database "eusouninja_backend/internals/databases"
	attendanceModel "eusouninja_backend/internals/features/attendance/model"
	classModel "eusouninja_backend/internals/features/classes/model"
	"eusouninja_backend/internals/features/students/model"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(ctx context.Context, m model.StudentModel) (string, error) {
	if r.DB == nil {
		return "", database.ErrUnavailable
	}
	m.StudentID = uuid.NewString()
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return "", err
	}
	return m.StudentID, nil
}

func (r *StudentRepository) Get(ctx context.Context, id string) (*model.StudentModel, error) {
	if r.DB == nil {
		return nil, nil
	}
	var m model.StudentModel
	if err := r.DB.WithContext(ctx).Where("student_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *StudentRepository) GetAll(ctx context.Context) ([]model.StudentModel, error) {
	if r.DB == nil {
		return []model.StudentModel{}, nil
	}
	var out []model.StudentModel
	err := r.DB.WithContext(ctx).
		Order("student_name ASC").
		Find(&out).Error
	return out, err
}

func (r *StudentRepository) GetActive(ctx context.Context) ([]model.StudentModel, error) {
	if r.DB == nil {
		return []model.StudentModel{}, nil
	}
	var out []model.StudentModel
	err := r.DB.WithContext(ctx).
		Where("student_is_active = ?", true).
		Order("student_name ASC").
		Find(&out).Error
	return out, err
}

func (r *StudentRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if r.DB == nil {
		return database.ErrUnavailable
	}
	if len(updates) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Updates(updates).Error
}

// Delete hard-deletes the student and everything owned by it. Dependents go
// first to respect referential integrity; the whole cascade runs in one
// transaction so a crash can't leave orphans.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	if r.DB == nil {
		return database.ErrUnavailable
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guardian_student_id = ?", id).Delete(&model.GuardianModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("attendance_student_id = ?", id).Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("enrollment_student_id = ?", id).Delete(&classModel.ClassEnrollmentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("student_id = ?", id).Delete(&model.StudentModel{}).Error
	})
}

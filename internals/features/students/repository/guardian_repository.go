package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/students/model"
)

type GuardianRepository struct {
	DB *gorm.DB
}

func NewGuardianRepository(db *gorm.DB) *GuardianRepository {
	return &GuardianRepository{DB: db}
}

func (r *GuardianRepository) Create(ctx context.Context, m model.GuardianModel) (string, error) {
	if r.DB == nil {
		return "", database.ErrUnavailable
	}
	m.GuardianID = uuid.NewString()
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return "", err
	}
	return m.GuardianID, nil
}

func (r *GuardianRepository) ListByStudent(ctx context.Context, studentID string) ([]model.GuardianModel, error) {
	if r.DB == nil {
		return []model.GuardianModel{}, nil
	}
	var out []model.GuardianModel
	err := r.DB.WithContext(ctx).
		Where("guardian_student_id = ?", studentID).
		Find(&out).Error
	return out, err
}

func (r *GuardianRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if r.DB == nil {
		return database.ErrUnavailable
	}
	if len(updates) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Model(&model.GuardianModel{}).
		Where("guardian_id = ?", id).
		Updates(updates).Error
}

func (r *GuardianRepository) Delete(ctx context.Context, id string) error {
	if r.DB == nil {
		return database.ErrUnavailable
	}
	return r.DB.WithContext(ctx).
		Where("guardian_id = ?", id).
		Delete(&model.GuardianModel{}).Error
}

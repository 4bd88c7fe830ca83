package model

import (
	"time"

	"gorm.io/datatypes"
)

// StudentModel is the root of the ownership tree: guardians, attendance and
// enrollments are lifetime-bound to their student.
type StudentModel struct {
	StudentID           string         `gorm:"type:varchar(64);primaryKey;column:student_id" json:"id"`
	StudentName         string         `gorm:"type:text;not null;column:student_name" json:"name"`
	StudentBirthDate    datatypes.Date `gorm:"not null;column:student_birth_date" json:"-"`
	StudentPhone        *string        `gorm:"type:varchar(20);column:student_phone" json:"phone,omitempty"`
	StudentEmail        *string        `gorm:"type:varchar(320);column:student_email" json:"email,omitempty"`
	StudentAddress      *string        `gorm:"type:text;column:student_address" json:"address,omitempty"`
	StudentNeighborhood *string        `gorm:"type:varchar(100);column:student_neighborhood" json:"neighborhood,omitempty"`
	StudentCity         *string        `gorm:"type:varchar(100);column:student_city" json:"city,omitempty"`
	StudentState        *string        `gorm:"type:varchar(2);column:student_state" json:"state,omitempty"`
	StudentZipCode      *string        `gorm:"type:varchar(10);column:student_zip_code" json:"zip_code,omitempty"`
	StudentCordLevel    *string        `gorm:"type:varchar(50);column:student_cord_level" json:"cord_level,omitempty"`
	StudentIsActive     bool           `gorm:"not null;column:student_is_active" json:"is_active"`
	StudentIsMinor      bool           `gorm:"not null;column:student_is_minor" json:"is_minor"`
	StudentCreatedAt    time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_created_at" json:"created_at"`
	StudentUpdatedAt    time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_updated_at" json:"updated_at"`
}

func (StudentModel) TableName() string { return "students" }

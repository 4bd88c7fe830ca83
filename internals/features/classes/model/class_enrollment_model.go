package model

import (
	"time"
)

type ClassEnrollmentModel struct {
	EnrollmentID         string    `gorm:"type:varchar(64);primaryKey;column:enrollment_id" json:"id"`
	EnrollmentClassID    string    `gorm:"type:varchar(64);not null;uniqueIndex:uniq_class_enrollment,priority:1;column:enrollment_class_id" json:"class_id"`
	EnrollmentStudentID  string    `gorm:"type:varchar(64);not null;uniqueIndex:uniq_class_enrollment,priority:2;column:enrollment_student_id" json:"student_id"`
	EnrollmentIsActive   bool      `gorm:"not null;column:enrollment_is_active" json:"is_active"`
	EnrollmentEnrolledAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:enrollment_enrolled_at" json:"enrolled_at"`
}

func (ClassEnrollmentModel) TableName() string { return "class_enrollments" }

package model

import (
	"time"
)

// ClassModel is a weekly turma slot: day of week 0 (Monday) .. 6 (Sunday),
// times as "HH:MM".
type ClassModel struct {
	ClassID          string    `gorm:"type:varchar(64);primaryKey;column:class_id" json:"id"`
	ClassName        string    `gorm:"type:varchar(100);not null;column:class_name" json:"name"`
	ClassDescription *string   `gorm:"type:text;column:class_description" json:"description,omitempty"`
	ClassDayOfWeek   int       `gorm:"not null;column:class_day_of_week" json:"day_of_week"`
	ClassStartTime   string    `gorm:"type:varchar(5);not null;column:class_start_time" json:"start_time"`
	ClassEndTime     string    `gorm:"type:varchar(5);not null;column:class_end_time" json:"end_time"`
	ClassInstructor  *string   `gorm:"type:varchar(100);column:class_instructor" json:"instructor,omitempty"`
	ClassLocation    *string   `gorm:"type:varchar(200);column:class_location" json:"location,omitempty"`
	ClassMaxStudents *int      `gorm:"column:class_max_students" json:"max_students,omitempty"`
	ClassIsActive    bool      `gorm:"not null;column:class_is_active" json:"is_active"`
	ClassCreatedAt   time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:class_created_at" json:"created_at"`
	ClassUpdatedAt   time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:class_updated_at" json:"updated_at"`
}

func (ClassModel) TableName() string { return "classes" }

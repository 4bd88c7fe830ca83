package model

import (
	"time"

	"gorm.io/datatypes"
)

// AttendanceModel: at most one row per (student, class date). The unique
// index backs the upsert against concurrent writers (see repository).
type AttendanceModel struct {
	AttendanceID        string         `gorm:"type:varchar(64);primaryKey;column:attendance_id" json:"id"`
	AttendanceStudentID string         `gorm:"type:varchar(64);not null;uniqueIndex:uniq_attendance_student_date,priority:1;column:attendance_student_id" json:"student_id"`
	AttendanceClassDate datatypes.Date `gorm:"not null;uniqueIndex:uniq_attendance_student_date,priority:2;column:attendance_class_date" json:"-"`
	AttendancePresent   bool           `gorm:"not null;column:attendance_present" json:"present"`
	AttendanceNotes     *string        `gorm:"type:text;column:attendance_notes" json:"notes,omitempty"`
	AttendanceCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:attendance_created_at" json:"created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:attendance_updated_at" json:"updated_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }

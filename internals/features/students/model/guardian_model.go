package model

import (
	"time"
)

// GuardianModel: legal guardian of a minor student. Many guardians may
// reference one student; the caller enforces "minor needs a guardian".
type GuardianModel struct {
	GuardianID           string    `gorm:"type:varchar(64);primaryKey;column:guardian_id" json:"id"`
	GuardianStudentID    string    `gorm:"type:varchar(64);not null;index;column:guardian_student_id" json:"student_id"`
	GuardianName         string    `gorm:"type:text;not null;column:guardian_name" json:"name"`
	GuardianRelationship *string   `gorm:"type:varchar(50);column:guardian_relationship" json:"relationship,omitempty"`
	GuardianPhone        *string   `gorm:"type:varchar(20);column:guardian_phone" json:"phone,omitempty"`
	GuardianEmail        *string   `gorm:"type:varchar(320);column:guardian_email" json:"email,omitempty"`
	GuardianCPF          *string   `gorm:"type:varchar(14);column:guardian_cpf" json:"cpf,omitempty"`
	GuardianCreatedAt    time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:guardian_created_at" json:"created_at"`
	GuardianUpdatedAt    time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:guardian_updated_at" json:"updated_at"`
}

func (GuardianModel) TableName() string { return "guardians" }

package dto

import (
	"strings"
	"time"

	"eusouninja_backend/internals/features/students/model"
)

type CreateGuardianRequest struct {
	StudentID    string  `json:"student_id" validate:"required"`
	Name         string  `json:"name" validate:"required,min=2"`
	Relationship *string `json:"relationship" validate:"omitempty,max=50"`
	Phone        *string `json:"phone" validate:"omitempty,max=20"`
	Email        *string `json:"email" validate:"omitempty,email"`
	CPF          *string `json:"cpf" validate:"omitempty,max=14"`
}

func (r CreateGuardianRequest) ToModel() model.GuardianModel {
	return model.GuardianModel{
		GuardianStudentID:    r.StudentID,
		GuardianName:         strings.TrimSpace(r.Name),
		GuardianRelationship: trimPtr(r.Relationship),
		GuardianPhone:        trimPtr(r.Phone),
		GuardianEmail:        trimPtr(r.Email),
		GuardianCPF:          trimPtr(r.CPF),
	}
}

type UpdateGuardianRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2"`
	Relationship *string `json:"relationship" validate:"omitempty,max=50"`
	Phone        *string `json:"phone" validate:"omitempty,max=20"`
	Email        *string `json:"email" validate:"omitempty"`
	CPF          *string `json:"cpf" validate:"omitempty,max=14"`
}

func (r UpdateGuardianRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["guardian_name"] = strings.TrimSpace(*r.Name)
	}
	setNullable(updates, "guardian_relationship", r.Relationship)
	setNullable(updates, "guardian_phone", r.Phone)
	setNullable(updates, "guardian_email", r.Email)
	setNullable(updates, "guardian_cpf", r.CPF)
	return updates
}

type GuardianResponse struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"student_id"`
	Name         string    `json:"name"`
	Relationship *string   `json:"relationship,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Email        *string   `json:"email,omitempty"`
	CPF          *string   `json:"cpf,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromGuardianModel(m model.GuardianModel) GuardianResponse {
	return GuardianResponse{
		ID:           m.GuardianID,
		StudentID:    m.GuardianStudentID,
		Name:         m.GuardianName,
		Relationship: m.GuardianRelationship,
		Phone:        m.GuardianPhone,
		Email:        m.GuardianEmail,
		CPF:          m.GuardianCPF,
		CreatedAt:    m.GuardianCreatedAt,
		UpdatedAt:    m.GuardianUpdatedAt,
	}
}

func FromGuardianModels(ms []model.GuardianModel) []GuardianResponse {
	out := make([]GuardianResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromGuardianModel(m))
	}
	return out
}

package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"eusouninja_backend/internals/features/students/model"
	helper "eusouninja_backend/internals/helpers"
)

/* =========================================================
   Helpers
========================================================= */

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

// setNullable implements the tri-state partial update: nil pointer leaves
// the column untouched, an empty value sets it to NULL.
func setNullable(updates map[string]interface{}, col string, p *string) {
	if p == nil {
		return
	}
	if s := strings.TrimSpace(*p); s != "" {
		updates[col] = s
	} else {
		updates[col] = nil
	}
}

/* =========================================================
   1) REQUEST DTO
========================================================= */

type CreateStudentRequest struct {
	Name         string  `json:"name" validate:"required,min=2"`
	BirthDate    string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Phone        *string `json:"phone" validate:"omitempty,max=20"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Address      *string `json:"address" validate:"omitempty"`
	Neighborhood *string `json:"neighborhood" validate:"omitempty,max=100"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	State        *string `json:"state" validate:"omitempty,max=2"`
	ZipCode      *string `json:"zip_code" validate:"omitempty,max=10"`
	CordLevel    *string `json:"cord_level" validate:"omitempty,max=50"`
	IsMinor      bool    `json:"is_minor"`
}

func (r CreateStudentRequest) ToModel() (model.StudentModel, error) {
	birth, err := helper.ParseDate(r.BirthDate)
	if err != nil {
		return model.StudentModel{}, err
	}
	return model.StudentModel{
		StudentName:         strings.TrimSpace(r.Name),
		StudentBirthDate:    datatypes.Date(birth),
		StudentPhone:        trimPtr(r.Phone),
		StudentEmail:        trimPtr(r.Email),
		StudentAddress:      trimPtr(r.Address),
		StudentNeighborhood: trimPtr(r.Neighborhood),
		StudentCity:         trimPtr(r.City),
		StudentState:        trimPtr(r.State),
		StudentZipCode:      trimPtr(r.ZipCode),
		StudentCordLevel:    trimPtr(r.CordLevel),
		StudentIsActive:     true,
		StudentIsMinor:      r.IsMinor,
	}, nil
}

// Update (partial)
type UpdateStudentRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2"`
	BirthDate    *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone        *string `json:"phone" validate:"omitempty,max=20"`
	Email        *string `json:"email" validate:"omitempty"`
	Address      *string `json:"address" validate:"omitempty"`
	Neighborhood *string `json:"neighborhood" validate:"omitempty,max=100"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	State        *string `json:"state" validate:"omitempty,max=2"`
	ZipCode      *string `json:"zip_code" validate:"omitempty,max=10"`
	CordLevel    *string `json:"cord_level" validate:"omitempty,max=50"`
	IsActive     *bool   `json:"is_active" validate:"omitempty"`
	IsMinor      *bool   `json:"is_minor" validate:"omitempty"`
}

// Updates builds the partial column set: only fields explicitly provided
// are touched.
func (r UpdateStudentRequest) Updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if r.Name != nil {
		updates["student_name"] = strings.TrimSpace(*r.Name)
	}
	if r.BirthDate != nil {
		birth, err := helper.ParseDate(*r.BirthDate)
		if err != nil {
			return nil, err
		}
		updates["student_birth_date"] = datatypes.Date(birth)
	}
	setNullable(updates, "student_phone", r.Phone)
	setNullable(updates, "student_email", r.Email)
	setNullable(updates, "student_address", r.Address)
	setNullable(updates, "student_neighborhood", r.Neighborhood)
	setNullable(updates, "student_city", r.City)
	setNullable(updates, "student_state", r.State)
	setNullable(updates, "student_zip_code", r.ZipCode)
	setNullable(updates, "student_cord_level", r.CordLevel)
	if r.IsActive != nil {
		updates["student_is_active"] = *r.IsActive
	}
	if r.IsMinor != nil {
		updates["student_is_minor"] = *r.IsMinor
	}
	return updates, nil
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

type StudentResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BirthDate    string    `json:"birth_date"`
	Age          int       `json:"age"`
	Phone        *string   `json:"phone,omitempty"`
	Email        *string   `json:"email,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Neighborhood *string   `json:"neighborhood,omitempty"`
	City         *string   `json:"city,omitempty"`
	State        *string   `json:"state,omitempty"`
	ZipCode      *string   `json:"zip_code,omitempty"`
	CordLevel    *string   `json:"cord_level,omitempty"`
	IsActive     bool      `json:"is_active"`
	IsMinor      bool      `json:"is_minor"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromStudentModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:           m.StudentID,
		Name:         m.StudentName,
		BirthDate:    helper.FormatDate(m.StudentBirthDate),
		Age:          helper.AgeAt(time.Time(m.StudentBirthDate), time.Now()),
		Phone:        m.StudentPhone,
		Email:        m.StudentEmail,
		Address:      m.StudentAddress,
		Neighborhood: m.StudentNeighborhood,
		City:         m.StudentCity,
		State:        m.StudentState,
		ZipCode:      m.StudentZipCode,
		CordLevel:    m.StudentCordLevel,
		IsActive:     m.StudentIsActive,
		IsMinor:      m.StudentIsMinor,
		CreatedAt:    m.StudentCreatedAt,
		UpdatedAt:    m.StudentUpdatedAt,
	}
}

func FromStudentModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStudentModel(m))
	}
	return out
}

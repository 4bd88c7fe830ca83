package dto

import (
	"errors"
	"strings"
	"time"

	"eusouninja_backend/internals/features/classes/model"
)

var (
	ErrBadTime   = errors.New("time must be HH:MM")
	ErrBadWindow = errors.New("start time must be before end time")
)

// parseClockTime accepts "HH:MM" on a 24h clock.
func parseClockTime(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return ErrBadTime
	}
	return nil
}

func validateWindow(start, end string) error {
	if err := parseClockTime(start); err != nil {
		return err
	}
	if err := parseClockTime(end); err != nil {
		return err
	}
	if start >= end {
		return ErrBadWindow
	}
	return nil
}

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

type CreateClassRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Description *string `json:"description" validate:"omitempty"`
	DayOfWeek   *int    `json:"day_of_week" validate:"required,min=0,max=6"`
	StartTime   string  `json:"start_time" validate:"required"`
	EndTime     string  `json:"end_time" validate:"required"`
	Instructor  *string `json:"instructor" validate:"omitempty,max=100"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	MaxStudents *int    `json:"max_students" validate:"omitempty,min=1"`
}

func (r CreateClassRequest) ToModel() (model.ClassModel, error) {
	if err := validateWindow(r.StartTime, r.EndTime); err != nil {
		return model.ClassModel{}, err
	}
	return model.ClassModel{
		ClassName:        strings.TrimSpace(r.Name),
		ClassDescription: trimPtr(r.Description),
		ClassDayOfWeek:   *r.DayOfWeek,
		ClassStartTime:   r.StartTime,
		ClassEndTime:     r.EndTime,
		ClassInstructor:  trimPtr(r.Instructor),
		ClassLocation:    trimPtr(r.Location),
		ClassMaxStudents: r.MaxStudents,
		ClassIsActive:    true,
	}, nil
}

type UpdateClassRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description" validate:"omitempty"`
	DayOfWeek   *int    `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	StartTime   *string `json:"start_time" validate:"omitempty"`
	EndTime     *string `json:"end_time" validate:"omitempty"`
	Instructor  *string `json:"instructor" validate:"omitempty,max=100"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	MaxStudents *int    `json:"max_students" validate:"omitempty,min=1"`
	IsActive    *bool   `json:"is_active" validate:"omitempty"`
}

// Updates validates the time window against the stored row so a partial
// update can't invert start and end.
func (r UpdateClassRequest) Updates(current model.ClassModel) (map[string]interface{}, error) {
	start := current.ClassStartTime
	end := current.ClassEndTime
	if r.StartTime != nil {
		start = *r.StartTime
	}
	if r.EndTime != nil {
		end = *r.EndTime
	}
	if r.StartTime != nil || r.EndTime != nil {
		if err := validateWindow(start, end); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["class_name"] = strings.TrimSpace(*r.Name)
	}
	setNullable(updates, "class_description", r.Description)
	if r.DayOfWeek != nil {
		updates["class_day_of_week"] = *r.DayOfWeek
	}
	if r.StartTime != nil {
		updates["class_start_time"] = *r.StartTime
	}
	if r.EndTime != nil {
		updates["class_end_time"] = *r.EndTime
	}
	setNullable(updates, "class_instructor", r.Instructor)
	setNullable(updates, "class_location", r.Location)
	if r.MaxStudents != nil {
		updates["class_max_students"] = *r.MaxStudents
	}
	if r.IsActive != nil {
		updates["class_is_active"] = *r.IsActive
	}
	return updates, nil
}

type EnrollRequest struct {
	StudentID string `json:"student_id" validate:"required"`
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

type ClassResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	DayOfWeek   int       `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Instructor  *string   `json:"instructor,omitempty"`
	Location    *string   `json:"location,omitempty"`
	MaxStudents *int      `json:"max_students,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromClassModel(m model.ClassModel) ClassResponse {
	return ClassResponse{
		ID:          m.ClassID,
		Name:        m.ClassName,
		Description: m.ClassDescription,
		DayOfWeek:   m.ClassDayOfWeek,
		StartTime:   m.ClassStartTime,
		EndTime:     m.ClassEndTime,
		Instructor:  m.ClassInstructor,
		Location:    m.ClassLocation,
		MaxStudents: m.ClassMaxStudents,
		IsActive:    m.ClassIsActive,
		CreatedAt:   m.ClassCreatedAt,
		UpdatedAt:   m.ClassUpdatedAt,
	}
}

func FromClassModels(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromClassModel(m))
	}
	return out
}

package dto

import (
	"time"

	"eusouninja_backend/internals/features/attendance/model"
	helper "eusouninja_backend/internals/helpers"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type RecordAttendanceRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	ClassDate string  `json:"class_date" validate:"required,datetime=2006-01-02"`
	Present   bool    `json:"present"`
	Notes     *string `json:"notes" validate:"omitempty,max=500"`
}

type BulkAttendanceEntry struct {
	StudentID string  `json:"student_id" validate:"required"`
	Present   bool    `json:"present"`
	Notes     *string `json:"notes" validate:"omitempty,max=500"`
}

type BulkAttendanceRequest struct {
	ClassDate string                `json:"class_date" validate:"required,datetime=2006-01-02"`
	Entries   []BulkAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

type AttendanceResponse struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	ClassDate string    `json:"class_date"`
	Present   bool      `json:"present"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromAttendanceModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:        m.AttendanceID,
		StudentID: m.AttendanceStudentID,
		ClassDate: helper.FormatDate(m.AttendanceClassDate),
		Present:   m.AttendancePresent,
		Notes:     m.AttendanceNotes,
		CreatedAt: m.AttendanceCreatedAt,
		UpdatedAt: m.AttendanceUpdatedAt,
	}
}

func FromAttendanceModels(ms []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromAttendanceModel(m))
	}
	return out
}

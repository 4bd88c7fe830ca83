package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/attendance/dto"
	"eusouninja_backend/internals/features/attendance/repository"
	helper "eusouninja_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB   *gorm.DB
	Repo *repository.AttendanceRepository
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Repo: repository.NewAttendanceRepository(db)}
}

func (ac *AttendanceController) Record(c *fiber.Ctx) error {
	var req dto.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	day, err := helper.ParseDate(req.ClassDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class date")
	}

	id, err := ac.Repo.Record(c.UserContext(), req.StudentID, day, req.Present, req.Notes)
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attendance")
	}
	return helper.JsonOK(c, "Attendance recorded", fiber.Map{"id": id})
}

// RecordBulk applies one class date to many students; each entry is its
// own upsert, so a failure reports how far it got.
func (ac *AttendanceController) RecordBulk(c *fiber.Ctx) error {
	var req dto.BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	day, err := helper.ParseDate(req.ClassDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class date")
	}

	recorded := make([]fiber.Map, 0, len(req.Entries))
	for _, entry := range req.Entries {
		id, err := ac.Repo.Record(c.UserContext(), entry.StudentID, day, entry.Present, entry.Notes)
		if err != nil {
			if errors.Is(err, database.ErrUnavailable) {
				return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
			}
			return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError,
				"Failed to record attendance", fiber.Map{"recorded": len(recorded), "failed_student_id": entry.StudentID})
		}
		recorded = append(recorded, fiber.Map{"id": id, "student_id": entry.StudentID})
	}
	return helper.JsonOK(c, "Attendance recorded", fiber.Map{
		"recorded": len(recorded),
		"entries":  recorded,
	})
}

func (ac *AttendanceController) GetByDate(c *fiber.Ctx) error {
	raw := c.Query("class_date")
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_date is required")
	}
	day, err := helper.ParseDate(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class date")
	}

	rows, err := ac.Repo.GetByDate(c.UserContext(), day)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		out = append(out, fiber.Map{
			"id":           r.ID,
			"student_id":   r.StudentID,
			"student_name": r.StudentName,
			"class_date":   helper.FormatDate(r.ClassDate),
			"present":      r.Present,
			"notes":        r.Notes,
		})
	}
	return helper.JsonOK(c, "OK", out)
}

func (ac *AttendanceController) GetByStudent(c *fiber.Ctx) error {
	studentID := c.Params("id")

	start, end, err := helper.ParseDateRangeQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date filter")
	}

	rows, err := ac.Repo.GetByStudent(c.UserContext(), studentID, start, end)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}
	return helper.JsonOK(c, "OK", dto.FromAttendanceModels(rows))
}

func (ac *AttendanceController) GetStats(c *fiber.Ctx) error {
	studentID := c.Params("id")

	start, end, err := helper.ParseDateRangeQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date filter")
	}

	stats, err := ac.Repo.GetStats(c.UserContext(), studentID, start, end)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	return helper.JsonOK(c, "OK", stats)
}

func (ac *AttendanceController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ac.Repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete attendance")
	}
	return helper.JsonOK(c, "Attendance deleted", fiber.Map{"success": true})
}

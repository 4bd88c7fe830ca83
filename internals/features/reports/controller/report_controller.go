package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eusouninja_backend/internals/features/reports/service"
	helper "eusouninja_backend/internals/helpers"
)

type ReportController struct {
	DB      *gorm.DB
	Service *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Service: service.NewReportService(db)}
}

func (rc *ReportController) StudentFrequency(c *fiber.Ctx) error {
	start, end, err := helper.ParseDateRangeQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date filter")
	}

	report, err := rc.Service.StudentFrequency(c.UserContext(), c.Params("id"), start, end)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	if report == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "OK", report)
}

func (rc *ReportController) GeneralStats(c *fiber.Ctx) error {
	start, end, err := helper.ParseDateRangeQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date filter")
	}

	report, err := rc.Service.GeneralStats(c.UserContext(), start, end)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.JsonOK(c, "OK", report)
}

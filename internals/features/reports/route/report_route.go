package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eusouninja_backend/internals/features/reports/controller"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := api.Group("/reports")
	reports.Get("/frequency/:id", ctrl.StudentFrequency)
	reports.Get("/general-stats", ctrl.GeneralStats)
}

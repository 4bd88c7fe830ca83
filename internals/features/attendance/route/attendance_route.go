package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eusouninja_backend/internals/features/attendance/controller"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := api.Group("/attendance")
	attendance.Get("/", ctrl.GetByDate)
	attendance.Post("/", ctrl.Record)
	attendance.Post("/bulk", ctrl.RecordBulk)
	attendance.Get("/student/:id", ctrl.GetByStudent)
	attendance.Get("/student/:id/stats", ctrl.GetStats)
	attendance.Delete("/:id", ctrl.Delete)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "eusouninja_backend/internals/features/attendance/route"
	classRoute "eusouninja_backend/internals/features/classes/route"
	reportRoute "eusouninja_backend/internals/features/reports/route"
	studentRoute "eusouninja_backend/internals/features/students/route"
	authRoute "eusouninja_backend/internals/features/users/route"
	"eusouninja_backend/internals/middlewares"
)

// SetupRoutes mounts everything under /api. The session middleware runs on
// the whole group so /auth/me can see the user without requiring one;
// everything past /auth requires a signed-in admin session.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")
	api.Use(middlewares.SessionContext(db))

	authRoute.AuthRoutes(api, db)

	protected := api.Group("", middlewares.RequireAuth())
	studentRoute.StudentRoutes(protected, db)
	classRoute.ClassRoutes(protected, db)
	attendanceRoute.AttendanceRoutes(protected, db)
	reportRoute.ReportRoutes(protected, db)
}

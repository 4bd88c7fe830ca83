package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eusouninja_backend/internals/features/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	students := controller.NewStudentController(db)
	guardians := controller.NewGuardianController(db)

	s := api.Group("/students")
	s.Get("/", students.GetAll)
	s.Get("/active", students.GetActive)
	s.Get("/:id", students.Get)
	s.Post("/", students.Create)
	s.Put("/:id", students.Update)
	s.Delete("/:id", students.Delete)
	s.Get("/:id/guardians", guardians.ListByStudent)

	g := api.Group("/guardians")
	g.Post("/", guardians.Create)
	g.Put("/:id", guardians.Update)
	g.Delete("/:id", guardians.Delete)
}

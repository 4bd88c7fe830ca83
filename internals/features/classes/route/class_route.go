package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eusouninja_backend/internals/features/classes/controller"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db)

	classes := api.Group("/classes")
	classes.Get("/", ctrl.GetAll)
	classes.Get("/active", ctrl.GetActive)
	classes.Get("/student/:id", ctrl.ListByStudent)
	classes.Get("/:id", ctrl.Get)
	classes.Post("/", ctrl.Create)
	classes.Put("/:id", ctrl.Update)
	classes.Delete("/:id", ctrl.Delete)
	classes.Post("/:id/enroll", ctrl.Enroll)
	classes.Delete("/:id/enroll/:studentId", ctrl.Unenroll)
	classes.Get("/:id/students", ctrl.ListStudents)
}

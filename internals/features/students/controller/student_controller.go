package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/students/dto"
	"eusouninja_backend/internals/features/students/repository"
	helper "eusouninja_backend/internals/helpers"
)

var validate = validator.New()

type StudentController struct {
	DB   *gorm.DB
	Repo *repository.StudentRepository
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Repo: repository.NewStudentRepository(db)}
}

func (sc *StudentController) GetAll(c *fiber.Ctx) error {
	students, err := sc.Repo.GetAll(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}
	return helper.JsonOK(c, "OK", dto.FromStudentModels(students))
}

func (sc *StudentController) GetActive(c *fiber.Ctx) error {
	students, err := sc.Repo.GetActive(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}
	return helper.JsonOK(c, "OK", dto.FromStudentModels(students))
}

func (sc *StudentController) Get(c *fiber.Ctx) error {
	student, err := sc.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "OK", dto.FromStudentModel(*student))
}

func (sc *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid birth date")
	}

	id, err := sc.Repo.Create(c.UserContext(), m)
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.JsonCreated(c, "Student created", fiber.Map{"id": id})
}

func (sc *StudentController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	existing, err := sc.Repo.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}
	if existing == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	updates, err := req.Updates()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid birth date")
	}

	if err := sc.Repo.Update(c.UserContext(), id, updates); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonOK(c, "Student updated", fiber.Map{"success": true})
}

func (sc *StudentController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, err := sc.Repo.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}
	if existing == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	if err := sc.Repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.JsonOK(c, "Student deleted", fiber.Map{"success": true})
}

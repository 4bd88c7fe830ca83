package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/classes/dto"
	"eusouninja_backend/internals/features/classes/repository"
	studentRepo "eusouninja_backend/internals/features/students/repository"
	helper "eusouninja_backend/internals/helpers"
)

var validate = validator.New()

type ClassController struct {
	DB       *gorm.DB
	Repo     *repository.ClassRepository
	Students *studentRepo.StudentRepository
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{
		DB:       db,
		Repo:     repository.NewClassRepository(db),
		Students: studentRepo.NewStudentRepository(db),
	}
}

func (cc *ClassController) GetAll(c *fiber.Ctx) error {
	classes, err := cc.Repo.GetAll(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classes")
	}
	return helper.JsonOK(c, "OK", dto.FromClassModels(classes))
}

func (cc *ClassController) GetActive(c *fiber.Ctx) error {
	classes, err := cc.Repo.GetActive(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classes")
	}
	return helper.JsonOK(c, "OK", dto.FromClassModels(classes))
}

func (cc *ClassController) Get(c *fiber.Ctx) error {
	class, err := cc.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class")
	}
	if class == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonOK(c, "OK", dto.FromClassModel(*class))
}

func (cc *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	id, err := cc.Repo.Create(c.UserContext(), m)
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class created", fiber.Map{"id": id})
}

func (cc *ClassController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	existing, err := cc.Repo.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class")
	}
	if existing == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	updates, err := req.Updates(*existing)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := cc.Repo.Update(c.UserContext(), id, updates); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}
	return helper.JsonOK(c, "Class updated", fiber.Map{"success": true})
}

func (cc *ClassController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, err := cc.Repo.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class")
	}
	if existing == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	if err := cc.Repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	return helper.JsonOK(c, "Class deleted", fiber.Map{"success": true})
}

func (cc *ClassController) Enroll(c *fiber.Ctx) error {
	classID := c.Params("id")

	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class, err := cc.Repo.Get(c.UserContext(), classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class")
	}
	if class == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	student, err := cc.Students.Get(c.UserContext(), req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	id, err := cc.Repo.Enroll(c.UserContext(), classID, req.StudentID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyEnrolled) {
			return helper.JsonError(c, fiber.StatusConflict, "Student already enrolled")
		}
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enroll student")
	}
	return helper.JsonCreated(c, "Student enrolled", fiber.Map{"id": id})
}

func (cc *ClassController) Unenroll(c *fiber.Ctx) error {
	if err := cc.Repo.Unenroll(c.UserContext(), c.Params("id"), c.Params("studentId")); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to unenroll student")
	}
	return helper.JsonOK(c, "Student unenrolled", fiber.Map{"success": true})
}

func (cc *ClassController) ListStudents(c *fiber.Ctx) error {
	rows, err := cc.Repo.ListStudentsByClass(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load enrolled students")
	}
	return helper.JsonOK(c, "OK", rows)
}

func (cc *ClassController) ListByStudent(c *fiber.Ctx) error {
	classes, err := cc.Repo.ListByStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classes")
	}
	return helper.JsonOK(c, "OK", dto.FromClassModels(classes))
}

package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/students/dto"
	"eusouninja_backend/internals/features/students/repository"
	helper "eusouninja_backend/internals/helpers"
)

type GuardianController struct {
	DB       *gorm.DB
	Repo     *repository.GuardianRepository
	Students *repository.StudentRepository
}

func NewGuardianController(db *gorm.DB) *GuardianController {
	return &GuardianController{
		DB:       db,
		Repo:     repository.NewGuardianRepository(db),
		Students: repository.NewStudentRepository(db),
	}
}

func (gc *GuardianController) ListByStudent(c *fiber.Ctx) error {
	guardians, err := gc.Repo.ListByStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load guardians")
	}
	return helper.JsonOK(c, "OK", dto.FromGuardianModels(guardians))
}

func (gc *GuardianController) Create(c *fiber.Ctx) error {
	var req dto.CreateGuardianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student, err := gc.Students.Get(c.UserContext(), req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	id, err := gc.Repo.Create(c.UserContext(), req.ToModel())
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create guardian")
	}
	return helper.JsonCreated(c, "Guardian created", fiber.Map{"id": id})
}

func (gc *GuardianController) Update(c *fiber.Ctx) error {
	var req dto.UpdateGuardianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := gc.Repo.Update(c.UserContext(), c.Params("id"), req.Updates()); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update guardian")
	}
	return helper.JsonOK(c, "Guardian updated", fiber.Map{"success": true})
}

func (gc *GuardianController) Delete(c *fiber.Ctx) error {
	if err := gc.Repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete guardian")
	}
	return helper.JsonOK(c, "Guardian deleted", fiber.Map{"success": true})
}

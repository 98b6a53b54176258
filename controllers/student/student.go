package studentController

import (
	"errors"

	"aeropartner/middleware"
	"aeropartner/models"
	"aeropartner/storage"
	studentValidator "aeropartner/validators/student"

	"github.com/gofiber/fiber/v2"
)

type StudentController struct {
	Storage *storage.Storage
}

func New(st *storage.Storage) *StudentController {
	return &StudentController{Storage: st}
}

// resolvePartner maps the authenticated subject to its partner record.
func (ctrl *StudentController) resolvePartner(c *fiber.Ctx) (*models.Partner, error) {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	partner, err := ctrl.Storage.GetPartnerByUserID(userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}
	if err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch partner!", nil)
	}
	return partner, nil
}

// GetStudents returns the caller's full roster.
func (ctrl *StudentController) GetStudents(c *fiber.Ctx) error {
	partner, errResp := ctrl.resolvePartner(c)
	if partner == nil {
		return errResp
	}

	students, err := ctrl.Storage.GetPartnerStudents(partner.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}

// CreateStudent adds a trainee to the caller's roster.
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	partner, errResp := ctrl.resolvePartner(c)
	if partner == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedStudent").(*studentValidator.CreateStudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	student := models.Student{
		PartnerID: partner.ID,
		Name:      reqData.Name,
		Email:     reqData.Email,
		Phone:     reqData.Phone,
		Cpf:       reqData.Cpf,
		Address:   reqData.Address,
	}

	if err := ctrl.Storage.CreateStudent(&student); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student created successfully!", student)
}

// UpdateStudent edits a student on the caller's roster. Students owned
// by another partner are indistinguishable from missing ones.
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	partner, errResp := ctrl.resolvePartner(c)
	if partner == nil {
		return errResp
	}

	studentID := c.Locals("studentID").(uint)

	student, err := ctrl.Storage.GetStudent(studentID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && student.PartnerID != partner.ID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	reqData, ok := c.Locals("validatedStudentUpdate").(*studentValidator.UpdateStudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := make(map[string]interface{})
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Email != nil {
		updates["email"] = *reqData.Email
	}
	if reqData.Phone != nil {
		updates["phone"] = *reqData.Phone
	}
	if reqData.Cpf != nil {
		updates["cpf"] = *reqData.Cpf
	}
	if reqData.Address != nil {
		updates["address"] = *reqData.Address
	}
	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update!", nil)
	}

	updated, err := ctrl.Storage.UpdateStudent(studentID, updates)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully!", updated)
}

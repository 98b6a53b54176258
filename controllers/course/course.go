package courseController

import (
	"errors"

	"aeropartner/middleware"
	"aeropartner/models"
	"aeropartner/storage"
	courseValidator "aeropartner/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type CourseController struct {
	Storage *storage.Storage
}

func New(st *storage.Storage) *CourseController {
	return &CourseController{Storage: st}
}

// GetAllCourses returns the active catalog visible to every partner.
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	courses, err := ctrl.Storage.GetAllCourses()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns one course, deactivated ones included, so the
// detail view keeps working for historical enrollments.
func (ctrl *CourseController) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := ctrl.Storage.GetCourse(courseID)
	if errors.Is(err, storage.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", course)
}

// GetCourseEnrollments lists all enrollments in a course joined with
// student and partner. Used by the course-management view; any
// authenticated caller may read it.
func (ctrl *CourseController) GetCourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	if _, err := ctrl.Storage.GetCourse(courseID); errors.Is(err, storage.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enrollments, err := ctrl.Storage.GetCourseEnrollments(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// GetCourseDocuments returns the static material attached to a course.
func (ctrl *CourseController) GetCourseDocuments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	docs, err := ctrl.Storage.GetCourseDocuments(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course documents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course documents fetched successfully!", docs)
}

// CreateCourse adds a catalog entry. Admin only.
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	level := reqData.Level
	if level == "" {
		level = models.LevelBeginner
	}
	isActive := true
	if reqData.IsActive != nil {
		isActive = *reqData.IsActive
	}

	course := models.Course{
		Name:         reqData.Name,
		Description:  reqData.Description,
		Duration:     reqData.Duration,
		Instructors:  datatypes.NewJSONSlice(reqData.Instructors),
		Requirements: datatypes.NewJSONSlice(reqData.Requirements),
		ImageURL:     reqData.ImageURL,
		Level:        level,
		Rating:       reqData.Rating,
		IsActive:     isActive,
	}

	if err := ctrl.Storage.CreateCourse(&course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully!", course)
}

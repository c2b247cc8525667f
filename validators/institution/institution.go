package institutionValidator

import (
	"strconv"
	"strings"

	"eduplay/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func CreateInstitution() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          string  `json:"name"`
			Email         string  `json:"email"`
			ContactNumber *string `json:"contact_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		// Validate Email
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if err := validate.Var(reqData.Email, "email"); err != nil {
			errors["email"] = "Email must be a valid email address!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInstitution", reqData)
		return c.Next()
	}
}

func UpdateInstitution() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          *string `json:"name"`
			Email         *string `json:"email"`
			ContactNumber *string `json:"contact_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Name == nil && reqData.Email == nil && reqData.ContactNumber == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No valid fields provided!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Name cannot be empty!"
		}
		if reqData.Email != nil {
			if err := validate.Var(*reqData.Email, "email"); err != nil {
				errors["email"] = "Email must be a valid email address!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInstitutionUpdate", reqData)
		return c.Next()
	}
}

// InstitutionID validates the :id path segment before any storage access.
func InstitutionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Institution ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Institution ID!", nil)
		}

		c.Locals("institutionID", id)
		return c.Next()
	}
}

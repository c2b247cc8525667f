package lessonValidator

import (
	"strconv"
	"strings"

	"eduplay/middleware"
	"eduplay/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID   *uint   `json:"module_id"`
			Title      string  `json:"title"`
			Content    string  `json:"content"`
			VideoURL   *string `json:"video_url"`
			LessonType string  `json:"lesson_type"`
			OrderIndex *int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate ModuleID
		if reqData.ModuleID == nil || *reqData.ModuleID == 0 {
			errors["module_id"] = "Module ID is required!"
		}

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		// Validate LessonType against the fixed enumeration
		if strings.TrimSpace(reqData.LessonType) == "" {
			errors["lesson_type"] = "Lesson type is required!"
		} else if !models.IsValidLessonType(reqData.LessonType) {
			errors["lesson_type"] = "Invalid lesson type!"
		}

		// Validate VideoURL when supplied
		if reqData.VideoURL != nil && *reqData.VideoURL != "" {
			if err := validate.Var(*reqData.VideoURL, "url"); err != nil {
				errors["video_url"] = "Video URL must be a valid URL!"
			}
		}

		if reqData.OrderIndex != nil && *reqData.OrderIndex < 1 {
			errors["order_index"] = "Order index must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID   *uint   `json:"module_id"`
			Title      *string `json:"title"`
			Content    *string `json:"content"`
			VideoURL   *string `json:"video_url"`
			LessonType *string `json:"lesson_type"`
			OrderIndex *int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ModuleID == nil && reqData.Title == nil && reqData.Content == nil &&
			reqData.VideoURL == nil && reqData.LessonType == nil && reqData.OrderIndex == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No valid fields provided!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID != nil && *reqData.ModuleID == 0 {
			errors["module_id"] = "Module ID must be greater than 0!"
		}
		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.LessonType != nil && !models.IsValidLessonType(*reqData.LessonType) {
			errors["lesson_type"] = "Invalid lesson type!"
		}
		if reqData.VideoURL != nil && *reqData.VideoURL != "" {
			if err := validate.Var(*reqData.VideoURL, "url"); err != nil {
				errors["video_url"] = "Video URL must be a valid URL!"
			}
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 1 {
			errors["order_index"] = "Order index must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// LessonList validates the optional module_id equality filter.
func LessonList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Query("module_id"))
		if moduleIDStr == "" {
			return c.Next()
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module_id filter!", nil)
		}

		c.Locals("moduleIDFilter", moduleID)
		return c.Next()
	}
}

// LessonID validates the :id path segment before any storage access.
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		c.Locals("lessonID", id)
		return c.Next()
	}
}

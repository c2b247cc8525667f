package minigameValidator

import (
	"strconv"
	"strings"

	"eduplay/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateMinigame() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string  `json:"name"`
			Description *string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMinigame", reqData)
		return c.Next()
	}
}

func UpdateMinigame() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        *string `json:"name"`
			Description *string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Name == nil && reqData.Description == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No valid fields provided!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Name cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMinigameUpdate", reqData)
		return c.Next()
	}
}

// MinigameID validates the :id path segment before any storage access.
func MinigameID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Minigame ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Minigame ID!", nil)
		}

		c.Locals("minigameID", id)
		return c.Next()
	}
}

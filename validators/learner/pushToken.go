package learnerValidator

import (
	"strings"

	"eduplay/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterPushToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Token    string `json:"token"`
			Platform string `json:"platform"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Token) == "" {
			errors["token"] = "Push token is required!"
		}

		if reqData.Platform != "" && reqData.Platform != "android" && reqData.Platform != "ios" {
			errors["platform"] = "Platform must be android or ios!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPushToken", reqData)
		return c.Next()
	}
}

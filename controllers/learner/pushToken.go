package learnerController

import (
	"log"

	"eduplay/database"
	"eduplay/middleware"
	"eduplay/models"

	"github.com/gofiber/fiber/v2"
)

// RegisterPushToken stores or refreshes the caller's device push token.
// Tokens are unique across devices; re-registering an existing token
// reassigns it to the calling user.
func RegisterPushToken(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedPushToken").(*struct {
		Token    string `json:"token"`
		Platform string `json:"platform"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	platform := reqData.Platform
	if platform == "" {
		platform = "android"
	}

	db := database.Database.Db

	var deviceToken models.DeviceToken
	if err := db.Where("token = ?", reqData.Token).First(&deviceToken).Error; err == nil {
		deviceToken.UserID = userID
		deviceToken.Platform = platform
		if err := db.Save(&deviceToken).Error; err != nil {
			log.Printf("Failed to refresh push token for user %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register push token!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Push token refreshed!", deviceToken)
	}

	deviceToken = models.DeviceToken{
		UserID:   userID,
		Token:    reqData.Token,
		Platform: platform,
	}

	if err := db.Create(&deviceToken).Error; err != nil {
		switch database.TranslateError(err) {
		case database.ErrKindConflict:
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Push token already registered!", nil)
		default:
			log.Printf("Failed to register push token for user %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register push token!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Push token registered!", deviceToken)
}

package minigameController

import (
	"log"

	"eduplay/database"
	"eduplay/middleware"
	"eduplay/models"

	"github.com/gofiber/fiber/v2"
)

// CreateMinigame creates a new minigame
func CreateMinigame(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMinigame").(*struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	minigame := models.Minigame{
		Name:        reqData.Name,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&minigame).Error; err != nil {
		log.Printf("Failed to create minigame: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create minigame!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Minigame created successfully!", minigame)
}

// ListMinigames lists all minigames, newest first
func ListMinigames(c *fiber.Ctx) error {
	var minigames []models.Minigame
	if err := database.Database.Db.Order("created_at desc, id desc").Find(&minigames).Error; err != nil {
		log.Printf("Failed to fetch minigames: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch minigames!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Minigames fetched successfully!", minigames)
}

// GetMinigame returns a single minigame by id
func GetMinigame(c *fiber.Ctx) error {
	minigameID := c.Locals("minigameID").(int)

	var minigame models.Minigame
	if err := database.Database.Db.First(&minigame, minigameID).Error; err != nil {
		if database.TranslateError(err) == database.ErrKindNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Minigame not found!", nil)
		}
		log.Printf("Failed to fetch minigame %d: %v", minigameID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch minigame!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Minigame fetched successfully!", minigame)
}

// UpdateMinigame applies a partial update touching only supplied columns
func UpdateMinigame(c *fiber.Ctx) error {
	minigameID := c.Locals("minigameID").(int)

	reqData, ok := c.Locals("validatedMinigameUpdate").(*struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var minigame models.Minigame
	if err := database.Database.Db.First(&minigame, minigameID).Error; err != nil {
		if database.TranslateError(err) == database.ErrKindNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Minigame not found!", nil)
		}
		log.Printf("Failed to fetch minigame %d: %v", minigameID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch minigame!", nil)
	}

	updates := make(map[string]interface{})
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}

	if err := database.Database.Db.Model(&minigame).Updates(updates).Error; err != nil {
		log.Printf("Failed to update minigame %d: %v", minigameID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update minigame!", nil)
	}

	if err := database.Database.Db.First(&minigame, minigameID).Error; err != nil {
		log.Printf("Failed to reload minigame %d: %v", minigameID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch minigame!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Minigame updated successfully!", minigame)
}

// DeleteMinigame removes a minigame unless gameplay records still
// reference it
func DeleteMinigame(c *fiber.Ctx) error {
	minigameID := c.Locals("minigameID").(int)

	result := database.Database.Db.Delete(&models.Minigame{}, minigameID)
	if result.Error != nil {
		switch database.TranslateError(result.Error) {
		case database.ErrKindReference:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Minigame is still referenced by gameplay records!", nil)
		default:
			log.Printf("Failed to delete minigame %d: %v", minigameID, result.Error)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete minigame!", nil)
		}
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Minigame not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Minigame deleted successfully!", nil)
}

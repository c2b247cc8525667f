package institutionController

import (
	"log"

	"eduplay/database"
	"eduplay/middleware"
	"eduplay/models"
	"eduplay/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateInstitution registers a new institution
func CreateInstitution(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInstitution").(*struct {
		Name          string  `json:"name"`
		Email         string  `json:"email"`
		ContactNumber *string `json:"contact_number"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	institution := models.Institution{
		Name:          reqData.Name,
		Email:         reqData.Email,
		ContactNumber: reqData.ContactNumber,
	}

	if err := database.Database.Db.Create(&institution).Error; err != nil {
		switch database.TranslateError(err) {
		case database.ErrKindConflict:
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered!", nil)
		default:
			log.Printf("Failed to create institution: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create institution!", nil)
		}
	}

	// Welcome mail is best effort and must never block the response
	go func(inst models.Institution) {
		if err := utils.SendInstitutionWelcomeEmail(inst); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", inst.Email, err)
		}
	}(institution)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Institution created successfully!", institution)
}

// ListInstitutions lists all institutions, newest first
func ListInstitutions(c *fiber.Ctx) error {
	var institutions []models.Institution
	if err := database.Database.Db.Order("created_at desc, id desc").Find(&institutions).Error; err != nil {
		log.Printf("Failed to fetch institutions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch institutions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Institutions fetched successfully!", institutions)
}

// GetInstitution returns a single institution by id
func GetInstitution(c *fiber.Ctx) error {
	institutionID := c.Locals("institutionID").(int)

	var institution models.Institution
	if err := database.Database.Db.First(&institution, institutionID).Error; err != nil {
		if database.TranslateError(err) == database.ErrKindNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Institution not found!", nil)
		}
		log.Printf("Failed to fetch institution %d: %v", institutionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch institution!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Institution fetched successfully!", institution)
}

// UpdateInstitution applies a partial update; unsupplied fields keep
// their stored values (the write only touches supplied columns).
func UpdateInstitution(c *fiber.Ctx) error {
	institutionID := c.Locals("institutionID").(int)

	reqData, ok := c.Locals("validatedInstitutionUpdate").(*struct {
		Name          *string `json:"name"`
		Email         *string `json:"email"`
		ContactNumber *string `json:"contact_number"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var institution models.Institution
	if err := database.Database.Db.First(&institution, institutionID).Error; err != nil {
		if database.TranslateError(err) == database.ErrKindNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Institution not found!", nil)
		}
		log.Printf("Failed to fetch institution %d: %v", institutionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch institution!", nil)
	}

	updates := make(map[string]interface{})
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Email != nil {
		updates["email"] = *reqData.Email
	}
	if reqData.ContactNumber != nil {
		updates["contact_number"] = *reqData.ContactNumber
	}

	if err := database.Database.Db.Model(&institution).Updates(updates).Error; err != nil {
		switch database.TranslateError(err) {
		case database.ErrKindConflict:
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered!", nil)
		default:
			log.Printf("Failed to update institution %d: %v", institutionID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update institution!", nil)
		}
	}

	// Return the post-update record
	if err := database.Database.Db.First(&institution, institutionID).Error; err != nil {
		log.Printf("Failed to reload institution %d: %v", institutionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch institution!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Institution updated successfully!", institution)
}

// DeleteInstitution removes an institution unless other records still
// reference it
func DeleteInstitution(c *fiber.Ctx) error {
	institutionID := c.Locals("institutionID").(int)

	result := database.Database.Db.Delete(&models.Institution{}, institutionID)
	if result.Error != nil {
		switch database.TranslateError(result.Error) {
		case database.ErrKindReference:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Institution is still referenced by other records!", nil)
		default:
			log.Printf("Failed to delete institution %d: %v", institutionID, result.Error)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete institution!", nil)
		}
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Institution not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Institution deleted successfully!", nil)
}

package transactionController

import (
	"log"

	"eduplay/database"
	"eduplay/middleware"
	"eduplay/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateTransaction records a payment for an existing enrollment. The
// transaction id aliases the enrollment id, so an enrollment can carry
// at most one transaction.
func CreateTransaction(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTransaction").(*struct {
		EnrollID *uint    `json:"enroll_id"`
		Method   *string  `json:"method"`
		Amount   *float64 `json:"amount"`
		Status   *string  `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if the enrollment exists
	var enrollment models.Enrollment
	if err := db.First(&enrollment, *reqData.EnrollID).Error; err != nil {
		if database.TranslateError(err) == database.ErrKindNotFound {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enroll_id!", nil)
		}
		log.Printf("Failed to check enrollment %d: %v", *reqData.EnrollID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create transaction!", nil)
	}

	// Check if a transaction already exists for this enrollment
	var existing models.Transaction
	if err := db.First(&existing, *reqData.EnrollID).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Transaction already exists for this enrollment!", nil)
	}

	transaction := models.Transaction{
		ID:        *reqData.EnrollID,
		Reference: uuid.New().String(),
		Method:    reqData.Method,
		Status:    "pending",
	}
	if reqData.Amount != nil {
		transaction.Amount = *reqData.Amount
	}
	if reqData.Status != nil {
		transaction.Status = *reqData.Status
	}

	if err := db.Create(&transaction).Error; err != nil {
		switch database.TranslateError(err) {
		case database.ErrKindConflict:
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Transaction already exists for this enrollment!", nil)
		case database.ErrKindReference:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enroll_id!", nil)
		default:
			log.Printf("Failed to create transaction: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create transaction!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Transaction created successfully!", transaction)
}

// ListTransactions lists transactions, optionally filtered by status,
// newest first
func ListTransactions(c *fiber.Ctx) error {
	db := database.Database.Db
	if status, ok := c.Locals("statusFilter").(string); ok {
		db = db.Where("status = ?", status)
	}

	var transactions []models.Transaction
	if err := db.Order("created_at desc, id desc").Find(&transactions).Error; err != nil {
		log.Printf("Failed to fetch transactions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched successfully!", transactions)
}

// GetTransaction returns a single transaction by id
func GetTransaction(c *fiber.Ctx) error {
	transactionID := c.Locals("transactionID").(int)

	var transaction models.Transaction
	if err := database.Database.Db.First(&transaction, transactionID).Error; err != nil {
		if database.TranslateError(err) == database.ErrKindNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Transaction not found!", nil)
		}
		log.Printf("Failed to fetch transaction %d: %v", transactionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transaction!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction fetched successfully!", transaction)
}

// UpdateTransaction applies a partial update to method, amount or
// status; the id itself is immutable.
func UpdateTransaction(c *fiber.Ctx) error {
	transactionID := c.Locals("transactionID").(int)

	reqData, ok := c.Locals("validatedTransactionUpdate").(*struct {
		EnrollID *uint    `json:"enroll_id"`
		Method   *string  `json:"method"`
		Amount   *float64 `json:"amount"`
		Status   *string  `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var transaction models.Transaction
	if err := database.Database.Db.First(&transaction, transactionID).Error; err != nil {
		if database.TranslateError(err) == database.ErrKindNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Transaction not found!", nil)
		}
		log.Printf("Failed to fetch transaction %d: %v", transactionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transaction!", nil)
	}

	updates := make(map[string]interface{})
	if reqData.Method != nil {
		updates["method"] = *reqData.Method
	}
	if reqData.Amount != nil {
		updates["amount"] = *reqData.Amount
	}
	if reqData.Status != nil {
		updates["status"] = *reqData.Status
	}

	if err := database.Database.Db.Model(&transaction).Updates(updates).Error; err != nil {
		log.Printf("Failed to update transaction %d: %v", transactionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update transaction!", nil)
	}

	if err := database.Database.Db.First(&transaction, transactionID).Error; err != nil {
		log.Printf("Failed to reload transaction %d: %v", transactionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transaction!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction updated successfully!", transaction)
}

// DeleteTransaction removes a transaction
func DeleteTransaction(c *fiber.Ctx) error {
	transactionID := c.Locals("transactionID").(int)

	result := database.Database.Db.Delete(&models.Transaction{}, transactionID)
	if result.Error != nil {
		switch database.TranslateError(result.Error) {
		case database.ErrKindReference:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Transaction is still referenced by other records!", nil)
		default:
			log.Printf("Failed to delete transaction %d: %v", transactionID, result.Error)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete transaction!", nil)
		}
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Transaction not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction deleted successfully!", nil)
}

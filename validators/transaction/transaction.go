package transactionValidator

import (
	"strconv"
	"strings"

	"eduplay/middleware"
	"eduplay/models"

	"github.com/gofiber/fiber/v2"
)

func CreateTransaction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EnrollID *uint    `json:"enroll_id"`
			Method   *string  `json:"method"`
			Amount   *float64 `json:"amount"`
			Status   *string  `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// The transaction id aliases the enrollment id, so enroll_id is
		// the one mandatory field.
		if reqData.EnrollID == nil || *reqData.EnrollID == 0 {
			errors["enroll_id"] = "Enrollment ID is required!"
		}

		if reqData.Amount != nil && *reqData.Amount < 0 {
			errors["amount"] = "Amount cannot be negative!"
		}

		if reqData.Status != nil && !models.IsValidTransactionStatus(*reqData.Status) {
			errors["status"] = "Invalid transaction status!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransaction", reqData)
		return c.Next()
	}
}

func UpdateTransaction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EnrollID *uint    `json:"enroll_id"`
			Method   *string  `json:"method"`
			Amount   *float64 `json:"amount"`
			Status   *string  `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// The id is immutable after creation; reject any attempt to rekey.
		if reqData.EnrollID != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Transaction id cannot be changed!", nil)
		}

		if reqData.Method == nil && reqData.Amount == nil && reqData.Status == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No valid fields provided!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount != nil && *reqData.Amount < 0 {
			errors["amount"] = "Amount cannot be negative!"
		}
		if reqData.Status != nil && !models.IsValidTransactionStatus(*reqData.Status) {
			errors["status"] = "Invalid transaction status!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransactionUpdate", reqData)
		return c.Next()
	}
}

// TransactionList validates the optional status equality filter.
func TransactionList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := strings.TrimSpace(c.Query("status"))
		if status == "" {
			return c.Next()
		}

		if !models.IsValidTransactionStatus(status) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status filter!", nil)
		}

		c.Locals("statusFilter", status)
		return c.Next()
	}
}

// TransactionID validates the :id path segment before any storage access.
func TransactionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Transaction ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Transaction ID!", nil)
		}

		c.Locals("transactionID", id)
		return c.Next()
	}
}

package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"paydeck/app/models"
	"paydeck/app/repository"
)

// APIPaymentController serves the JSON mirror of the admin data functions:
// list, create, delete.
type APIPaymentController struct {
	paymentRepo repository.PaymentRepository
}

// NewAPIPaymentController creates a new API payment controller with repository
func NewAPIPaymentController(paymentRepo repository.PaymentRepository) *APIPaymentController {
	return &APIPaymentController{
		paymentRepo: paymentRepo,
	}
}

// createPaymentRequest is the POST /api/v1/payments body.
type createPaymentRequest struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	Email  string  `json:"email"`
}

// HandleGetPayments returns all payment records, unpaginated and
// unfiltered; the client derives its own view.
func (apc *APIPaymentController) HandleGetPayments(c *fiber.Ctx) error {
	payments, err := apc.paymentRepo.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store_unavailable",
			"message": "Failed to load payments",
		})
	}
	if payments == nil {
		payments = []models.Payment{}
	}

	return c.Status(fiber.StatusOK).JSON(payments)
}

// HandleCreatePayment persists a new payment record. An invalid status is
// rejected with the descriptive message before any write happens.
func (apc *APIPaymentController) HandleCreatePayment(c *fiber.Ctx) error {
	var req createPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	payment := models.Payment{
		ID:     req.ID,
		Amount: req.Amount,
		Status: req.Status,
		Email:  req.Email,
	}
	if !models.IsValidStatus(payment.Status) {
		invalid := &models.InvalidStatusError{Status: payment.Status}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_status",
			"message": invalid.Error(),
		})
	}
	if err := payment.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	if err := apc.paymentRepo.Create(&payment); err != nil {
		var invalid *models.InvalidStatusError
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "invalid_status",
				"message": invalid.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store_unavailable",
			"message": "Failed to create payment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

// HandleDeletePayment removes a payment record by id.
func (apc *APIPaymentController) HandleDeletePayment(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "id missing",
		})
	}

	if err := apc.paymentRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "not_found",
				"message": "Payment not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store_unavailable",
			"message": "Failed to delete payment",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ============================================================================
// GLOBAL API PAYMENT CONTROLLER INSTANCE - Singleton Pattern
// ============================================================================

var apiPaymentController *APIPaymentController

// InitializeAPIPaymentController initializes the global API payment controller
func InitializeAPIPaymentController() {
	paymentRepo := repository.GetGlobalFactory().GetPaymentRepository()
	apiPaymentController = NewAPIPaymentController(paymentRepo)
}

// GetAPIPaymentController returns the global API payment controller instance
func GetAPIPaymentController() *APIPaymentController {
	if apiPaymentController == nil {
		InitializeAPIPaymentController()
	}
	return apiPaymentController
}

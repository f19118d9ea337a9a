package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"photostudio-backend/config"
	"photostudio-backend/models"
	"photostudio-backend/services"
	"photostudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreatePaymentInput defines the expected JSON structure for recording a payment
type CreatePaymentInput struct {
	InvoiceID uint             `json:"invoice_id" binding:"required"`
	Amount    *decimal.Decimal `json:"amount" binding:"required"`
	Method    *string          `json:"method"`
	PaidAt    *time.Time       `json:"paid_at"`
}

// CreatePayment records a payment against an invoice. The acceptance rules
// (positive amount, invoice exists, no overpayment) live in the billing
// service; this handler only maps the outcomes.
func CreatePayment(c *gin.Context) {
	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	payment, err := services.RecordPayment(config.DB, input.InvoiceID, *input.Amount, input.Method, input.PaidAt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			utils.RespondWithError(c, http.StatusBadRequest, "Amount must be greater than zero")
		case errors.Is(err, services.ErrInvoiceNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		case errors.Is(err, services.ErrOverpayment):
			utils.RespondWithError(c, http.StatusBadRequest, "Payment exceeds invoice amount")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		}
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayments returns a page of payments, most recent first
func GetPayments(c *gin.Context) {
	skip, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payments []models.Payment
	if err := config.DB.Order("paid_at DESC, id DESC").
		Offset(skip).Limit(limit).Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetPayment retrieves a specific payment by ID
func GetPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID format")
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}

// DeletePayment removes a payment. Useful when an amount was entered wrong.
func DeletePayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID format")
		return
	}

	result := config.DB.Delete(&models.Payment{}, uint(id))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete payment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		return
	}

	c.Status(http.StatusNoContent)
}

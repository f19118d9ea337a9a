// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"photostudio-backend/config"
	"photostudio-backend/models"
	"photostudio-backend/services"
	"photostudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateInvoiceInput defines the expected JSON structure for creating an
// invoice. Dates come in as YYYY-MM-DD or a full timestamp.
type CreateInvoiceInput struct {
	ClientID   uint             `json:"client_id" binding:"required"`
	ShootID    *uint            `json:"shoot_id"`
	PackageID  *uint            `json:"package_id"`
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
	Status     string           `json:"status"`
	IssuedDate utils.Date       `json:"issued_date" binding:"required"`
	DueDate    *utils.Date      `json:"due_date"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an
// invoice. Shoot, package and due date accept an explicit null to clear the
// reference; leaving the key out leaves the field alone.
type UpdateInvoiceInput struct {
	ShootID    utils.Optional[uint]       `json:"shoot_id"`
	PackageID  utils.Optional[uint]       `json:"package_id"`
	Amount     *decimal.Decimal           `json:"amount"`
	Status     *string                    `json:"status"`
	IssuedDate *utils.Date                `json:"issued_date"`
	DueDate    utils.Optional[utils.Date] `json:"due_date"`
}

// CreateInvoice creates an invoice after confirming every referenced record
// exists. Shoot and package are optional.
func CreateInvoice(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Amount.Sign() < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount must be zero or greater")
		return
	}

	var client models.Client
	if err := config.DB.First(&client, input.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client does not exist")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ShootID != nil {
		var shoot models.Shoot
		if err := config.DB.First(&shoot, *input.ShootID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Shoot does not exist")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	if input.PackageID != nil {
		var pkg models.Package
		if err := config.DB.First(&pkg, *input.PackageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Package does not exist")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	status := input.Status
	if status == "" {
		status = "draft"
	}

	invoice := models.Invoice{
		ClientID:   input.ClientID,
		ShootID:    input.ShootID,
		PackageID:  input.PackageID,
		Amount:     *input.Amount,
		Status:     status,
		IssuedDate: input.IssuedDate.Time,
	}
	if input.DueDate != nil {
		due := input.DueDate.Time
		invoice.DueDate = &due
	}

	if err := config.DB.Create(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices returns a page of invoices, newest issued first, optionally
// filtered to an inclusive issued-date range.
func GetInvoices(c *gin.Context) {
	skip, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	dateFrom, err := utils.ParseDateQuery(c, "date_from")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	dateTo, err := utils.ParseDateQuery(c, "date_to")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	q := config.DB.Order("issued_date DESC, id DESC")
	if dateFrom != nil {
		q = q.Where("issued_date >= ?", *dateFrom)
	}
	if dateTo != nil {
		q = q.Where("issued_date <= ?", *dateTo)
	}

	var invoices []models.Invoice
	if err := q.Offset(skip).Limit(limit).Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice by ID
func GetInvoice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice applies a patch-style update. Shoot and package references
// are re-validated exactly as on create when they are being set.
func UpdateInvoice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ShootID.Set {
		if input.ShootID.Valid {
			var shoot models.Shoot
			if err := config.DB.First(&shoot, input.ShootID.Value).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					utils.RespondWithError(c, http.StatusBadRequest, "Shoot does not exist")
				} else {
					utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				}
				return
			}
			shootID := input.ShootID.Value
			invoice.ShootID = &shootID
		} else {
			invoice.ShootID = nil
		}
	}

	if input.PackageID.Set {
		if input.PackageID.Valid {
			var pkg models.Package
			if err := config.DB.First(&pkg, input.PackageID.Value).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					utils.RespondWithError(c, http.StatusBadRequest, "Package does not exist")
				} else {
					utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				}
				return
			}
			packageID := input.PackageID.Value
			invoice.PackageID = &packageID
		} else {
			invoice.PackageID = nil
		}
	}

	if input.Amount != nil {
		if input.Amount.Sign() < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Amount must be zero or greater")
			return
		}
		invoice.Amount = *input.Amount
	}
	if input.Status != nil {
		invoice.Status = *input.Status
	}
	if input.IssuedDate != nil {
		invoice.IssuedDate = input.IssuedDate.Time
	}
	if input.DueDate.Set {
		if input.DueDate.Valid {
			due := input.DueDate.Value.Time
			invoice.DueDate = &due
		} else {
			invoice.DueDate = nil
		}
	}

	if err := config.DB.Save(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice and its payments in one transaction
func DeleteInvoice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&invoice).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetInvoiceSummary returns the amount, total paid, balance and derived
// payment status for one invoice.
func GetInvoiceSummary(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	summary, err := services.SummarizeInvoice(config.DB, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

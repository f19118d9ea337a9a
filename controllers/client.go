package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"photostudio-backend/config"
	"photostudio-backend/models"
	"photostudio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateClientInput defines the expected JSON structure for creating a client.
// The email format is checked after normalization, not by a binding tag, so
// padded input like "  Jane@Example.COM " is accepted and stored trimmed.
type CreateClientInput struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required"`
	Phone *string `json:"phone"`
}

// UpdateClientInput defines the expected JSON structure for updating a client.
// Only fields present in the body are applied.
type UpdateClientInput struct {
	Name  *string                `json:"name"`
	Email *string                `json:"email"`
	Phone utils.Optional[string] `json:"phone"`
}

// CreateClient creates a new client with a unique email
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := utils.NormalizeEmail(input.Email)
	if !utils.ValidEmail(email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email address")
		return
	}

	// Check if email already exists
	var existing models.Client
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "A client with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	client := models.Client{
		Name:  input.Name,
		Email: email,
		Phone: input.Phone,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "A client with this email already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients returns a page of clients ordered by id
func GetClients(c *gin.Context) {
	skip, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var clients []models.Client
	if err := config.DB.Order("id").Offset(skip).Limit(limit).Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client by ID
func GetClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := config.DB.First(&client, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient applies a patch-style update to an existing client
func UpdateClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.First(&client, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		email := utils.NormalizeEmail(*input.Email)
		if !utils.ValidEmail(email) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid email address")
			return
		}

		// Re-check duplicates, excluding this client's own record
		var clash models.Client
		if err := config.DB.Where("email = ? AND id <> ?", email, client.ID).
			First(&clash).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Another client already uses this email")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		client.Email = email
	}
	if input.Phone.Set {
		if input.Phone.Valid {
			phone := input.Phone.Value
			client.Phone = &phone
		} else {
			client.Phone = nil
		}
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client together with its shoots, invoices and those
// invoices' payments, all in one transaction.
func DeleteClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := config.DB.First(&client, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		invoiceIDs := tx.Model(&models.Invoice{}).Select("id").Where("client_id = ?", client.ID)
		if err := tx.Where("invoice_id IN (?)", invoiceIDs).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", client.ID).Delete(&models.Invoice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", client.ID).Delete(&models.Shoot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	c.Status(http.StatusNoContent)
}

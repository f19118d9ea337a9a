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

// CreateShootInput defines the expected JSON structure for creating a shoot.
// Dates come in as YYYY-MM-DD or a full timestamp.
type CreateShootInput struct {
	ClientID  uint       `json:"client_id" binding:"required"`
	ShootDate utils.Date `json:"shoot_date" binding:"required"`
	Location  *string    `json:"location"`
}

// UpdateShootInput defines the expected JSON structure for updating a shoot
type UpdateShootInput struct {
	ShootDate *utils.Date            `json:"shoot_date"`
	Location  utils.Optional[string] `json:"location"`
}

// CreateShoot creates a shoot for an existing client
func CreateShoot(c *gin.Context) {
	var input CreateShootInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// The client must exist before a shoot can reference it
	var client models.Client
	if err := config.DB.First(&client, input.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client does not exist")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	shoot := models.Shoot{
		ClientID:  input.ClientID,
		ShootDate: input.ShootDate.Time,
		Location:  input.Location,
	}

	if err := config.DB.Create(&shoot).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create shoot")
		return
	}

	c.JSON(http.StatusCreated, shoot)
}

// GetShoots returns a page of shoots, most recent shoot date first
func GetShoots(c *gin.Context) {
	skip, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var shoots []models.Shoot
	if err := config.DB.Order("shoot_date DESC, id DESC").
		Offset(skip).Limit(limit).Find(&shoots).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve shoots")
		return
	}

	c.JSON(http.StatusOK, shoots)
}

// GetShoot retrieves a specific shoot by ID
func GetShoot(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shoot ID format")
		return
	}

	var shoot models.Shoot
	if err := config.DB.First(&shoot, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shoot not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, shoot)
}

// UpdateShoot applies a patch-style update to an existing shoot
func UpdateShoot(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shoot ID format")
		return
	}

	var input UpdateShootInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var shoot models.Shoot
	if err := config.DB.First(&shoot, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shoot not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ShootDate != nil {
		shoot.ShootDate = input.ShootDate.Time
	}
	if input.Location.Set {
		if input.Location.Valid {
			location := input.Location.Value
			shoot.Location = &location
		} else {
			shoot.Location = nil
		}
	}

	if err := config.DB.Save(&shoot).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update shoot")
		return
	}

	c.JSON(http.StatusOK, shoot)
}

// DeleteShoot removes a shoot and clears the shoot reference on any invoices
// that pointed at it.
func DeleteShoot(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shoot ID format")
		return
	}

	var shoot models.Shoot
	if err := config.DB.First(&shoot, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shoot not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Invoice{}).Where("shoot_id = ?", shoot.ID).
			Update("shoot_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&shoot).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete shoot")
		return
	}

	c.Status(http.StatusNoContent)
}

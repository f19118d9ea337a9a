package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"photostudio-backend/config"
	"photostudio-backend/models"
	"photostudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreatePackageInput defines the expected JSON structure for creating a package
type CreatePackageInput struct {
	Name        string           `json:"name" binding:"required"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	IsActive    *bool            `json:"is_active"`
}

// UpdatePackageInput defines the expected JSON structure for updating a package
type UpdatePackageInput struct {
	Name        *string                `json:"name"`
	Description utils.Optional[string] `json:"description"`
	Price       *decimal.Decimal       `json:"price"`
	IsActive    *bool                  `json:"is_active"`
}

// CreatePackage creates a package. Name uniqueness is left to the store's
// unique index; a violation surfaces as a conflict.
func CreatePackage(c *gin.Context) {
	var input CreatePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Price.Sign() < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must be zero or greater")
		return
	}

	pkg := models.Package{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		IsActive:    true,
	}
	if input.IsActive != nil {
		pkg.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "A package with this name already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create package")
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// GetPackages returns a page of packages, newest first
func GetPackages(c *gin.Context) {
	skip, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var packages []models.Package
	if err := config.DB.Order("id DESC").Offset(skip).Limit(limit).Find(&packages).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve packages")
		return
	}

	c.JSON(http.StatusOK, packages)
}

// GetPackage retrieves a specific package by ID
func GetPackage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid package ID format")
		return
	}

	var pkg models.Package
	if err := config.DB.First(&pkg, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// UpdatePackage applies a patch-style update to an existing package
func UpdatePackage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid package ID format")
		return
	}

	var input UpdatePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var pkg models.Package
	if err := config.DB.First(&pkg, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		pkg.Name = *input.Name
	}
	if input.Description.Set {
		if input.Description.Valid {
			description := input.Description.Value
			pkg.Description = &description
		} else {
			pkg.Description = nil
		}
	}
	if input.Price != nil {
		if input.Price.Sign() < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Price must be zero or greater")
			return
		}
		pkg.Price = *input.Price
	}
	if input.IsActive != nil {
		pkg.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "A package with this name already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update package")
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// DeletePackage removes a package and clears the package reference on any
// invoices that selected it.
func DeletePackage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid package ID format")
		return
	}

	var pkg models.Package
	if err := config.DB.First(&pkg, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Invoice{}).Where("package_id = ?", pkg.ID).
			Update("package_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&pkg).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete package")
		return
	}

	c.Status(http.StatusNoContent)
}

// controllers/report.go
package controllers

import (
	"net/http"

	"photostudio-backend/config"
	"photostudio-backend/services"
	"photostudio-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles the read-only reporting endpoints
type ReportController struct{}

// GetInvoiceReport returns one row per invoice with client name, package
// name, shoot location, totals, balance and derived payment status.
// Optional date_from/date_to bound the issued date, inclusive on both ends.
func (rc *ReportController) GetInvoiceReport(c *gin.Context) {
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

	rows, err := services.NewReportSource(config.DB).InvoiceRows(dateFrom, dateTo)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build invoice report")
		return
	}

	c.JSON(http.StatusOK, rows)
}

package handlers

import (
	"net/http"

	appointmentService "nutribook/services/appointment"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
)

// GetInvoiceHandler returns one of the patient's invoices.
func GetInvoiceHandler(svc appointmentService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		patientID := c.GetString("patientID")

		inv, err := svc.GetInvoice(c.Request.Context(), c.Param("id"), patientID)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "invoice not found", err.Error())
			return
		}
		c.JSON(http.StatusOK, inv)
	}
}

// ListInvoicesHandler lists the patient's invoices.
func ListInvoicesHandler(svc appointmentService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		patientID := c.GetString("patientID")

		invoices, err := svc.ListInvoices(c.Request.Context(), patientID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load invoices", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"invoices": invoices})
	}
}

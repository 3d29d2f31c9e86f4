package handlers

import (
	"errors"
	"net/http"

	"nutribook/models"
	"nutribook/services/booking"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeFlowError maps booking flow errors to HTTP responses. Validation
// failures are client errors that name the offending field; everything else
// is opaque.
func writeFlowError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":        "validation failed",
			"step":         verr.Step,
			"missingField": verr.MissingField,
		})
		return
	}
	var serr *booking.SessionError
	if errors.As(err, &serr) {
		utils.JSONError(c, http.StatusNotFound, "booking session not found", serr.Reason)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "booking request failed", err.Error())
}

// StartSessionHandler opens a booking session for a plan package.
func StartSessionHandler(flow booking.FlowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PlanSlug    string `json:"planSlug" binding:"required"`
			PackageSlug string `json:"packageSlug"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		patientID := c.GetString("patientID")

		sessionID, appt, err := flow.StartSession(c.Request.Context(), patientID, input.PlanSlug, input.PackageSlug)
		if err != nil {
			writeFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"sessionId":   sessionID,
			"appointment": appt,
			"route":       booking.RouteUserDetails,
		})
	}
}

// GetFormHandler returns the accumulated form for a session.
func GetFormHandler(flow booking.FlowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := flow.GetForm(c.Request.Context(), c.Param("sessionID"))
		if err != nil {
			writeFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, form)
	}
}

// MergeFormHandler merges submitted fields into the session's form. Unknown
// field names are rejected outright rather than silently dropped.
func MergeFormHandler(flow booking.FlowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		patch, err := models.ParseFormPatch(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid form patch", err.Error())
			return
		}
		form, err := flow.MergeForm(c.Request.Context(), c.Param("sessionID"), patch)
		if err != nil {
			writeFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, form)
	}
}

// AdvanceHandler validates the current step and returns the next route.
func AdvanceHandler(flow booking.FlowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Step string `json:"step" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		route, err := flow.Advance(c.Request.Context(), c.Param("sessionID"), models.Step(input.Step))
		if err != nil {
			writeFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"route": route})
	}
}

// BackHandler returns the previous step's route. Back navigation never
// validates and never loses data.
func BackHandler(flow booking.FlowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Step string `json:"step" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		route, ok := flow.Back(models.Step(input.Step))
		if !ok {
			c.JSON(http.StatusOK, gin.H{"route": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"route": route})
	}
}

// CancelSessionHandler discards the session form.
func CancelSessionHandler(flow booking.FlowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := flow.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
			writeFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}

// ListSlotsHandler lists open consultation slots for a date and mode.
func ListSlotsHandler(availability booking.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
			return
		}
		mode := c.Query("mode")

		slots, err := availability.ListAvailableSlots(c.Request.Context(), date, mode)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list slots", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"slots": slots})
	}
}

// CreateOrderHandler opens a payment order for the session's package.
func CreateOrderHandler(flow booking.FlowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		inv, clientSecret, err := flow.CreateOrder(c.Request.Context(), c.Param("sessionID"))
		if err != nil {
			writeFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"invoiceId":    inv.InvoiceID,
			"amountPaise":  inv.AmountPaise,
			"currency":     inv.Currency,
			"clientSecret": clientSecret,
		})
	}
}

// ConfirmBookingHandler settles the payment and finalizes the appointment.
func ConfirmBookingHandler(flow booking.FlowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PaymentID string `json:"paymentId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		appt, err := flow.Confirm(c.Request.Context(), c.Param("sessionID"), input.PaymentID)
		if err != nil {
			getLogger(c).Warn("booking confirmation failed",
				zap.String("sessionId", c.Param("sessionID")), zap.Error(err))
			writeFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"appointment": appt,
			"route":       booking.RouteBookingComplete,
		})
	}
}

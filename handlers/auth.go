package handlers

import (
	"errors"
	"net/http"

	"nutribook/models"
	patientService "nutribook/services/patient"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
)

// RegisterPatientHandler creates a patient account and starts phone
// verification.
func RegisterPatientHandler(svc patientService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     string `json:"name" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Phone    string `json:"phone"`
			Password string `json:"password" binding:"required,min=8"`
			DOB      string `json:"dob"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		patient := &models.Patient{
			Name:  input.Name,
			Email: input.Email,
			Phone: input.Phone,
			DOB:   input.DOB,
		}
		resp, err := svc.RegisterPatient(c.Request.Context(), patient, input.Password)
		if err != nil {
			var dup patientService.DuplicateEmailError
			if errors.As(err, &dup) {
				utils.JSONError(c, http.StatusConflict, "account already exists", dup.Error())
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "registration failed", err.Error())
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// AuthenticatePatientHandler verifies credentials and returns a token. An
// unverified account gets a 403 carrying the patient ID so the client can
// route to OTP entry.
func AuthenticatePatientHandler(svc patientService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		resp, err := svc.AuthenticatePatient(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			var pending patientService.OTPPendingError
			if errors.As(err, &pending) {
				c.JSON(http.StatusForbidden, gin.H{
					"error":     "verification pending",
					"patientId": pending.PatientID,
				})
				return
			}
			utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// VerifyOTPHandler confirms the one-time code sent to the patient's phone.
func VerifyOTPHandler(svc patientService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PatientID string `json:"patientId" binding:"required"`
			OTP       string `json:"otp" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		if err := svc.VerifyOTP(c.Request.Context(), input.PatientID, input.OTP); err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "OTP verification failed", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "verified"})
	}
}

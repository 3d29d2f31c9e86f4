package handlers

import (
	"net/http"

	patientService "nutribook/services/patient"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
)

// GetProfileHandler returns the authenticated patient's profile.
func GetProfileHandler(svc patientService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		patientID := c.GetString("patientID")

		patient, err := svc.GetPatient(c.Request.Context(), patientID)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "patient not found", err.Error())
			return
		}
		c.JSON(http.StatusOK, patient)
	}
}

// UpdateProfileHandler applies profile changes for the authenticated patient.
func UpdateProfileHandler(svc patientService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		patientID := c.GetString("patientID")

		var input struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
			DOB   string `json:"dob"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		patient, err := svc.GetPatient(c.Request.Context(), patientID)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "patient not found", err.Error())
			return
		}
		if input.Name != "" {
			patient.Name = input.Name
		}
		if input.Phone != "" {
			patient.Phone = input.Phone
		}
		if input.DOB != "" {
			patient.DOB = input.DOB
		}
		if err := svc.UpdatePatient(c.Request.Context(), patient); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to update profile", err.Error())
			return
		}
		c.JSON(http.StatusOK, patient)
	}
}

// DeleteProfileHandler removes the authenticated patient's account.
func DeleteProfileHandler(svc patientService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		patientID := c.GetString("patientID")

		if err := svc.DeletePatient(c.Request.Context(), patientID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to delete account", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

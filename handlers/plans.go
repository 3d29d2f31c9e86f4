package handlers

import (
	"net/http"

	"nutribook/services/booking"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
)

// ListPlansHandler returns the consultation plan catalog.
func ListPlansHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"plans": booking.ListPlans()})
	}
}

// GetPlanHandler returns one plan by slug.
func GetPlanHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, err := booking.GetPlanBySlug(c.Param("slug"))
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "plan not found", err.Error())
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

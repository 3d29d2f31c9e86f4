package handlers

import (
	"net/http"

	appointmentService "nutribook/services/appointment"
	"nutribook/services/booking"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListPendingHandler lists the patient's unfinished bookings. A storage
// failure is reported as an error, never shown as an empty list: the client
// must be able to tell "nothing pending" apart from "could not check".
func ListPendingHandler(svc appointmentService.Service, rec *booking.Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		patientID := c.GetString("patientID")

		appts, err := svc.ListPending(c.Request.Context(), patientID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load pending appointments", err.Error())
			return
		}

		type pendingView struct {
			ID              string `json:"id"`
			PlanName        string `json:"planName"`
			PlanPackageName string `json:"planPackageName,omitempty"`
			PlanPrice       string `json:"planPrice,omitempty"`
			Mode            string `json:"mode,omitempty"`
			SlotLabel       string `json:"slotLabel,omitempty"`
			AppointmentDate string `json:"appointmentDate,omitempty"`
			ProgressLabel   string `json:"progressLabel"`
			ResumeRoute     string `json:"resumeRoute"`
		}
		views := make([]pendingView, 0, len(appts))
		for _, a := range appts {
			views = append(views, pendingView{
				ID:              a.ID,
				PlanName:        a.PlanName,
				PlanPackageName: a.PlanPackageName,
				PlanPrice:       a.PlanPrice,
				Mode:            a.Mode,
				SlotLabel:       a.SlotLabel,
				AppointmentDate: a.AppointmentDate,
				ProgressLabel:   rec.LabelForProgress(a.BookingProgress),
				ResumeRoute:     rec.RouteForProgress(a.BookingProgress),
			})
		}
		c.JSON(http.StatusOK, gin.H{"pending": views})
	}
}

// DeletePendingHandler removes a pending appointment. The record is only
// reported gone once the delete actually succeeded.
func DeletePendingHandler(svc appointmentService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		patientID := c.GetString("patientID")
		id := c.Param("id")

		if err := svc.DeletePending(c.Request.Context(), id, patientID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to delete pending appointment", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": id})
	}
}

// ResumeBookingHandler rehydrates a booking session from a pending
// appointment and returns the session plus the step route to continue at.
func ResumeBookingHandler(svc appointmentService.Service, rec *booking.Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		patientID := c.GetString("patientID")
		id := c.Param("id")

		appt, err := svc.GetPending(c.Request.Context(), id)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "pending appointment not found", err.Error())
			return
		}
		if appt.PatientID != patientID {
			utils.JSONError(c, http.StatusNotFound, "pending appointment not found", "")
			return
		}

		sessionID, route, err := rec.Resume(c.Request.Context(), appt)
		if err != nil {
			getLogger(c).Error("failed to resume booking",
				zap.String("appointmentId", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to resume booking", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "route": route})
	}
}

// ListAppointmentsHandler lists the patient's confirmed appointments.
func ListAppointmentsHandler(svc appointmentService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		patientID := c.GetString("patientID")

		appts, err := svc.ListAppointments(c.Request.Context(), patientID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load appointments", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"appointments": appts})
	}
}

package handlers

import (
	patientRepoPkg "nutribook/database/repository/patient"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	PatientRepo patientRepoPkg.PatientRepository

	// Patient auth endpoints
	RegisterPatientHandler     gin.HandlerFunc
	AuthenticatePatientHandler gin.HandlerFunc
	VerifyOTPHandler           gin.HandlerFunc

	// Patient profile endpoints
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	DeleteProfileHandler gin.HandlerFunc

	// Booking flow endpoints
	StartSessionHandler   gin.HandlerFunc
	GetFormHandler        gin.HandlerFunc
	MergeFormHandler      gin.HandlerFunc
	AdvanceHandler        gin.HandlerFunc
	BackHandler           gin.HandlerFunc
	CancelSessionHandler  gin.HandlerFunc
	ListSlotsHandler      gin.HandlerFunc
	CreateOrderHandler    gin.HandlerFunc
	ConfirmBookingHandler gin.HandlerFunc

	// Appointment endpoints
	ListPendingHandler      gin.HandlerFunc
	DeletePendingHandler    gin.HandlerFunc
	ResumeBookingHandler    gin.HandlerFunc
	ListAppointmentsHandler gin.HandlerFunc

	// Plan and invoice endpoints
	ListPlansHandler    gin.HandlerFunc
	GetPlanHandler      gin.HandlerFunc
	GetInvoiceHandler   gin.HandlerFunc
	ListInvoicesHandler gin.HandlerFunc

	// Report uploads
	UploadReportHandler gin.HandlerFunc
}

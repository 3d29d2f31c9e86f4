package routes

import (
	"net/http"
	"time"

	"nutribook/handlers"
	"nutribook/middleware"
	"nutribook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers patient account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterPatientHandler)
		api.POST("/login", hb.AuthenticatePatientHandler)
		api.POST("/verify-otp", hb.VerifyOTPHandler)
	}
}

// RegisterProfileRoutes registers the authenticated patient's profile
// endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
	{
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.DELETE("/me", hb.DeleteProfileHandler)
	}
}

// RegisterPlanRoutes registers the public plan catalog endpoints.
func RegisterPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/plans")
	{
		api.GET("", hb.ListPlansHandler)
		api.GET("/:slug", hb.GetPlanHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	bookingGroup.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
	{
		bookingGroup.POST("/session", hb.StartSessionHandler)
		bookingGroup.GET("/session/:sessionID/form", hb.GetFormHandler)
		bookingGroup.PATCH("/session/:sessionID/form", hb.MergeFormHandler)
		bookingGroup.POST("/session/:sessionID/advance", hb.AdvanceHandler)
		bookingGroup.POST("/session/:sessionID/back", hb.BackHandler)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSessionHandler)
		bookingGroup.GET("/slots", hb.ListSlotsHandler)
		bookingGroup.POST("/session/:sessionID/order", hb.CreateOrderHandler)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBookingHandler)
	}
}

// RegisterAppointmentRoutes sets up pending and confirmed appointment
// endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
	{
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/pending", hb.ListPendingHandler)
		api.DELETE("/pending/:id", hb.DeletePendingHandler)
		api.POST("/pending/:id/resume", hb.ResumeBookingHandler)
	}
}

// RegisterInvoiceRoutes sets up invoice endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
	{
		api.GET("", hb.ListInvoicesHandler)
		api.GET("/:id", hb.GetInvoiceHandler)
	}
}

// RegisterReportRoutes sets up medical report upload endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
	{
		api.POST("", hb.UploadReportHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterPlanRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterReportRoutes(r, hb)
}

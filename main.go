package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutribook/config"
	"nutribook/cron"
	"nutribook/database"
	appointmentRepoPkg "nutribook/database/repository/appointment"
	invoiceRepoPkg "nutribook/database/repository/invoice"
	patientRepoPkg "nutribook/database/repository/patient"
	slotRepoPkg "nutribook/database/repository/slot"
	"nutribook/handlers"
	"nutribook/routes"
	appointmentService "nutribook/services/appointment"
	"nutribook/services/booking"
	patientService "nutribook/services/patient"
	"nutribook/services/tasks"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, report uploads disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	pendingRepo := appointmentRepoPkg.NewMongoPendingRepo()
	confirmedRepo := appointmentRepoPkg.NewMongoConfirmedRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	slotRepo := slotRepoPkg.NewMongoSlotRepo()

	// Seed the clinic's standard slot templates on an empty collection.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := slotRepo.Seed(seedCtx, booking.DefaultSlotTemplates()); err != nil {
		logger.Sugar().Warnf("main: failed to seed slot templates: %v", err)
	}
	seedCancel()

	// services.
	reminderScheduler := tasks.NewAsynqScheduler(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer reminderScheduler.Close()

	apptService := &appointmentService.DefaultService{
		Pending:   pendingRepo,
		Confirmed: confirmedRepo,
		Invoices:  invoiceRepo,
		Slots:     slotRepo,
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	patientSvc := &patientService.DefaultService{
		Repo:   patientRepo,
		Logger: logger,
	}

	sessionTTL := time.Duration(config.AppConfig.BookingSessionTTLMin) * time.Minute
	formStore := booking.NewFormStore(utils.GetBookingCacheClient(), sessionTTL)
	sequencer := booking.NewSequencer()
	reconciler := booking.NewReconciler(formStore, logger)
	paymentHandler := booking.NewPaymentHandler(logger)
	availability := &booking.DefaultAvailabilityService{
		Slots:     slotRepo,
		Confirmed: confirmedRepo,
	}
	flowService := booking.NewFlowService(formStore, sequencer, apptService, paymentHandler, logger)

	// Start the reminder worker alongside the API.
	cron.InitReminderWorker()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		PatientRepo: patientRepo,

		RegisterPatientHandler:     handlers.RegisterPatientHandler(patientSvc),
		AuthenticatePatientHandler: handlers.AuthenticatePatientHandler(patientSvc),
		VerifyOTPHandler:           handlers.VerifyOTPHandler(patientSvc),

		GetProfileHandler:    handlers.GetProfileHandler(patientSvc),
		UpdateProfileHandler: handlers.UpdateProfileHandler(patientSvc),
		DeleteProfileHandler: handlers.DeleteProfileHandler(patientSvc),

		StartSessionHandler:   handlers.StartSessionHandler(flowService),
		GetFormHandler:        handlers.GetFormHandler(flowService),
		MergeFormHandler:      handlers.MergeFormHandler(flowService),
		AdvanceHandler:        handlers.AdvanceHandler(flowService),
		BackHandler:           handlers.BackHandler(flowService),
		CancelSessionHandler:  handlers.CancelSessionHandler(flowService),
		ListSlotsHandler:      handlers.ListSlotsHandler(availability),
		CreateOrderHandler:    handlers.CreateOrderHandler(flowService),
		ConfirmBookingHandler: handlers.ConfirmBookingHandler(flowService),

		ListPendingHandler:      handlers.ListPendingHandler(apptService, reconciler),
		DeletePendingHandler:    handlers.DeletePendingHandler(apptService),
		ResumeBookingHandler:    handlers.ResumeBookingHandler(apptService, reconciler),
		ListAppointmentsHandler: handlers.ListAppointmentsHandler(apptService),

		ListPlansHandler:    handlers.ListPlansHandler(),
		GetPlanHandler:      handlers.GetPlanHandler(),
		GetInvoiceHandler:   handlers.GetInvoiceHandler(apptService),
		ListInvoicesHandler: handlers.ListInvoicesHandler(apptService),
	}

	if cloudinaryStorageService != nil {
		reportHandler := handlers.NewReportHandler(cloudinaryStorageService)
		handlerBundle.UploadReportHandler = reportHandler.UploadReportHandler
	} else {
		handlerBundle.UploadReportHandler = func(c *gin.Context) {
			utils.JSONError(c, http.StatusServiceUnavailable, "report uploads unavailable", "storage not configured")
		}
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetBookingCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetOTPCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

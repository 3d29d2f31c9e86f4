package booking

import (
	"context"
	"fmt"

	appointmentService "nutribook/services/appointment"

	"nutribook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FlowService orchestrates a patient's booking session end to end: session
// lifecycle, form accumulation, step navigation, and payment settlement.
type FlowService interface {
	// StartSession opens a fresh booking session for a plan and returns the
	// session ID plus the pending appointment backing it.
	StartSession(ctx context.Context, patientID, planSlug, packageSlug string) (string, *models.PendingAppointment, error)
	// GetForm returns the accumulated form for a session.
	GetForm(ctx context.Context, sessionID string) (*models.BookingForm, error)
	// MergeForm merges a field patch into the session's form.
	MergeForm(ctx context.Context, sessionID string, patch models.FormPatch) (*models.BookingForm, error)
	// Advance validates the step against the session's form and, on success,
	// returns the next route. A ValidationError names the first missing field.
	Advance(ctx context.Context, sessionID string, step models.Step) (string, error)
	// Back returns the prior step's route without any validation.
	Back(step models.Step) (string, bool)
	// Cancel discards the session's form. The pending appointment survives so
	// the patient can resume later.
	Cancel(ctx context.Context, sessionID string) error
	// CreateOrder opens a payment order for the session's selected package and
	// returns the invoice draft plus the gateway client secret.
	CreateOrder(ctx context.Context, sessionID string) (*models.Invoice, string, error)
	// Confirm settles the payment and finalizes the appointment. The form is
	// reset only after everything else succeeded.
	Confirm(ctx context.Context, sessionID, paymentID string) (*models.Appointment, error)
}

// DefaultFlowService is the production implementation.
type DefaultFlowService struct {
	Store        *FormStore
	Sequencer    *Sequencer
	Appointments appointmentService.Service
	Payments     PaymentHandler
	Logger       *zap.Logger
}

// NewFlowService wires a DefaultFlowService.
func NewFlowService(store *FormStore, seq *Sequencer, appts appointmentService.Service, payments PaymentHandler, logger *zap.Logger) *DefaultFlowService {
	return &DefaultFlowService{
		Store:        store,
		Sequencer:    seq,
		Appointments: appts,
		Payments:     payments,
		Logger:       logger,
	}
}

// StartSession creates the pending appointment record and seeds the session
// form with the plan metadata, so every later step already knows what is
// being booked.
func (f *DefaultFlowService) StartSession(ctx context.Context, patientID, planSlug, packageSlug string) (string, *models.PendingAppointment, error) {
	plan, pkg, err := GetPlanPackage(planSlug, packageSlug)
	if err != nil {
		return "", nil, err
	}

	appt := &models.PendingAppointment{
		ID:              uuid.New().String(),
		PatientID:       patientID,
		PlanSlug:        plan.Slug,
		PlanName:        plan.Name,
		PlanPrice:       pkg.Price,
		PlanPackageName: pkg.Name,
		PlanDuration:    pkg.Duration,
		BookingProgress: models.StepUserDetails,
	}
	if err := f.Appointments.CreatePending(ctx, appt); err != nil {
		return "", nil, err
	}

	form := &models.BookingForm{
		PlanSlug:        plan.Slug,
		PlanName:        plan.Name,
		PlanPrice:       pkg.Price,
		PlanPackageName: pkg.Name,
		PlanDuration:    pkg.Duration,
		AppointmentID:   appt.ID,
		PatientID:       patientID,
	}
	sessionID := uuid.New().String()
	if err := f.Store.Put(ctx, sessionID, form); err != nil {
		return "", nil, err
	}

	f.Logger.Info("booking session started",
		zap.String("sessionId", sessionID),
		zap.String("appointmentId", appt.ID),
		zap.String("planSlug", plan.Slug))
	return sessionID, appt, nil
}

// GetForm returns the session's accumulated form.
func (f *DefaultFlowService) GetForm(ctx context.Context, sessionID string) (*models.BookingForm, error) {
	return f.Store.Get(ctx, sessionID)
}

// MergeForm merges the patch into the session's form.
func (f *DefaultFlowService) MergeForm(ctx context.Context, sessionID string, patch models.FormPatch) (*models.BookingForm, error) {
	return f.Store.Merge(ctx, sessionID, patch)
}

// Advance gates forward navigation on the step's required fields. On success
// it rolls the server-side progress marker to the step after the one just
// completed and, for the slot step, snapshots the chosen schedule onto the
// pending appointment.
func (f *DefaultFlowService) Advance(ctx context.Context, sessionID string, step models.Step) (string, error) {
	if !step.Known() {
		return "", fmt.Errorf("unknown booking step %q", step)
	}
	form, err := f.Store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if form.IsEmpty() {
		return "", &SessionError{SessionID: sessionID, Reason: "session expired or not found"}
	}
	if field, missing := f.Sequencer.FirstMissingField(form, step); missing {
		return "", NewValidationError(string(step), field)
	}

	if step == models.StepSlot && form.AppointmentID != "" {
		if err := f.Appointments.SetSchedule(ctx, form.AppointmentID,
			form.AppointmentMode, form.SlotID, form.AppointmentTime, form.AppointmentDate); err != nil {
			return "", err
		}
	}

	if form.AppointmentID != "" {
		if rank := step.Rank(); rank+1 < len(models.StepOrder) {
			if _, err := f.Appointments.AdvanceProgress(ctx, form.AppointmentID, models.StepOrder[rank+1]); err != nil {
				f.Logger.Warn("failed to advance booking progress",
					zap.String("appointmentId", form.AppointmentID), zap.Error(err))
			}
		}
	}

	return f.Sequencer.NextRoute(step), nil
}

// Back returns the previous step's route. Going back is always allowed and
// never touches the form or the progress marker.
func (f *DefaultFlowService) Back(step models.Step) (string, bool) {
	return f.Sequencer.PreviousRoute(step)
}

// Cancel discards the session form only. The pending appointment is the
// patient's to delete explicitly from their pending list.
func (f *DefaultFlowService) Cancel(ctx context.Context, sessionID string) error {
	return f.Store.Reset(ctx, sessionID)
}

// orderAmount resolves the paise amount for the session's selected package.
func orderAmount(form *models.BookingForm) (int64, error) {
	plan, err := GetPlanBySlug(form.PlanSlug)
	if err != nil {
		return 0, err
	}
	for i := range plan.Packages {
		if plan.Packages[i].Name == form.PlanPackageName {
			return plan.Packages[i].AmountPaise, nil
		}
	}
	if len(plan.Packages) > 0 {
		return plan.Packages[0].AmountPaise, nil
	}
	return 0, fmt.Errorf("plan %q has no packages", form.PlanSlug)
}

// CreateOrder validates the payment step and opens a gateway order for the
// package amount. Nothing is persisted yet: the invoice is written only once
// the payment settles.
func (f *DefaultFlowService) CreateOrder(ctx context.Context, sessionID string) (*models.Invoice, string, error) {
	form, err := f.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	if field, missing := f.Sequencer.FirstMissingField(form, models.StepPayment); missing {
		return nil, "", NewValidationError(string(models.StepPayment), field)
	}

	amount, err := orderAmount(form)
	if err != nil {
		return nil, "", err
	}
	return f.Payments.CreateOrder(ctx, form.AppointmentID, form.PatientID, amount)
}

// Confirm settles the payment against the gateway and finalizes the booking.
// The session form is reset last, so a failure anywhere leaves the patient
// able to retry with everything intact.
func (f *DefaultFlowService) Confirm(ctx context.Context, sessionID, paymentID string) (*models.Appointment, error) {
	form, err := f.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if form.IsEmpty() {
		return nil, &SessionError{SessionID: sessionID, Reason: "session expired or not found"}
	}
	if field, missing := f.Sequencer.FirstMissingField(form, models.StepPayment); missing {
		return nil, NewValidationError(string(models.StepPayment), field)
	}

	amount, err := orderAmount(form)
	if err != nil {
		return nil, err
	}
	inv := &models.Invoice{
		InvoiceID:     uuid.New().String(),
		AppointmentID: form.AppointmentID,
		PatientID:     form.PatientID,
		AmountPaise:   amount,
		Currency:      "INR",
		Status:        "pending",
	}
	if err := f.Payments.ConfirmPayment(ctx, inv, paymentID); err != nil {
		return nil, err
	}

	appt, err := f.Appointments.Confirm(ctx, form.AppointmentID, inv)
	if err != nil {
		return nil, err
	}
	if err := f.Store.Reset(ctx, sessionID); err != nil {
		f.Logger.Warn("failed to reset booking form after confirmation",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	return appt, nil
}

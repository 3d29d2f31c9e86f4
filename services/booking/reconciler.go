package booking

import (
	"context"
	"fmt"

	"nutribook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reconciler rehydrates a booking form session from a server-side pending
// appointment so the patient can continue an interrupted booking from the
// correct step.
type Reconciler struct {
	store  *FormStore
	logger *zap.Logger
}

// NewReconciler creates a Reconciler over the given form store.
func NewReconciler(store *FormStore, logger *zap.Logger) *Reconciler {
	return &Reconciler{store: store, logger: logger}
}

// RouteForProgress maps a persisted booking progress marker to the step route
// the patient should resume into. The marker names the next step awaiting the
// patient, so the lookup is direct. Unknown or empty markers fail safe to the
// first step: never resume later than is certain to be valid.
func (r *Reconciler) RouteForProgress(progress models.Step) string {
	if route, ok := stepRoutes[progress]; ok {
		return route
	}
	return RouteUserDetails
}

// LabelForProgress is a pure display mapping for status badges.
func (r *Reconciler) LabelForProgress(progress models.Step) string {
	switch progress {
	case models.StepRecall:
		return "Recall Questions"
	case models.StepSlot:
		return "Slot Selection"
	case models.StepPayment:
		return "Payment"
	default:
		return "Your Details"
	}
}

// Resume builds a booking form from the pending appointment's known fields,
// stores it under a fresh session in a single write, and returns the session
// ID plus the route to continue at. The stored slot ID is carried over only
// when the appointment actually holds one; the slot step re-prompts
// otherwise, so a stale or invalid slot can never silently complete a
// booking. Rehydration is all-or-nothing: a store failure leaves no partial
// form behind.
func (r *Reconciler) Resume(ctx context.Context, appt *models.PendingAppointment) (string, string, error) {
	if appt == nil {
		return "", "", fmt.Errorf("no pending appointment to resume")
	}

	form := &models.BookingForm{
		PlanSlug:        appt.PlanSlug,
		PlanName:        appt.PlanName,
		PlanPrice:       appt.PlanPrice,
		PlanPackageName: appt.PlanPackageName,
		PlanDuration:    appt.PlanDuration,
		AppointmentID:   appt.ID,
		PatientID:       appt.PatientID,
	}
	if appt.Mode != "" {
		form.AppointmentMode = models.NormalizeMode(appt.Mode)
	}
	if appt.SlotID != "" {
		form.SlotID = appt.SlotID
		form.AppointmentTime = appt.SlotLabel
		form.AppointmentDate = appt.AppointmentDate
	}

	sessionID := uuid.New().String()
	if err := r.store.Put(ctx, sessionID, form); err != nil {
		return "", "", fmt.Errorf("failed to rehydrate booking form: %w", err)
	}

	route := r.RouteForProgress(appt.BookingProgress)
	if !appt.BookingProgress.Known() && appt.BookingProgress != "" {
		r.logger.Warn("unrecognized booking progress; resuming at first step",
			zap.String("appointmentId", appt.ID),
			zap.String("bookingProgress", string(appt.BookingProgress)))
	}
	return sessionID, route, nil
}

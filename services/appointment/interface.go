package appointment

import (
	"context"
	"time"

	appointmentRepo "nutribook/database/repository/appointment"
	invoiceRepo "nutribook/database/repository/invoice"
	slotRepo "nutribook/database/repository/slot"
	"nutribook/models"

	"go.uber.org/zap"
)

// Service manages the server-owned appointment lifecycle: pending records
// with their booking-progress markers, confirmation, and invoices.
type Service interface {
	// CreatePending inserts a new pending appointment for a started booking.
	CreatePending(ctx context.Context, appt *models.PendingAppointment) error
	// GetPending retrieves one pending appointment.
	GetPending(ctx context.Context, id string) (*models.PendingAppointment, error)
	// ListPending lists a patient's pending appointments. An error is a fetch
	// failure; an empty slice means there is genuinely nothing pending.
	ListPending(ctx context.Context, patientID string) ([]models.PendingAppointment, error)
	// AdvanceProgress moves the booking-progress marker forward. Markers are
	// monotonically non-decreasing: an attempt to regress is ignored.
	AdvanceProgress(ctx context.Context, id string, next models.Step) (*models.PendingAppointment, error)
	// SetSchedule records the chosen mode, slot, and date on the pending record.
	SetSchedule(ctx context.Context, id, mode, slotID, slotLabel, date string) error
	// DeletePending removes a pending appointment owned by the patient. The
	// caller must not remove the record from any view until this succeeds.
	DeletePending(ctx context.Context, id, patientID string) error
	// Confirm finalizes a paid booking: the pending record becomes a confirmed
	// appointment, the invoice is persisted, and a reminder is queued.
	Confirm(ctx context.Context, pendingID string, inv *models.Invoice) (*models.Appointment, error)
	// ListAppointments lists a patient's confirmed appointments.
	ListAppointments(ctx context.Context, patientID string) ([]models.Appointment, error)
	// GetInvoice retrieves an invoice, scoped to its owner.
	GetInvoice(ctx context.Context, invoiceID, patientID string) (*models.Invoice, error)
	// ListInvoices lists a patient's invoices.
	ListInvoices(ctx context.Context, patientID string) ([]models.Invoice, error)
}

// ReminderScheduler queues an appointment reminder for future delivery.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Pending   appointmentRepo.PendingRepository
	Confirmed appointmentRepo.ConfirmedRepository
	Invoices  invoiceRepo.InvoiceRepository
	Slots     slotRepo.SlotRepository
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

package appointment

import (
	"context"
	"fmt"
	"time"

	"nutribook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreatePending inserts a new pending appointment record.
func (s *DefaultService) CreatePending(ctx context.Context, appt *models.PendingAppointment) error {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.PatientID == "" {
		return fmt.Errorf("pending appointment requires a patient ID")
	}
	if err := s.Pending.Create(ctx, appt); err != nil {
		return err
	}
	s.Logger.Info("pending appointment created",
		zap.String("appointmentId", appt.ID),
		zap.String("patientId", appt.PatientID),
		zap.String("planSlug", appt.PlanSlug))
	return nil
}

// GetPending retrieves one pending appointment.
func (s *DefaultService) GetPending(ctx context.Context, id string) (*models.PendingAppointment, error) {
	return s.Pending.GetByID(ctx, id)
}

// ListPending lists a patient's pending appointments, newest first.
func (s *DefaultService) ListPending(ctx context.Context, patientID string) ([]models.PendingAppointment, error) {
	appts, err := s.Pending.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if appts == nil {
		appts = []models.PendingAppointment{}
	}
	return appts, nil
}

// AdvanceProgress moves the booking-progress marker forward. The marker names
// the next step awaiting the patient and never regresses: a submission replayed
// out of order (a stale tab, a retried request) leaves the record as it is.
func (s *DefaultService) AdvanceProgress(ctx context.Context, id string, next models.Step) (*models.PendingAppointment, error) {
	if !next.Known() {
		return nil, fmt.Errorf("unknown booking step %q", next)
	}
	appt, err := s.Pending.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.BookingProgress.Known() && next.Rank() <= appt.BookingProgress.Rank() {
		s.Logger.Debug("ignoring progress regression",
			zap.String("appointmentId", id),
			zap.String("current", string(appt.BookingProgress)),
			zap.String("attempted", string(next)))
		return appt, nil
	}
	appt.BookingProgress = next
	if err := s.Pending.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// SetSchedule records the chosen mode, slot, and date on the pending record.
func (s *DefaultService) SetSchedule(ctx context.Context, id, mode, slotID, slotLabel, date string) error {
	appt, err := s.Pending.GetByID(ctx, id)
	if err != nil {
		return err
	}
	appt.Mode = models.NormalizeMode(mode)
	appt.SlotID = slotID
	appt.SlotLabel = slotLabel
	appt.AppointmentDate = date
	return s.Pending.Update(ctx, appt)
}

// DeletePending removes a pending appointment owned by the patient. Removal
// is not optimistic anywhere in the product: a record that fails to delete
// stays visible, because a "pending" entry that is already confirmed
// server-side must never be silently discarded.
func (s *DefaultService) DeletePending(ctx context.Context, id, patientID string) error {
	if err := s.Pending.Delete(ctx, id, patientID); err != nil {
		return err
	}
	s.Logger.Info("pending appointment deleted",
		zap.String("appointmentId", id), zap.String("patientId", patientID))
	return nil
}

// Confirm finalizes a paid booking. The pending record must carry a slot; a
// booking can never complete against a slot the patient did not pick.
func (s *DefaultService) Confirm(ctx context.Context, pendingID string, inv *models.Invoice) (*models.Appointment, error) {
	pending, err := s.Pending.GetByID(ctx, pendingID)
	if err != nil {
		return nil, err
	}
	if pending.SlotID == "" {
		return nil, fmt.Errorf("pending appointment %s has no slot selected", pendingID)
	}
	if inv == nil || inv.Status != "paid" {
		return nil, fmt.Errorf("cannot confirm appointment %s without a paid invoice", pendingID)
	}

	appt := &models.Appointment{
		ID:              pending.ID,
		PatientID:       pending.PatientID,
		PlanSlug:        pending.PlanSlug,
		PlanName:        pending.PlanName,
		PlanPackageName: pending.PlanPackageName,
		Mode:            models.NormalizeMode(pending.Mode),
		SlotID:          pending.SlotID,
		SlotLabel:       pending.SlotLabel,
		AppointmentDate: pending.AppointmentDate,
		Status:          models.AppointmentConfirmed,
		InvoiceID:       inv.InvoiceID,
	}
	if err := s.Confirmed.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to persist confirmed appointment: %w", err)
	}
	if err := s.Invoices.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to persist invoice: %w", err)
	}
	if err := s.Pending.Delete(ctx, pending.ID, pending.PatientID); err != nil {
		// The confirmed record is authoritative; a leftover pending row is
		// recoverable by the patient deleting it from their list.
		s.Logger.Warn("failed to remove pending record after confirmation",
			zap.String("appointmentId", pending.ID), zap.Error(err))
	}

	s.scheduleReminder(ctx, appt)
	return appt, nil
}

// scheduleReminder queues a reminder for the day before the appointment.
func (s *DefaultService) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	day, err := time.Parse("2006-01-02", appt.AppointmentDate)
	if err != nil {
		s.Logger.Warn("cannot schedule reminder for unparseable date",
			zap.String("appointmentId", appt.ID), zap.String("date", appt.AppointmentDate))
		return
	}

	startMinute := 9 * 60
	if s.Slots != nil {
		if slot, err := s.Slots.GetByID(ctx, appt.SlotID); err == nil {
			startMinute = slot.StartMinute
		}
	}
	fireAt := day.Add(time.Duration(startMinute)*time.Minute - 24*time.Hour)

	payload := models.ReminderPayload{
		AppointmentID:   appt.ID,
		PatientID:       appt.PatientID,
		PlanName:        appt.PlanName,
		SlotLabel:       appt.SlotLabel,
		AppointmentDate: appt.AppointmentDate,
	}
	if err := s.Reminders.ScheduleReminder(ctx, payload, fireAt); err != nil {
		s.Logger.Error("failed to schedule reminder",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

// ListAppointments lists a patient's confirmed appointments.
func (s *DefaultService) ListAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	appts, err := s.Confirmed.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	return appts, nil
}

// GetInvoice retrieves an invoice, refusing access to other patients' records.
func (s *DefaultService) GetInvoice(ctx context.Context, invoiceID, patientID string) (*models.Invoice, error) {
	inv, err := s.Invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.PatientID != patientID {
		return nil, fmt.Errorf("invoice %s not found", invoiceID)
	}
	return inv, nil
}

// ListInvoices lists a patient's invoices.
func (s *DefaultService) ListInvoices(ctx context.Context, patientID string) ([]models.Invoice, error) {
	invoices, err := s.Invoices.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	return invoices, nil
}

package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"nutribook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPendingRepo struct {
	records   map[string]*models.PendingAppointment
	deleteErr error
}

func newStubPendingRepo() *stubPendingRepo {
	return &stubPendingRepo{records: make(map[string]*models.PendingAppointment)}
}

func (r *stubPendingRepo) Create(ctx context.Context, appt *models.PendingAppointment) error {
	cp := *appt
	r.records[appt.ID] = &cp
	return nil
}

func (r *stubPendingRepo) GetByID(ctx context.Context, id string) (*models.PendingAppointment, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, errors.New("pending appointment not found")
	}
	cp := *rec
	return &cp, nil
}

func (r *stubPendingRepo) ListByPatient(ctx context.Context, patientID string) ([]models.PendingAppointment, error) {
	var out []models.PendingAppointment
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubPendingRepo) Update(ctx context.Context, appt *models.PendingAppointment) error {
	if _, ok := r.records[appt.ID]; !ok {
		return errors.New("pending appointment not found")
	}
	cp := *appt
	r.records[appt.ID] = &cp
	return nil
}

func (r *stubPendingRepo) Delete(ctx context.Context, id, patientID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	rec, ok := r.records[id]
	if !ok || rec.PatientID != patientID {
		return errors.New("pending appointment not found")
	}
	delete(r.records, id)
	return nil
}

type stubConfirmedRepo struct {
	records map[string]*models.Appointment
}

func newStubConfirmedRepo() *stubConfirmedRepo {
	return &stubConfirmedRepo{records: make(map[string]*models.Appointment)}
}

func (r *stubConfirmedRepo) Create(ctx context.Context, appt *models.Appointment) error {
	cp := *appt
	r.records[appt.ID] = &cp
	return nil
}

func (r *stubConfirmedRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, errors.New("appointment not found")
	}
	cp := *rec
	return &cp, nil
}

func (r *stubConfirmedRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubConfirmedRepo) ListBookedSlotIDs(ctx context.Context, date string) ([]string, error) {
	var out []string
	for _, rec := range r.records {
		if rec.AppointmentDate == date {
			out = append(out, rec.SlotID)
		}
	}
	return out, nil
}

type stubInvoiceRepo struct {
	records map[string]*models.Invoice
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{records: make(map[string]*models.Invoice)}
}

func (r *stubInvoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	cp := *inv
	r.records[inv.InvoiceID] = &cp
	return nil
}

func (r *stubInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, errors.New("invoice not found")
	}
	cp := *rec
	return &cp, nil
}

func (r *stubInvoiceRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

type stubSlotRepo struct{}

func (stubSlotRepo) ListByMode(ctx context.Context, mode string) ([]models.Slot, error) {
	return nil, nil
}

func (stubSlotRepo) GetByID(ctx context.Context, id string) (*models.Slot, error) {
	return &models.Slot{ID: id, StartMinute: 600, EndMinute: 640}, nil
}

func (stubSlotRepo) Seed(ctx context.Context, slots []models.Slot) error { return nil }

type recordedReminder struct {
	payload models.ReminderPayload
	fireAt  time.Time
}

type stubScheduler struct {
	scheduled []recordedReminder
}

func (s *stubScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	s.scheduled = append(s.scheduled, recordedReminder{payload: payload, fireAt: fireAt})
	return nil
}

func newTestService() (*DefaultService, *stubPendingRepo, *stubConfirmedRepo, *stubInvoiceRepo, *stubScheduler) {
	pending := newStubPendingRepo()
	confirmed := newStubConfirmedRepo()
	invoices := newStubInvoiceRepo()
	scheduler := &stubScheduler{}
	svc := &DefaultService{
		Pending:   pending,
		Confirmed: confirmed,
		Invoices:  invoices,
		Slots:     stubSlotRepo{},
		Reminders: scheduler,
		Logger:    zap.NewNop(),
	}
	return svc, pending, confirmed, invoices, scheduler
}

func TestAdvanceProgressMovesForward(t *testing.T) {
	svc, pending, _, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, pending.Create(ctx, &models.PendingAppointment{
		ID: "a1", PatientID: "p1", BookingProgress: models.StepUserDetails,
	}))

	appt, err := svc.AdvanceProgress(ctx, "a1", models.StepRecall)
	require.NoError(t, err)
	assert.Equal(t, models.StepRecall, appt.BookingProgress)

	appt, err = svc.AdvanceProgress(ctx, "a1", models.StepPayment)
	require.NoError(t, err)
	assert.Equal(t, models.StepPayment, appt.BookingProgress)
}

func TestAdvanceProgressIgnoresRegression(t *testing.T) {
	svc, pending, _, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, pending.Create(ctx, &models.PendingAppointment{
		ID: "a1", PatientID: "p1", BookingProgress: models.StepSlot,
	}))

	// A stale tab resubmitting an earlier step must not roll the marker back.
	appt, err := svc.AdvanceProgress(ctx, "a1", models.StepRecall)
	require.NoError(t, err)
	assert.Equal(t, models.StepSlot, appt.BookingProgress)

	// Re-submitting the current step is equally a no-op.
	appt, err = svc.AdvanceProgress(ctx, "a1", models.StepSlot)
	require.NoError(t, err)
	assert.Equal(t, models.StepSlot, appt.BookingProgress)
}

func TestAdvanceProgressRejectsUnknownStep(t *testing.T) {
	svc, pending, _, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, pending.Create(ctx, &models.PendingAppointment{ID: "a1", PatientID: "p1"}))

	_, err := svc.AdvanceProgress(ctx, "a1", models.Step("WEIRD_STATE"))
	require.Error(t, err)
}

func TestDeletePendingFailureKeepsRecord(t *testing.T) {
	svc, pending, _, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, pending.Create(ctx, &models.PendingAppointment{ID: "a1", PatientID: "p1"}))
	pending.deleteErr = errors.New("write conflict")

	err := svc.DeletePending(ctx, "a1", "p1")
	require.Error(t, err)

	// The record is still there for the patient to retry.
	_, err = svc.GetPending(ctx, "a1")
	require.NoError(t, err)
}

func TestDeletePendingScopedToOwner(t *testing.T) {
	svc, pending, _, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, pending.Create(ctx, &models.PendingAppointment{ID: "a1", PatientID: "p1"}))

	require.Error(t, svc.DeletePending(ctx, "a1", "someone-else"))
	require.NoError(t, svc.DeletePending(ctx, "a1", "p1"))
}

func TestConfirmRequiresSlot(t *testing.T) {
	svc, pending, _, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, pending.Create(ctx, &models.PendingAppointment{
		ID: "a1", PatientID: "p1", BookingProgress: models.StepPayment,
	}))

	_, err := svc.Confirm(ctx, "a1", &models.Invoice{InvoiceID: "inv-1", Status: "paid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no slot")
}

func TestConfirmRequiresPaidInvoice(t *testing.T) {
	svc, pending, _, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, pending.Create(ctx, &models.PendingAppointment{
		ID: "a1", PatientID: "p1", SlotID: "inperson-1000",
	}))

	_, err := svc.Confirm(ctx, "a1", &models.Invoice{InvoiceID: "inv-1", Status: "pending"})
	require.Error(t, err)
}

func TestConfirmFinalizesBooking(t *testing.T) {
	svc, pending, confirmed, invoices, scheduler := newTestService()
	ctx := context.Background()

	require.NoError(t, pending.Create(ctx, &models.PendingAppointment{
		ID:              "a1",
		PatientID:       "p1",
		PlanSlug:        "weight-loss",
		PlanName:        "Weight Loss Plan",
		Mode:            models.ModeInPerson,
		SlotID:          "inperson-1000",
		SlotLabel:       "10:00 AM – 10:40 AM",
		AppointmentDate: "2026-09-07",
		BookingProgress: models.StepPayment,
	}))

	inv := &models.Invoice{
		InvoiceID:   "inv-1",
		PatientID:   "p1",
		AmountPaise: 1780000,
		Currency:    "INR",
		Status:      "paid",
	}
	appt, err := svc.Confirm(ctx, "a1", inv)
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentConfirmed, appt.Status)
	assert.Equal(t, "inv-1", appt.InvoiceID)
	assert.Equal(t, "inperson-1000", appt.SlotID)

	// Confirmed record and invoice are persisted, pending record is gone.
	_, err = confirmed.GetByID(ctx, "a1")
	require.NoError(t, err)
	_, err = invoices.GetByID(ctx, "inv-1")
	require.NoError(t, err)
	_, err = pending.GetByID(ctx, "a1")
	require.Error(t, err)

	// A reminder fires the day before at the slot's start time.
	require.Len(t, scheduler.scheduled, 1)
	rem := scheduler.scheduled[0]
	assert.Equal(t, "a1", rem.payload.AppointmentID)
	want := time.Date(2026, 9, 6, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, want, rem.fireAt)
}

func TestGetInvoiceScopedToOwner(t *testing.T) {
	svc, _, _, invoices, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, invoices.Create(ctx, &models.Invoice{InvoiceID: "inv-1", PatientID: "p1"}))

	_, err := svc.GetInvoice(ctx, "inv-1", "p1")
	require.NoError(t, err)

	_, err = svc.GetInvoice(ctx, "inv-1", "someone-else")
	require.Error(t, err)
}

func TestListPendingEmptyVsError(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	appts, err := svc.ListPending(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, appts)
	assert.Empty(t, appts)
}

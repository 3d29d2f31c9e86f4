package appointmentRepo

import (
	"context"

	"nutribook/models"
)

// PendingRepository defines data access for pending (unconfirmed) appointments.
type PendingRepository interface {
	// Create inserts a new pending appointment record.
	Create(ctx context.Context, appt *models.PendingAppointment) error
	// GetByID retrieves a pending appointment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.PendingAppointment, error)
	// ListByPatient retrieves all pending appointments owned by a patient,
	// most recent first.
	ListByPatient(ctx context.Context, patientID string) ([]models.PendingAppointment, error)
	// Update replaces mutable fields of an existing record.
	Update(ctx context.Context, appt *models.PendingAppointment) error
	// Delete removes a pending appointment by ID, scoped to its owner.
	Delete(ctx context.Context, id, patientID string) error
}

// ConfirmedRepository defines data access for confirmed appointments.
type ConfirmedRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	// ListBookedSlotIDs returns the slot IDs already taken on the given date.
	ListBookedSlotIDs(ctx context.Context, date string) ([]string, error)
}

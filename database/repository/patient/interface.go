package patientRepo

import (
	"context"

	"nutribook/models"
)

// PatientRepository defines methods for patient data access.
type PatientRepository interface {
	// GetByID retrieves a patient by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	// GetByEmail retrieves a patient by email. Returns (nil, nil) when no
	// patient exists with that email.
	GetByEmail(ctx context.Context, email string) (*models.Patient, error)
	// Create inserts a new patient record.
	Create(ctx context.Context, patient *models.Patient) error
	// Update modifies an existing patient record.
	Update(ctx context.Context, patient *models.Patient) error
	// Delete removes a patient record by its ID.
	Delete(ctx context.Context, id string) error
}

package patient

import (
	"context"
	"fmt"

	"nutribook/models"
)

// GetPatient retrieves a patient profile.
func (s *DefaultService) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdatePatient applies profile changes. Credentials and role are managed
// elsewhere and never overwritten here.
func (s *DefaultService) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	existing, err := s.Repo.GetByID(ctx, patient.ID)
	if err != nil {
		return fmt.Errorf("failed to load patient: %w", err)
	}
	patient.PasswordHash = existing.PasswordHash
	patient.Role = existing.Role
	patient.Verified = existing.Verified
	patient.CreatedAt = existing.CreatedAt
	return s.Repo.Update(ctx, patient)
}

// DeletePatient removes the account.
func (s *DefaultService) DeletePatient(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

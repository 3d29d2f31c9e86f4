package patient

import (
	"context"

	patientRepo "nutribook/database/repository/patient"
	"nutribook/models"

	"go.uber.org/zap"
)

// AuthResponse is returned on successful signin or signup.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
}

// Service manages patient accounts and authentication.
type Service interface {
	// RegisterPatient creates an account and initiates phone verification.
	RegisterPatient(ctx context.Context, patient *models.Patient, password string) (*AuthResponse, error)
	// AuthenticatePatient verifies credentials and returns a session token.
	AuthenticatePatient(ctx context.Context, email, password string) (*AuthResponse, error)
	// VerifyOTP confirms the one-time code sent to the patient's phone.
	VerifyOTP(ctx context.Context, patientID, otp string) error
	// GetPatient retrieves a patient profile.
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
	// UpdatePatient applies profile changes owned by the patient.
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	// DeletePatient removes the account.
	DeletePatient(ctx context.Context, id string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo   patientRepo.PatientRepository
	Logger *zap.Logger
}

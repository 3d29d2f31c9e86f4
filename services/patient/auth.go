package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nutribook/models"
	"nutribook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// RegisterPatient creates the account, hashes the password, and kicks off
// phone verification. The returned response carries no token until the OTP
// is verified.
func (s *DefaultService) RegisterPatient(ctx context.Context, patient *models.Patient, password string) (*AuthResponse, error) {
	patient.Email = strings.ToLower(strings.TrimSpace(patient.Email))
	if patient.Email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if patient.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	existing, err := s.Repo.GetByEmail(ctx, patient.Email)
	if err != nil {
		s.Logger.Error("RegisterPatient: failed to check existing account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, DuplicateEmailError{Email: patient.Email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	patient.ID = uuid.New().String()
	patient.PasswordHash = string(hash)
	patient.Role = models.RolePatient
	patient.Verified = false
	if err := s.Repo.Create(ctx, patient); err != nil {
		s.Logger.Error("RegisterPatient: failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	if patient.Phone != "" {
		if err := utils.InitiatePatientOTP(patient.ID, patient.Phone); err != nil {
			s.Logger.Error("RegisterPatient: failed to initiate OTP", zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:       patient.ID,
		Name:     patient.Name,
		Email:    patient.Email,
		Phone:    patient.Phone,
		Verified: false,
	}, nil
}

// AuthenticatePatient verifies the email and password and issues a token.
// Unverified accounts are bounced back to OTP verification.
func (s *DefaultService) AuthenticatePatient(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	rec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		s.Logger.Error("AuthenticatePatient: failed to fetch patient", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if !rec.Verified {
		if rec.Phone != "" {
			if err := utils.InitiatePatientOTP(rec.ID, rec.Phone); err != nil {
				s.Logger.Error("AuthenticatePatient: failed to initiate OTP", zap.Error(err))
			}
		}
		return nil, OTPPendingError{PatientID: rec.ID}
	}

	token, err := utils.GenerateToken(rec.ID, rec.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:       rec.ID,
		Token:    token,
		Name:     rec.Name,
		Email:    rec.Email,
		Phone:    rec.Phone,
		Verified: rec.Verified,
	}, nil
}

// VerifyOTP confirms the code and marks the account verified.
func (s *DefaultService) VerifyOTP(ctx context.Context, patientID, otp string) error {
	if err := utils.VerifyPatientOTP(patientID, otp); err != nil {
		return err
	}
	rec, err := s.Repo.GetByID(ctx, patientID)
	if err != nil {
		return fmt.Errorf("failed to load patient: %w", err)
	}
	rec.Verified = true
	if err := s.Repo.Update(ctx, rec); err != nil {
		return fmt.Errorf("failed to mark patient verified: %w", err)
	}
	s.Logger.Info("patient verified", zap.String("patientId", patientID))
	return nil
}

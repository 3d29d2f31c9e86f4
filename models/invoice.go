package models

import "time"

// Invoice represents an invoice generated after a confirmed payment.
type Invoice struct {
	InvoiceID     string    `bson:"invoiceId" json:"invoiceId"`
	AppointmentID string    `bson:"appointmentId" json:"appointmentId"`
	PatientID     string    `bson:"patientId" json:"patientId"`
	AmountPaise   int64     `bson:"amountPaise" json:"amountPaise"`
	Currency      string    `bson:"currency" json:"currency"`
	PaymentID     string    `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Status        string    `bson:"status" json:"status"` // pending | paid
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

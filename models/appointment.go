package models

import "time"

// Appointment modes recognized by the clinic.
const (
	ModeInPerson = "IN_PERSON"
	ModeOnline   = "ONLINE"
)

// NormalizeMode maps persisted mode values onto the recognized enum. Anything
// malformed or legacy falls back to IN_PERSON rather than breaking the flow.
func NormalizeMode(mode string) string {
	switch mode {
	case ModeInPerson, ModeOnline:
		return mode
	default:
		return ModeInPerson
	}
}

// Appointment statuses.
const (
	AppointmentPending   = "PENDING"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCancelled = "CANCELLED"
)

// PendingAppointment is the server-owned record of a booking that has not
// been confirmed yet. BookingProgress names the next step awaiting the
// patient; empty means the booking was abandoned before the first step
// completed.
type PendingAppointment struct {
	ID              string    `bson:"id" json:"id"`
	PatientID       string    `bson:"patientId" json:"patientId"`
	PlanSlug        string    `bson:"planSlug" json:"planSlug"`
	PlanName        string    `bson:"planName" json:"planName"`
	PlanPrice       string    `bson:"planPrice" json:"planPrice"`
	PlanPackageName string    `bson:"planPackageName,omitempty" json:"planPackageName,omitempty"`
	PlanDuration    string    `bson:"planDuration,omitempty" json:"planDuration,omitempty"`
	Mode            string    `bson:"mode,omitempty" json:"mode,omitempty"`
	SlotID          string    `bson:"slotId,omitempty" json:"slotId,omitempty"`
	SlotLabel       string    `bson:"slotLabel,omitempty" json:"slotLabel,omitempty"`
	AppointmentDate string    `bson:"appointmentDate,omitempty" json:"appointmentDate,omitempty"`
	BookingProgress Step      `bson:"bookingProgress,omitempty" json:"bookingProgress,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Appointment is a confirmed booking.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	PatientID       string    `bson:"patientId" json:"patientId"`
	PlanSlug        string    `bson:"planSlug" json:"planSlug"`
	PlanName        string    `bson:"planName" json:"planName"`
	PlanPackageName string    `bson:"planPackageName,omitempty" json:"planPackageName,omitempty"`
	Mode            string    `bson:"mode" json:"mode"`
	SlotID          string    `bson:"slotId" json:"slotId"`
	SlotLabel       string    `bson:"slotLabel,omitempty" json:"slotLabel,omitempty"`
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"`
	Status          string    `bson:"status" json:"status"`
	InvoiceID       string    `bson:"invoiceId,omitempty" json:"invoiceId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

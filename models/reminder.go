package models

// ReminderPayload is the payload of a scheduled appointment reminder task.
type ReminderPayload struct {
	AppointmentID   string `json:"appointmentId"`
	PatientID       string `json:"patientId"`
	PlanName        string `json:"planName"`
	SlotLabel       string `json:"slotLabel"`
	AppointmentDate string `json:"appointmentDate"`
}

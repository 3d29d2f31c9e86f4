package models

// Slot is one bookable consultation window. Templates are stored per mode and
// materialized per date by the availability service.
type Slot struct {
	ID          string `bson:"id" json:"id"`
	Mode        string `bson:"mode" json:"mode"`
	Label       string `bson:"label" json:"label"` // e.g. "10:00 AM – 10:40 AM"
	StartMinute int    `bson:"startMinute" json:"startMinute"`
	EndMinute   int    `bson:"endMinute" json:"endMinute"`
}

package models

import "time"

// Patient represents a clinic patient account.
type Patient struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"` // PATIENT | ADMIN
	DOB          string    `bson:"dob,omitempty" json:"dob,omitempty"`
	Verified     bool      `bson:"verified" json:"verified"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

const (
	RolePatient = "PATIENT"
	RoleAdmin   = "ADMIN"
)

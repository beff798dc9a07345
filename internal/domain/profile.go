package domain

import (
	"context"
	"time"
)

// EmergencyContact is the person to call on the user's behalf.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// MedicalProfile holds the emergency medical information for a single user.
// A user has at most one profile; writes replace every tracked field.
type MedicalProfile struct {
	UserID            int64
	BloodGroup        string
	Allergies         []string
	EmergencyContact  EmergencyContact
	MedicalConditions []string
	UpdatedAt         time.Time
}

// ProfileRepository defines persistence operations for medical profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*MedicalProfile, error)
	// Upsert creates the profile if absent, otherwise replaces all tracked
	// fields in a single atomic write. Last writer wins.
	Upsert(ctx context.Context, profile *MedicalProfile) error
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/medcard/medcard/internal/domain"
	"github.com/medcard/medcard/internal/validate"
)

// ProfileService manages the user's medical profile.
type ProfileService struct {
	profiles domain.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles domain.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// ProfileInput carries the raw form fields for a profile update. Allergies
// and MedicalConditions are comma-separated free text.
type ProfileInput struct {
	BloodGroup        string
	Allergies         string
	EmergencyName     string
	EmergencyPhone    string
	MedicalConditions string
}

// Get returns the user's medical profile, or domain.ErrNotFound when none
// has been created yet.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.MedicalProfile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// Update validates the input and replaces the user's profile in full.
func (s *ProfileService) Update(ctx context.Context, userID int64, in ProfileInput) (*domain.MedicalProfile, error) {
	bloodGroup := strings.TrimSpace(in.BloodGroup)
	emergencyName := strings.TrimSpace(in.EmergencyName)
	emergencyPhone := strings.TrimSpace(in.EmergencyPhone)

	var problems []string
	if bloodGroup == "" {
		problems = append(problems, "blood group is required")
	}
	if emergencyName == "" {
		problems = append(problems, "emergency contact name is required")
	}
	if !validate.Phone(emergencyPhone) {
		problems = append(problems, "a valid emergency contact phone is required")
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(problems, "; "))
	}

	profile := &domain.MedicalProfile{
		UserID:     userID,
		BloodGroup: bloodGroup,
		Allergies:  validate.SplitList(in.Allergies),
		EmergencyContact: domain.EmergencyContact{
			Name:  emergencyName,
			Phone: emergencyPhone,
		},
		MedicalConditions: validate.SplitList(in.MedicalConditions),
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return profile, nil
}

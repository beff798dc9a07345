package service

import (
	"encoding/json"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/medcard/medcard/internal/domain"
)

// qrSize is the pixel width and height of the generated raster.
const qrSize = 256

// EmergencyCard is the record encoded into the QR code. JSON field order is
// fixed by the struct definition, so serialization is deterministic.
type EmergencyCard struct {
	Name              string                  `json:"name"`
	BloodGroup        string                  `json:"blood_group"`
	Allergies         []string                `json:"allergies"`
	EmergencyContact  domain.EmergencyContact `json:"emergency_contact"`
	MedicalConditions []string                `json:"medical_conditions"`
}

// EmergencyService builds emergency cards and renders them as QR codes.
type EmergencyService struct{}

// NewEmergencyService creates a new EmergencyService.
func NewEmergencyService() *EmergencyService {
	return &EmergencyService{}
}

// Card assembles the emergency card for a user and their profile. Nil lists
// are normalized to empty so the JSON always carries arrays.
func (s *EmergencyService) Card(name string, profile *domain.MedicalProfile) EmergencyCard {
	card := EmergencyCard{
		Name:              name,
		BloodGroup:        profile.BloodGroup,
		Allergies:         profile.Allergies,
		EmergencyContact:  profile.EmergencyContact,
		MedicalConditions: profile.MedicalConditions,
	}
	if card.Allergies == nil {
		card.Allergies = []string{}
	}
	if card.MedicalConditions == nil {
		card.MedicalConditions = []string{}
	}
	return card
}

// EncodePNG serializes the card to canonical JSON and renders it as a QR
// code PNG at medium error correction. Identical cards produce identical
// bytes. When the payload exceeds QR capacity the error reports it; the
// data is never truncated.
func (s *EmergencyService) EncodePNG(card EmergencyCard) ([]byte, error) {
	payload, err := json.Marshal(card)
	if err != nil {
		return nil, fmt.Errorf("serialize card: %w", err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, qrSize)
	if err != nil {
		if strings.Contains(err.Error(), "content too long") {
			return nil, fmt.Errorf("%w: card does not fit in a QR code", domain.ErrPayloadTooLarge)
		}
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	return png, nil
}

// CardJSON returns the canonical serialized form of the card, the exact
// bytes embedded in the QR code.
func (s *EmergencyService) CardJSON(card EmergencyCard) (string, error) {
	payload, err := json.Marshal(card)
	if err != nil {
		return "", fmt.Errorf("serialize card: %w", err)
	}
	return string(payload), nil
}

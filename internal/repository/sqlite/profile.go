package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/medcard/medcard/internal/domain"
)

// ProfileRepository implements domain.ProfileRepository using SQLite.
// List fields are stored as JSON text columns.
type ProfileRepository struct {
	db *sql.DB
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.MedicalProfile, error) {
	profile := &domain.MedicalProfile{}
	var allergies, conditions string
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, blood_group, allergies, emergency_name, emergency_phone, medical_conditions, updated_at
		 FROM profiles WHERE user_id = ?`, userID,
	).Scan(&profile.UserID, &profile.BloodGroup, &allergies,
		&profile.EmergencyContact.Name, &profile.EmergencyContact.Phone,
		&conditions, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	if err := json.Unmarshal([]byte(allergies), &profile.Allergies); err != nil {
		return nil, fmt.Errorf("decode allergies: %w", err)
	}
	if err := json.Unmarshal([]byte(conditions), &profile.MedicalConditions); err != nil {
		return nil, fmt.Errorf("decode medical conditions: %w", err)
	}
	return profile, nil
}

// Upsert creates or fully replaces the user's profile in a single statement,
// so concurrent writers serialize at the database with last-writer-wins and
// no partial field mix is ever observable.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.MedicalProfile) error {
	allergies, err := encodeList(profile.Allergies)
	if err != nil {
		return fmt.Errorf("encode allergies: %w", err)
	}
	conditions, err := encodeList(profile.MedicalConditions)
	if err != nil {
		return fmt.Errorf("encode medical conditions: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, blood_group, allergies, emergency_name, emergency_phone, medical_conditions, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
			blood_group = excluded.blood_group,
			allergies = excluded.allergies,
			emergency_name = excluded.emergency_name,
			emergency_phone = excluded.emergency_phone,
			medical_conditions = excluded.medical_conditions,
			updated_at = excluded.updated_at`,
		profile.UserID, profile.BloodGroup, allergies,
		profile.EmergencyContact.Name, profile.EmergencyContact.Phone,
		conditions, now,
	)
	if err != nil {
		if isForeignKeyError(err) {
			// A profile must never exist without its user.
			return domain.ErrNotFound
		}
		return fmt.Errorf("upsert profile: %w", err)
	}

	profile.UpdatedAt = now
	return nil
}

// encodeList marshals a string list, normalizing nil to an empty JSON array.
func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

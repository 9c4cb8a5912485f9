// ABOUTME: User profile persistence for SQLite storage.
// ABOUTME: Singleton row upsert; GetProfile returns nil when unset.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/longevity/internal/models"
)

// SaveProfile upserts the singleton user profile row.
func (d *DB) SaveProfile(p *models.UserProfile) error {
	query := `
		INSERT INTO profile (id, birth_year, gender, height_cm, weight_kg, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			birth_year = excluded.birth_year,
			gender = excluded.gender,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			updated_at = excluded.updated_at
	`
	_, err := d.db.Exec(query,
		p.BirthYear,
		string(p.GetGender()),
		p.HeightCm,
		p.WeightKg,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the stored profile, or nil if none has been saved.
func (d *DB) GetProfile() (*models.UserProfile, error) {
	query := `SELECT birth_year, gender, height_cm, weight_kg FROM profile WHERE id = 1`

	var p models.UserProfile
	var gender sql.NullString
	var heightCm, weightKg sql.NullFloat64

	err := d.db.QueryRow(query).Scan(&p.BirthYear, &gender, &heightCm, &weightKg)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if gender.Valid {
		p.Gender = models.Gender(gender.String)
	}
	if heightCm.Valid {
		p.HeightCm = &heightCm.Float64
	}
	if weightKg.Valid {
		p.WeightKg = &weightKg.Float64
	}

	return &p, nil
}

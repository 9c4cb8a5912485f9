// ABOUTME: UserProfile and LifeProjection types for the projection engine.
// ABOUTME: Profile selects the actuarial baseline; projection drives the battery UI.
package models

import "time"

// Gender selects the actuarial reference column.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

// UserProfile is supplied externally and never mutated by the engine.
// Gender and anthropometrics are optional refinements.
type UserProfile struct {
	BirthYear int      `json:"birth_year" yaml:"birth_year"`
	Gender    Gender   `json:"gender,omitempty" yaml:"gender,omitempty"`
	HeightCm  *float64 `json:"height_cm,omitempty" yaml:"height_cm,omitempty"`
	WeightKg  *float64 `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
}

// Age returns the profile's age in whole years as of the given time.
// Only the birth year is known, so this is calendar-year arithmetic.
func (p UserProfile) Age(asOf time.Time) int {
	age := asOf.Year() - p.BirthYear
	if age < 0 {
		return 0
	}
	return age
}

// GetGender returns the gender, defaulting to unspecified.
func (p UserProfile) GetGender() Gender {
	if p.Gender == "" {
		return GenderUnspecified
	}
	return p.Gender
}

// LifeProjection is the projection engine's output. ProjectionPercentage is
// the [0,1] battery-fill fraction: adjusted years remaining relative to the
// optimal-case projection for the same profile.
type LifeProjection struct {
	CurrentAge             int     `json:"current_age" yaml:"current_age"`
	BaselineYearsRemaining float64 `json:"baseline_years_remaining" yaml:"baseline_years_remaining"`
	AdjustedYearsRemaining float64 `json:"adjusted_years_remaining" yaml:"adjusted_years_remaining"`
	OptimalYearsRemaining  float64 `json:"optimal_years_remaining" yaml:"optimal_years_remaining"`
	ProjectionPercentage   float64 `json:"projection_percentage" yaml:"projection_percentage"`
}

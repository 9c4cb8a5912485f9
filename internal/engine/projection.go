// ABOUTME: LifeProjectionEngine: aggregate impact plus profile to projected years.
// ABOUTME: Battery percentage is adjusted years relative to the optimal-case projection.
package engine

import (
	"time"

	"github.com/harperreed/longevity/internal/models"
)

// minutesPerYear converts daily impact minutes into a yearly rate.
const minutesPerYear = 365.25 * 24 * 60

// denominatorFloor guards ratio denominators against division by near-zero.
const denominatorFloor = 0.1

// LifeTable is the external actuarial collaborator: baseline years remaining
// keyed by current age and gender. Not owned by this engine.
type LifeTable interface {
	YearsRemaining(age int, gender models.Gender) float64
}

// Projector combines aggregate impacts with an actuarial baseline.
// Pure and stateless; safe for concurrent use.
type Projector struct {
	table LifeTable
	calc  *Calculator
}

// NewProjector builds a projector around a life table and calculator.
func NewProjector(table LifeTable, calc *Calculator) *Projector {
	return &Projector{table: table, calc: calc}
}

// Project converts an aggregate impact into a life projection for the given
// profile. The projection percentage divides the adjusted years remaining by
// the optimal-case projection for the same profile, clamped to [0, 1].
func (p *Projector) Project(agg models.AggregateImpact, profile models.UserProfile, asOf time.Time) models.LifeProjection {
	age := profile.Age(asOf)
	baseline := p.table.YearsRemaining(age, profile.GetGender())

	adjusted := baseline + yearsDelta(agg.TotalMinutesPerDay)
	if adjusted < 0 {
		adjusted = 0
	}

	optimalAgg := p.calc.TotalImpact(OptimalReadingsFor(profile, asOf), Period{})
	optimal := baseline + yearsDelta(optimalAgg.TotalMinutesPerDay)

	pct := adjusted / floored(optimal)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	return models.LifeProjection{
		CurrentAge:             age,
		BaselineYearsRemaining: baseline,
		AdjustedYearsRemaining: adjusted,
		OptimalYearsRemaining:  optimal,
		ProjectionPercentage:   pct,
	}
}

// GainPercent expresses how much headroom the optimal case has over the
// current projection, for "potential improvement" messaging. Never negative,
// never infinite: the denominator is floored.
func GainPercent(currentYears, optimalYears float64) float64 {
	gain := (optimalYears - currentYears) / floored(currentYears)
	if gain < 0 {
		return 0
	}
	return gain
}

// yearsDelta converts daily impact minutes into the yearly rate added to the
// baseline years remaining.
func yearsDelta(minutesPerDay float64) float64 {
	return minutesPerDay * 365.25 / minutesPerYear
}

func floored(v float64) float64 {
	if v < denominatorFloor {
		return denominatorFloor
	}
	return v
}

// ABOUTME: Static metric catalog: valid ranges, baselines, and optimal values.
// ABOUTME: Single source of truth so the resolver and calculator never hardcode ranges.
package catalog

import "github.com/harperreed/longevity/internal/models"

// ScaleKind distinguishes the normalized wellness scale from physiological units.
type ScaleKind string

const (
	// ScaleWellness is the 1-10 lifestyle scale where higher is always better.
	ScaleWellness ScaleKind = "wellness"
	// ScaleMMHg is systolic blood pressure in mmHg, evaluated on its own curve.
	ScaleMMHg ScaleKind = "mmhg"
)

// Range is a metric's valid value interval in native units.
type Range struct {
	Min float64
	Max float64
}

type entry struct {
	scale    ScaleKind
	valid    Range
	baseline float64
	optimal  float64
}

var wellnessEntry = entry{
	scale:    ScaleWellness,
	valid:    Range{Min: 1, Max: 10},
	baseline: 5,
	optimal:  10,
}

// entries holds the full catalog. Blood pressure is the one kind with its own
// scale: optimal sits at 115 mmHg and the baseline (unknown-reading) value at
// 135, which the level resolver maps a "high" answer onto.
var entries = map[models.MetricKind]entry{
	models.KindStress:           wellnessEntry,
	models.KindAnxiety:          wellnessEntry,
	models.KindNutrition:        wellnessEntry,
	models.KindSmoking:          wellnessEntry,
	models.KindAlcohol:          wellnessEntry,
	models.KindSocialConnection: wellnessEntry,
	models.KindSleep:            wellnessEntry,
	models.KindActivity:         wellnessEntry,
	models.KindBPSystolic: {
		scale:    ScaleMMHg,
		valid:    Range{Min: 90, Max: 180},
		baseline: 135,
		optimal:  115,
	},
}

// ScaleOf returns the scale kind for a metric.
func ScaleOf(kind models.MetricKind) ScaleKind {
	return entries[kind].scale
}

// RangeOf returns the valid range for a metric in native units.
func RangeOf(kind models.MetricKind) Range {
	return entries[kind].valid
}

// BaselineOf returns the neutral/default value used when data is absent.
func BaselineOf(kind models.MetricKind) float64 {
	return entries[kind].baseline
}

// OptimalOf returns the healthiest value in the metric's valid range.
func OptimalOf(kind models.MetricKind) float64 {
	return entries[kind].optimal
}

// Clamp pins a raw value into the metric's valid range. Out-of-range values
// are clamped at the boundary, never rejected.
func Clamp(kind models.MetricKind, value float64) float64 {
	r := entries[kind].valid
	if value < r.Min {
		return r.Min
	}
	if value > r.Max {
		return r.Max
	}
	return value
}

// ABOUTME: ImpactResult and AggregateImpact output types.
// ABOUTME: Minutes-per-day is the engine's common unit; positive means gain.
package models

// ImpactResult is the impact calculator's output for one reading.
// MinutesPerDay is signed: positive denotes a lifespan gain, negative a loss.
// The text fields are deterministic per kind and exist for explanatory UI;
// they never affect the numbers.
type ImpactResult struct {
	Kind            MetricKind `json:"kind" yaml:"kind"`
	MinutesPerDay   float64    `json:"minutes_per_day" yaml:"minutes_per_day"`
	Confidence      string     `json:"confidence" yaml:"confidence"`
	Recommendation  string     `json:"recommendation" yaml:"recommendation"`
	ScientificBasis string     `json:"scientific_basis" yaml:"scientific_basis"`
}

// AggregateImpact combines per-metric impacts for one user and time window.
// Invariant: TotalMinutesPerDay equals the sum of Breakdown minutes. Kinds
// with no reading in the window are absent from Breakdown, not zero-filled.
type AggregateImpact struct {
	TotalMinutesPerDay float64                     `json:"total_minutes_per_day" yaml:"total_minutes_per_day"`
	Breakdown          map[MetricKind]ImpactResult `json:"breakdown" yaml:"breakdown"`
}

// HoursPerMonth converts the daily total into the approximate hours-per-month
// figure shown on preview screens.
func (a AggregateImpact) HoursPerMonth() float64 {
	return a.TotalMinutesPerDay * 30.44 / 60
}

// ABOUTME: Parameterized dose-response coefficients for the impact calculator.
// ABOUTME: Defaults are explicit configuration, pinned by tests, not hidden constants.
package engine

import "github.com/harperreed/longevity/internal/models"

// WellnessCurve is the linear saturating curve for 1-10 lifestyle metrics.
// Impact is MinutesPerPoint times the deviation from the catalog baseline,
// clamped into [-MaxLossPerDay, +MaxGainPerDay].
type WellnessCurve struct {
	MinutesPerPoint float64
	MaxGainPerDay   float64
	MaxLossPerDay   float64
}

// BPCurve is the distinct nonlinear blood-pressure curve. Below the
// threshold the benefit is linear in mmHg; above it the loss accelerates
// with a quadratic term, matching how cardiovascular risk compounds past
// 120 mmHg systolic.
type BPCurve struct {
	ThresholdMMHg  float64
	GainPerMMHg    float64
	LossPerMMHg    float64
	LossAccel      float64
	MaxGainPerDay  float64
	MaxLossPerDay  float64
}

// Coefficients bundles every tunable slope the calculator uses. The product
// source does not expose its calibration table, so these are deliberate
// configuration: swap in a different set without touching the engine.
type Coefficients struct {
	Wellness      map[models.MetricKind]WellnessCurve
	BloodPressure BPCurve
}

// DefaultCoefficients returns the reference calibration. Slopes are derived
// from the headline numbers in the literature each metric cites (a lifetime
// smoking habit costing on the order of a decade, roughly 11 minutes per
// cigarette; hypertension 3-5 years; chronic isolation comparable to light
// smoking) spread across the metric's scale.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		Wellness: map[models.MetricKind]WellnessCurve{
			models.KindSmoking:          {MinutesPerPoint: 28, MaxGainPerDay: 80, MaxLossPerDay: 180},
			models.KindNutrition:        {MinutesPerPoint: 12, MaxGainPerDay: 60, MaxLossPerDay: 100},
			models.KindAlcohol:          {MinutesPerPoint: 11, MaxGainPerDay: 40, MaxLossPerDay: 90},
			models.KindStress:           {MinutesPerPoint: 8, MaxGainPerDay: 40, MaxLossPerDay: 70},
			models.KindAnxiety:          {MinutesPerPoint: 7, MaxGainPerDay: 35, MaxLossPerDay: 60},
			models.KindSocialConnection: {MinutesPerPoint: 10, MaxGainPerDay: 50, MaxLossPerDay: 85},
			models.KindSleep:            {MinutesPerPoint: 9, MaxGainPerDay: 45, MaxLossPerDay: 80},
			models.KindActivity:         {MinutesPerPoint: 12, MaxGainPerDay: 60, MaxLossPerDay: 90},
		},
		BloodPressure: BPCurve{
			ThresholdMMHg: 120,
			GainPerMMHg:   0.8,
			LossPerMMHg:   0.9,
			LossAccel:     0.035,
			MaxGainPerDay: 30,
			MaxLossPerDay: 180,
		},
	}
}

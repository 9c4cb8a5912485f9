// ABOUTME: MetricImpactCalculator: one reading to signed lifespan minutes/day.
// ABOUTME: Linear saturating curve for 1-10 kinds, nonlinear curve for blood pressure.
package engine

import (
	"github.com/harperreed/longevity/internal/catalog"
	"github.com/harperreed/longevity/internal/models"
)

// kindMeta carries the per-kind explanatory payload. Deterministic per kind,
// never per reading; purely for the UI layer.
type kindMeta struct {
	confidence     string
	recommendation string
	basis          string
}

var kindMetadata = map[models.MetricKind]kindMeta{
	models.KindSmoking: {
		confidence:     "high",
		recommendation: "Quitting smoking is the single largest lifespan lever available.",
		basis:          "Doll et al., BMJ 2004; Jackson et al., BMJ 2000 (11 min/cigarette)",
	},
	models.KindNutrition: {
		confidence:     "high",
		recommendation: "Shift toward a whole-food, plant-forward diet.",
		basis:          "Fadnes et al., PLOS Medicine 2022",
	},
	models.KindAlcohol: {
		confidence:     "moderate",
		recommendation: "Keep intake below moderate-drinking guidelines.",
		basis:          "GBD 2016 Alcohol Collaborators, Lancet 2018",
	},
	models.KindStress: {
		confidence:     "moderate",
		recommendation: "Daily stress-reduction practice measurably lowers mortality risk.",
		basis:          "Chida & Steptoe, J Am Coll Cardiol 2008",
	},
	models.KindAnxiety: {
		confidence:     "emerging",
		recommendation: "Persistent anxiety is worth treating, not enduring.",
		basis:          "Meier et al., Br J Psychiatry 2016",
	},
	models.KindSocialConnection: {
		confidence:     "high",
		recommendation: "Invest in close relationships; isolation rivals smoking as a risk.",
		basis:          "Holt-Lunstad et al., PLOS Medicine 2010",
	},
	models.KindSleep: {
		confidence:     "moderate",
		recommendation: "Target 7-8 hours on a consistent schedule.",
		basis:          "Cappuccio et al., Sleep 2010",
	},
	models.KindActivity: {
		confidence:     "high",
		recommendation: "Even modest regular activity moves the curve substantially.",
		basis:          "Moore et al., PLOS Medicine 2012",
	},
	models.KindBPSystolic: {
		confidence:     "high",
		recommendation: "Keep systolic pressure near 115 mmHg; risk compounds above 120.",
		basis:          "Lewington et al., Lancet 2002 (prospective studies collaboration)",
	},
}

// Calculator converts metric readings into lifespan-impact minutes per day.
// Pure and stateless; safe for concurrent use.
type Calculator struct {
	coeffs Coefficients
}

// NewCalculator builds a calculator around a coefficient table.
func NewCalculator(coeffs Coefficients) *Calculator {
	return &Calculator{coeffs: coeffs}
}

// ImpactOf evaluates one reading. Out-of-range values are clamped into the
// catalog range before evaluation, never rejected.
func (c *Calculator) ImpactOf(reading models.MetricReading) models.ImpactResult {
	value := catalog.Clamp(reading.Kind, reading.Value)

	var minutes float64
	if catalog.ScaleOf(reading.Kind) == catalog.ScaleMMHg {
		minutes = c.bloodPressureMinutes(value)
	} else {
		minutes = c.wellnessMinutes(reading.Kind, value)
	}

	meta := kindMetadata[reading.Kind]
	return models.ImpactResult{
		Kind:            reading.Kind,
		MinutesPerDay:   minutes,
		Confidence:      meta.confidence,
		Recommendation:  meta.recommendation,
		ScientificBasis: meta.basis,
	}
}

// wellnessMinutes applies the linear curve: deviation from the catalog
// baseline times the kind's slope, saturating at the curve's caps. Values
// above baseline are gains, below are losses.
func (c *Calculator) wellnessMinutes(kind models.MetricKind, value float64) float64 {
	curve := c.coeffs.Wellness[kind]
	minutes := (value - catalog.BaselineOf(kind)) * curve.MinutesPerPoint
	return clampMinutes(minutes, curve.MaxGainPerDay, curve.MaxLossPerDay)
}

// bloodPressureMinutes applies the nonlinear curve. Below the threshold the
// benefit grows linearly toward the optimal reading; above it the loss has a
// quadratic term so risk accelerates rather than extrapolating linearly.
func (c *Calculator) bloodPressureMinutes(value float64) float64 {
	curve := c.coeffs.BloodPressure
	if value <= curve.ThresholdMMHg {
		minutes := (curve.ThresholdMMHg - value) * curve.GainPerMMHg
		return clampMinutes(minutes, curve.MaxGainPerDay, curve.MaxLossPerDay)
	}
	over := value - curve.ThresholdMMHg
	minutes := -(over*curve.LossPerMMHg + over*over*curve.LossAccel)
	return clampMinutes(minutes, curve.MaxGainPerDay, curve.MaxLossPerDay)
}

func clampMinutes(minutes, maxGain, maxLoss float64) float64 {
	if minutes > maxGain {
		return maxGain
	}
	if minutes < -maxLoss {
		return -maxLoss
	}
	return minutes
}

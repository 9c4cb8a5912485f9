// ABOUTME: MetricKind and Level enums for lifespan-impact scoring.
// ABOUTME: Defines 9 metric kinds across lifestyle scales and blood pressure.
package models

// MetricKind identifies a health/lifestyle dimension tracked by the engine.
type MetricKind string

const (
	// Wellness 1-10 scale, higher is always better
	KindStress           MetricKind = "stress"
	KindAnxiety          MetricKind = "anxiety"
	KindNutrition        MetricKind = "nutrition"
	KindSmoking          MetricKind = "smoking"
	KindAlcohol          MetricKind = "alcohol"
	KindSocialConnection MetricKind = "social_connection"
	KindSleep            MetricKind = "sleep"
	KindActivity         MetricKind = "activity"

	// Physiological units
	KindBPSystolic MetricKind = "bp_systolic"
)

// KindUnits maps metric kinds to their display units.
var KindUnits = map[MetricKind]string{
	KindStress:           "scale",
	KindAnxiety:          "scale",
	KindNutrition:        "scale",
	KindSmoking:          "scale",
	KindAlcohol:          "scale",
	KindSocialConnection: "scale",
	KindSleep:            "scale",
	KindActivity:         "scale",
	KindBPSystolic:       "mmHg",
}

// AllMetricKinds returns all valid metric kinds.
var AllMetricKinds = []MetricKind{
	KindStress, KindAnxiety, KindNutrition, KindSmoking, KindAlcohol,
	KindSocialConnection, KindSleep, KindActivity, KindBPSystolic,
}

// IsValidMetricKind checks if a string is a valid metric kind.
func IsValidMetricKind(s string) bool {
	for _, k := range AllMetricKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// Level is a coarse three-bucket encoding of how healthy a behavior is.
// Low always denotes the healthiest bucket, high the least healthy.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"

	// LevelUnknown means a label could not be classified. Callers must
	// treat it as absent data, never as a zero-impact reading.
	LevelUnknown Level = "unknown"
)

// KnownLevels returns the three resolvable levels, healthiest first.
var KnownLevels = []Level{LevelLow, LevelModerate, LevelHigh}

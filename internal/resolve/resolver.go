// ABOUTME: LevelResolver: categorical answers to calibrated numeric values.
// ABOUTME: ParseLevel classifies free-text labels; ResolveValue maps levels to numbers.
package resolve

import (
	"math"
	"strings"

	"github.com/harperreed/longevity/internal/catalog"
	"github.com/harperreed/longevity/internal/models"
)

// levelValues is the calibrated level-to-value table per kind on each
// metric's native scale. A "high" blood-pressure answer tells us the reading
// is elevated but not what it is, so it resolves to the catalog baseline.
var levelValues = map[models.MetricKind]map[models.Level]float64{
	models.KindStress:           {models.LevelLow: 10, models.LevelModerate: 6, models.LevelHigh: 2},
	models.KindAnxiety:          {models.LevelLow: 10, models.LevelModerate: 6, models.LevelHigh: 2},
	models.KindNutrition:        {models.LevelLow: 10, models.LevelModerate: 7, models.LevelHigh: 1},
	models.KindSmoking:          {models.LevelLow: 10, models.LevelModerate: 6, models.LevelHigh: 1},
	models.KindAlcohol:          {models.LevelLow: 10, models.LevelModerate: 7, models.LevelHigh: 1.5},
	models.KindSocialConnection: {models.LevelLow: 10, models.LevelModerate: 6, models.LevelHigh: 1},
	models.KindSleep:            {models.LevelLow: 10, models.LevelModerate: 6, models.LevelHigh: 2},
	models.KindActivity:         {models.LevelLow: 10, models.LevelModerate: 6, models.LevelHigh: 1.5},
	models.KindBPSystolic:       {models.LevelLow: 115, models.LevelModerate: 125, models.LevelHigh: 135},
}

// ResolveValue converts a coarse level to the metric's calibrated numeric
// value. Pure and total over every (kind, known level) pair; an unknown
// level falls back to the catalog baseline, though callers should treat
// unknown as absent data and never reach this path.
func ResolveValue(kind models.MetricKind, level models.Level) float64 {
	if values, ok := levelValues[kind]; ok {
		if v, ok := values[level]; ok {
			return catalog.Clamp(kind, v)
		}
	}
	return catalog.BaselineOf(kind)
}

// ParseLevel classifies a free-text answer label into a level using the
// kind's ordered rule table. Returns LevelUnknown when no predicate matches;
// that is data absence, not an error.
func ParseLevel(kind models.MetricKind, rawLabel string) models.Level {
	label := strings.ToLower(strings.TrimSpace(rawLabel))
	if label == "" {
		return models.LevelUnknown
	}
	for _, r := range kindRules[kind] {
		if r.match(label) {
			return r.level
		}
	}
	return models.LevelUnknown
}

// ReadingFromLabel resolves a raw categorical label all the way to a
// MetricReading, preserving the original label. Returns nil when the label
// cannot be classified.
func ReadingFromLabel(kind models.MetricKind, rawLabel string) *models.MetricReading {
	level := ParseLevel(kind, rawLabel)
	if level == models.LevelUnknown {
		return nil
	}
	value := ResolveValue(kind, level)
	return models.NewReading(kind, value).WithRawLabel(rawLabel)
}

// LevelFromValue maps a numeric reading back to the nearest calibration
// level. Ties break toward the less healthy level, so a 120 mmHg systolic
// reading classifies as moderate rather than low.
func LevelFromValue(kind models.MetricKind, value float64) models.Level {
	values, ok := levelValues[kind]
	if !ok {
		return models.LevelUnknown
	}
	value = catalog.Clamp(kind, value)

	best := models.LevelUnknown
	bestDist := math.MaxFloat64
	for _, level := range []models.Level{models.LevelLow, models.LevelModerate, models.LevelHigh} {
		d := math.Abs(value - values[level])
		if d <= bestDist {
			best = level
			bestDist = d
		}
	}
	return best
}

// ABOUTME: Ordered classification rule tables for free-text answer labels.
// ABOUTME: First matching predicate wins; rule order is part of the contract.
package resolve

import (
	"strconv"
	"strings"

	"github.com/harperreed/longevity/internal/models"
)

// rule pairs a predicate with the level it classifies to. Rules are evaluated
// top to bottom and the first match wins, so more specific predicates must be
// listed before the general ones they overlap with (e.g. "mild to moderate"
// before "mild").
type rule struct {
	match func(label string) bool
	level models.Level
}

// anyOf matches when the normalized label contains any of the substrings.
func anyOf(subs ...string) func(string) bool {
	return func(label string) bool {
		for _, s := range subs {
			if strings.Contains(label, s) {
				return true
			}
		}
		return false
	}
}

// systolicBetween matches when the first number in the label falls in
// [min, max). Labels like "119", "121 mmHg" or "128/82" all carry their
// systolic value first.
func systolicBetween(min, max float64) func(string) bool {
	return func(label string) bool {
		n, ok := firstNumber(label)
		return ok && n >= min && n < max
	}
}

// firstNumber extracts the first decimal number embedded in a label.
func firstNumber(label string) (float64, bool) {
	start := -1
	for i, c := range label {
		if (c >= '0' && c <= '9') || (start >= 0 && c == '.') {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.ParseFloat(label[start:i], 64)
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.ParseFloat(label[start:], 64)
		return n, err == nil
	}
	return 0, false
}

var stressRules = []rule{
	{anyOf("mild to moderate", "low to moderate"), models.LevelModerate},
	{anyOf("severe", "constant", "overwhelm", "high"), models.LevelHigh},
	{anyOf("moderate", "some days", "sometimes"), models.LevelModerate},
	{anyOf("mild", "low", "minimal", "relaxed", "rarely", "none"), models.LevelLow},
}

var anxietyRules = []rule{
	{anyOf("mild to moderate", "low to moderate"), models.LevelModerate},
	{anyOf("severe", "constant", "panic", "daily", "high"), models.LevelHigh},
	{anyOf("moderate", "weekly", "sometimes"), models.LevelModerate},
	{anyOf("mild", "low", "minimal", "rarely", "calm", "none"), models.LevelLow},
}

var nutritionRules = []rule{
	{anyOf("very healthy", "whole food", "excellent", "mostly plants"), models.LevelLow},
	{anyOf("fast food", "junk", "processed", "poor", "unhealthy"), models.LevelHigh},
	{anyOf("balanced", "average", "mixed", "moderate", "mostly healthy"), models.LevelModerate},
	{anyOf("healthy"), models.LevelLow},
}

var smokingRules = []rule{
	{anyOf("never", "non-smoker", "nonsmoker", "don't smoke", "do not smoke"), models.LevelLow},
	{anyOf("quit", "former", "used to"), models.LevelModerate},
	{anyOf("every day", "daily", "pack", "regular"), models.LevelHigh},
	{anyOf("occasionally", "social", "vape", "sometimes"), models.LevelModerate},
}

var alcoholRules = []rule{
	{anyOf("never", "none", "don't drink", "do not drink", "sober"), models.LevelLow},
	{anyOf("every day", "daily", "heavy", "most days", "frequent"), models.LevelHigh},
	{anyOf("occasionally", "social", "weekend", "few times", "1-2", "once or twice"), models.LevelModerate},
}

var socialRules = []rule{
	{anyOf("very strong", "very connected", "close-knit", "every day", "daily"), models.LevelLow},
	{anyOf("isolated", "lonely", "weak", "rarely", "no one", "none"), models.LevelHigh},
	{anyOf("moderate", "average", "some friends", "weekly", "occasional"), models.LevelModerate},
	{anyOf("strong", "connected"), models.LevelLow},
}

var sleepRules = []rule{
	{anyOf("7-8", "7 to 8", "well rested", "great", "consistent"), models.LevelLow},
	{anyOf("less than 5", "under 5", "insomnia", "poor", "terrible"), models.LevelHigh},
	{anyOf("5-6", "6-7", "okay", "fair", "inconsistent"), models.LevelModerate},
}

var activityRules = []rule{
	{anyOf("very active", "daily", "5+", "athlete", "every day"), models.LevelLow},
	{anyOf("sedentary", "none", "rarely", "never"), models.LevelHigh},
	{anyOf("moderate", "few times", "1-2", "2-3", "occasionally", "walk"), models.LevelModerate},
	{anyOf("active", "regular"), models.LevelLow},
}

// bpRules classify blood-pressure answers. Descriptive labels are tested
// before the numeric fallback so "Below 120/80" is not misread as a 120
// reading. The numeric cutoffs pin the boundary behavior: 119 is low, 121
// is moderate, 130 and above is high.
var bpRules = []rule{
	{anyOf("below 120", "under 120", "normal", "optimal", "healthy"), models.LevelLow},
	{anyOf("120-129", "elevated", "slightly raised"), models.LevelModerate},
	{anyOf("hypertension", "140", "above 130", "high", "not sure", "unknown"), models.LevelHigh},
	{systolicBetween(0, 120), models.LevelLow},
	{systolicBetween(120, 130), models.LevelModerate},
	{systolicBetween(130, 400), models.LevelHigh},
}

// kindRules maps each metric kind to its ordered rule table.
var kindRules = map[models.MetricKind][]rule{
	models.KindStress:           stressRules,
	models.KindAnxiety:          anxietyRules,
	models.KindNutrition:        nutritionRules,
	models.KindSmoking:          smokingRules,
	models.KindAlcohol:          alcoholRules,
	models.KindSocialConnection: socialRules,
	models.KindSleep:            sleepRules,
	models.KindActivity:         activityRules,
	models.KindBPSystolic:       bpRules,
}

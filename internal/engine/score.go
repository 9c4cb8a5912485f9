// ABOUTME: Preliminary 0-100 display score from categorical onboarding answers.
// ABOUTME: Baseline 50 with additive per-level bonuses, clamped to [0, 100].
package engine

import "github.com/harperreed/longevity/internal/models"

// scoreBonuses is the full bonus a metric contributes at the healthiest
// level. A moderate answer earns half (integer-truncated), a high answer
// subtracts the full bonus, unknown contributes nothing.
var scoreBonuses = map[models.MetricKind]int{
	models.KindStress:           10,
	models.KindAnxiety:          8,
	models.KindNutrition:        15,
	models.KindSmoking:          15,
	models.KindAlcohol:          5,
	models.KindSocialConnection: 10,
	models.KindSleep:            8,
	models.KindActivity:         10,
	models.KindBPSystolic:       10,
}

// scoreBaseline is the neutral starting point before any answers.
const scoreBaseline = 50

// PreliminaryScore rolls coarse level answers into the teaser display score.
// Kinds absent from the map contribute nothing; the result is clamped to
// [0, 100]. Pure over its input.
func PreliminaryScore(answers map[models.MetricKind]models.Level) int {
	score := scoreBaseline
	for kind, level := range answers {
		bonus := scoreBonuses[kind]
		switch level {
		case models.LevelLow:
			score += bonus
		case models.LevelModerate:
			score += bonus / 2
		case models.LevelHigh:
			score -= bonus
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ABOUTME: Tests for the level resolver and ordered rule tables.
// ABOUTME: Pins the calibration table, predicate order, and bp boundaries.
package resolve

import (
	"testing"

	"github.com/harperreed/longevity/internal/catalog"
	"github.com/harperreed/longevity/internal/models"
)

func TestResolveValueCalibrationTable(t *testing.T) {
	tests := []struct {
		kind  models.MetricKind
		level models.Level
		want  float64
	}{
		{models.KindStress, models.LevelLow, 10},
		{models.KindStress, models.LevelModerate, 6},
		{models.KindStress, models.LevelHigh, 2},
		{models.KindAnxiety, models.LevelLow, 10},
		{models.KindAnxiety, models.LevelModerate, 6},
		{models.KindAnxiety, models.LevelHigh, 2},
		{models.KindNutrition, models.LevelLow, 10},
		{models.KindNutrition, models.LevelModerate, 7},
		{models.KindNutrition, models.LevelHigh, 1},
		{models.KindSmoking, models.LevelLow, 10},
		{models.KindSmoking, models.LevelModerate, 6},
		{models.KindSmoking, models.LevelHigh, 1},
		{models.KindAlcohol, models.LevelLow, 10},
		{models.KindAlcohol, models.LevelModerate, 7},
		{models.KindAlcohol, models.LevelHigh, 1.5},
		{models.KindSocialConnection, models.LevelLow, 10},
		{models.KindSocialConnection, models.LevelModerate, 6},
		{models.KindSocialConnection, models.LevelHigh, 1},
		{models.KindBPSystolic, models.LevelLow, 115},
		{models.KindBPSystolic, models.LevelModerate, 125},
		{models.KindBPSystolic, models.LevelHigh, 135},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+string(tt.level), func(t *testing.T) {
			if got := ResolveValue(tt.kind, tt.level); got != tt.want {
				t.Errorf("ResolveValue(%s, %s) = %f, want %f", tt.kind, tt.level, got, tt.want)
			}
		})
	}
}

func TestResolveValueIsPureAndTotal(t *testing.T) {
	for _, k := range models.AllMetricKinds {
		for _, l := range models.KnownLevels {
			first := ResolveValue(k, l)
			second := ResolveValue(k, l)
			if first != second {
				t.Errorf("ResolveValue(%s, %s) not deterministic: %f != %f", k, l, first, second)
			}
			r := catalog.RangeOf(k)
			if first < r.Min || first > r.Max {
				t.Errorf("ResolveValue(%s, %s) = %f outside valid range", k, l, first)
			}
		}
	}
}

func TestResolveValueUnknownFallsBackToBaseline(t *testing.T) {
	got := ResolveValue(models.KindSmoking, models.LevelUnknown)
	if got != catalog.BaselineOf(models.KindSmoking) {
		t.Errorf("unknown level = %f, want baseline", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		kind  models.MetricKind
		label string
		want  models.Level
	}{
		{models.KindStress, "Mild", models.LevelLow},
		{models.KindStress, "Mild to moderate", models.LevelModerate},
		{models.KindStress, "Severe", models.LevelHigh},
		{models.KindStress, "  RELAXED  ", models.LevelLow},
		{models.KindNutrition, "Very healthy", models.LevelLow},
		{models.KindNutrition, "Healthy", models.LevelLow},
		{models.KindNutrition, "Mostly healthy", models.LevelModerate},
		{models.KindNutrition, "Fast food most days", models.LevelHigh},
		{models.KindSmoking, "Never", models.LevelLow},
		{models.KindSmoking, "Quit 5 years ago", models.LevelModerate},
		{models.KindSmoking, "Every day", models.LevelHigh},
		{models.KindSmoking, "Socially", models.LevelModerate},
		{models.KindAlcohol, "Never", models.LevelLow},
		{models.KindAlcohol, "Occasionally", models.LevelModerate},
		{models.KindAlcohol, "Most days", models.LevelHigh},
		{models.KindSocialConnection, "Very strong", models.LevelLow},
		{models.KindSocialConnection, "Isolated", models.LevelHigh},
		{models.KindBPSystolic, "Below 120/80", models.LevelLow},
		{models.KindBPSystolic, "Elevated", models.LevelModerate},
		{models.KindBPSystolic, "Hypertension", models.LevelHigh},
		{models.KindBPSystolic, "Not sure", models.LevelHigh},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.label, func(t *testing.T) {
			if got := ParseLevel(tt.kind, tt.label); got != tt.want {
				t.Errorf("ParseLevel(%s, %q) = %s, want %s", tt.kind, tt.label, got, tt.want)
			}
		})
	}
}

func TestParseLevelUnknown(t *testing.T) {
	tests := []struct {
		kind  models.MetricKind
		label string
	}{
		{models.KindStress, "banana"},
		{models.KindSmoking, ""},
		{models.KindAlcohol, "   "},
		{models.KindNutrition, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := ParseLevel(tt.kind, tt.label); got != models.LevelUnknown {
				t.Errorf("ParseLevel(%s, %q) = %s, want unknown", tt.kind, tt.label, got)
			}
		})
	}
}

// Boundary behavior for numeric blood-pressure labels is pinned by the
// ordered predicates: below 120 is low, 120-129 moderate, 130+ high.
func TestParseLevelBloodPressureBoundaries(t *testing.T) {
	tests := []struct {
		label string
		want  models.Level
	}{
		{"119", models.LevelLow},
		{"120", models.LevelModerate},
		{"121", models.LevelModerate},
		{"129", models.LevelModerate},
		{"130", models.LevelHigh},
		{"155", models.LevelHigh},
		{"118/76", models.LevelLow},
		{"124/82 mmHg", models.LevelModerate},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := ParseLevel(models.KindBPSystolic, tt.label); got != tt.want {
				t.Errorf("ParseLevel(bp_systolic, %q) = %s, want %s", tt.label, got, tt.want)
			}
		})
	}
}

// Predicate order is part of the contract: the overlapping labels below
// must resolve by the earlier, more specific rule.
func TestParseLevelPredicateOrder(t *testing.T) {
	// "mild to moderate" contains "mild" but must classify as moderate.
	if got := ParseLevel(models.KindStress, "mild to moderate"); got != models.LevelModerate {
		t.Errorf("overlapping stress label = %s, want moderate", got)
	}
	// "Below 120/80" contains the number 120 but must classify as low.
	if got := ParseLevel(models.KindBPSystolic, "below 120/80"); got != models.LevelLow {
		t.Errorf("overlapping bp label = %s, want low", got)
	}
	// "quit more than 10 years ago" contains a number but matches "quit".
	if got := ParseLevel(models.KindSmoking, "quit more than 10 years ago"); got != models.LevelModerate {
		t.Errorf("overlapping smoking label = %s, want moderate", got)
	}
}

func TestReadingFromLabel(t *testing.T) {
	r := ReadingFromLabel(models.KindSmoking, "Never")
	if r == nil {
		t.Fatal("expected reading for classifiable label")
	}
	if r.Value != 10 {
		t.Errorf("Value = %f, want 10", r.Value)
	}
	if r.RawLabel == nil || *r.RawLabel != "Never" {
		t.Error("expected raw label to be preserved")
	}

	if got := ReadingFromLabel(models.KindSmoking, "banana"); got != nil {
		t.Error("unclassifiable label must yield nil, not a default reading")
	}
}

func TestLevelFromValue(t *testing.T) {
	tests := []struct {
		kind  models.MetricKind
		value float64
		want  models.Level
	}{
		{models.KindStress, 10, models.LevelLow},
		{models.KindStress, 9, models.LevelLow},
		{models.KindStress, 6, models.LevelModerate},
		{models.KindStress, 2, models.LevelHigh},
		{models.KindStress, 1, models.LevelHigh},
		{models.KindBPSystolic, 112, models.LevelLow},
		{models.KindBPSystolic, 119, models.LevelLow},
		{models.KindBPSystolic, 120, models.LevelModerate},
		{models.KindBPSystolic, 128, models.LevelModerate},
		{models.KindBPSystolic, 131, models.LevelHigh},
		{models.KindBPSystolic, 180, models.LevelHigh},
	}

	for _, tt := range tests {
		if got := LevelFromValue(tt.kind, tt.value); got != tt.want {
			t.Errorf("LevelFromValue(%s, %v) = %s, want %s", tt.kind, tt.value, got, tt.want)
		}
	}

	if got := LevelFromValue(models.MetricKind("bogus"), 5); got != models.LevelUnknown {
		t.Errorf("unknown kind = %s, want unknown", got)
	}
}

// ABOUTME: Tests for the aggregate impact engine.
// ABOUTME: Pins additivity, latest-wins selection, period filtering, idempotence.
package engine

import (
	"testing"
	"time"

	"github.com/harperreed/longevity/internal/models"
)

var aggRef = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func reading(kind models.MetricKind, value float64, at time.Time) *models.MetricReading {
	return models.NewReading(kind, value).WithRecordedAt(at)
}

func TestTotalImpactAdditivity(t *testing.T) {
	calc := NewCalculator(DefaultCoefficients())

	readings := []*models.MetricReading{
		reading(models.KindSmoking, 1, aggRef),
		reading(models.KindNutrition, 10, aggRef),
		reading(models.KindAlcohol, 7, aggRef),
		reading(models.KindBPSystolic, 135, aggRef),
	}

	agg := calc.TotalImpact(readings, Period{})

	var sum float64
	for _, result := range agg.Breakdown {
		sum += result.MinutesPerDay
	}
	if agg.TotalMinutesPerDay != sum {
		t.Errorf("total %f != breakdown sum %f", agg.TotalMinutesPerDay, sum)
	}
	if len(agg.Breakdown) != 4 {
		t.Errorf("breakdown has %d entries, want 4", len(agg.Breakdown))
	}
}

func TestTotalImpactLatestReadingWins(t *testing.T) {
	calc := NewCalculator(DefaultCoefficients())

	readings := []*models.MetricReading{
		reading(models.KindSmoking, 1, aggRef.Add(-48*time.Hour)),
		reading(models.KindSmoking, 10, aggRef.Add(-1*time.Hour)),
		reading(models.KindSmoking, 3, aggRef.Add(-24*time.Hour)),
	}

	agg := calc.TotalImpact(readings, Period{})

	want := calc.ImpactOf(*readings[1]).MinutesPerDay
	if agg.TotalMinutesPerDay != want {
		t.Errorf("total = %f, want latest reading's impact %f", agg.TotalMinutesPerDay, want)
	}
	if len(agg.Breakdown) != 1 {
		t.Errorf("breakdown has %d entries, want 1", len(agg.Breakdown))
	}
}

// Scenario: daily smoker, everything else absent. The breakdown carries
// exactly one entry and the total equals that single impact.
func TestTotalImpactAbsentKindsExcluded(t *testing.T) {
	calc := NewCalculator(DefaultCoefficients())

	readings := []*models.MetricReading{
		reading(models.KindSmoking, 1, aggRef),
	}

	agg := calc.TotalImpact(readings, Period{})

	if len(agg.Breakdown) != 1 {
		t.Fatalf("breakdown has %d entries, want exactly 1", len(agg.Breakdown))
	}
	smoking, ok := agg.Breakdown[models.KindSmoking]
	if !ok {
		t.Fatal("breakdown missing smoking entry")
	}
	if agg.TotalMinutesPerDay != smoking.MinutesPerDay {
		t.Errorf("total %f != single impact %f", agg.TotalMinutesPerDay, smoking.MinutesPerDay)
	}
}

func TestTotalImpactEmptyInput(t *testing.T) {
	calc := NewCalculator(DefaultCoefficients())
	agg := calc.TotalImpact(nil, Period{})
	if agg.TotalMinutesPerDay != 0 {
		t.Errorf("empty input total = %f, want 0", agg.TotalMinutesPerDay)
	}
	if len(agg.Breakdown) != 0 {
		t.Errorf("empty input breakdown has %d entries", len(agg.Breakdown))
	}
}

func TestTotalImpactPeriodFilter(t *testing.T) {
	calc := NewCalculator(DefaultCoefficients())

	period := LastDays(7, aggRef)
	readings := []*models.MetricReading{
		reading(models.KindSmoking, 1, aggRef.AddDate(0, 0, -30)),
		reading(models.KindNutrition, 10, aggRef.AddDate(0, 0, -2)),
	}

	agg := calc.TotalImpact(readings, period)

	if _, ok := agg.Breakdown[models.KindSmoking]; ok {
		t.Error("reading outside period must be excluded, not used as fallback")
	}
	if _, ok := agg.Breakdown[models.KindNutrition]; !ok {
		t.Error("reading inside period missing from breakdown")
	}
}

func TestTotalImpactIdempotent(t *testing.T) {
	calc := NewCalculator(DefaultCoefficients())

	readings := []*models.MetricReading{
		reading(models.KindSmoking, 2, aggRef),
		reading(models.KindStress, 6, aggRef),
		reading(models.KindBPSystolic, 124, aggRef),
	}

	first := calc.TotalImpact(readings, Period{})
	second := calc.TotalImpact(readings, Period{})

	if first.TotalMinutesPerDay != second.TotalMinutesPerDay {
		t.Errorf("totals differ across identical calls: %f != %f", first.TotalMinutesPerDay, second.TotalMinutesPerDay)
	}
	for kind, a := range first.Breakdown {
		b, ok := second.Breakdown[kind]
		if !ok || a != b {
			t.Errorf("%s: breakdown differs across identical calls", kind)
		}
	}
}

func TestPeriodContains(t *testing.T) {
	p := Period{Start: aggRef.AddDate(0, 0, -7), End: aggRef}

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"inside", aggRef.AddDate(0, 0, -3), true},
		{"at start", aggRef.AddDate(0, 0, -7), true},
		{"at end", aggRef, true},
		{"before", aggRef.AddDate(0, 0, -8), false},
		{"after", aggRef.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.t); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}

	if !(Period{}).Contains(aggRef.AddDate(-50, 0, 0)) {
		t.Error("zero period must contain everything")
	}
}

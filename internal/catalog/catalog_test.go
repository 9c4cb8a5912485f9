// ABOUTME: Tests for the static metric catalog.
// ABOUTME: Validates coverage, range sanity, and the clamp invariant.
package catalog

import (
	"testing"

	"github.com/harperreed/longevity/internal/models"
)

func TestCatalogCoversAllKinds(t *testing.T) {
	for _, k := range models.AllMetricKinds {
		r := RangeOf(k)
		if r.Min >= r.Max {
			t.Errorf("%s: invalid range [%f, %f]", k, r.Min, r.Max)
		}
		b := BaselineOf(k)
		if b < r.Min || b > r.Max {
			t.Errorf("%s: baseline %f outside range [%f, %f]", k, b, r.Min, r.Max)
		}
		o := OptimalOf(k)
		if o < r.Min || o > r.Max {
			t.Errorf("%s: optimal %f outside range [%f, %f]", k, o, r.Min, r.Max)
		}
	}
}

func TestWellnessScale(t *testing.T) {
	for _, k := range models.AllMetricKinds {
		if k == models.KindBPSystolic {
			continue
		}
		if ScaleOf(k) != ScaleWellness {
			t.Errorf("%s: expected wellness scale", k)
		}
		if OptimalOf(k) != 10 {
			t.Errorf("%s: optimal = %f, want 10", k, OptimalOf(k))
		}
	}
}

func TestBloodPressureScale(t *testing.T) {
	if ScaleOf(models.KindBPSystolic) != ScaleMMHg {
		t.Error("bp_systolic should use the mmHg scale")
	}
	if OptimalOf(models.KindBPSystolic) != 115 {
		t.Errorf("bp optimal = %f, want 115", OptimalOf(models.KindBPSystolic))
	}
	if BaselineOf(models.KindBPSystolic) != 135 {
		t.Errorf("bp baseline = %f, want 135", BaselineOf(models.KindBPSystolic))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		kind  models.MetricKind
		value float64
		want  float64
	}{
		{"below wellness range", models.KindStress, -3, 1},
		{"above wellness range", models.KindStress, 42, 10},
		{"inside wellness range", models.KindStress, 7, 7},
		{"wellness boundary", models.KindSmoking, 10, 10},
		{"below bp range", models.KindBPSystolic, 40, 90},
		{"above bp range", models.KindBPSystolic, 260, 180},
		{"inside bp range", models.KindBPSystolic, 122, 122},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.kind, tt.value); got != tt.want {
				t.Errorf("Clamp(%s, %f) = %f, want %f", tt.kind, tt.value, got, tt.want)
			}
		})
	}
}

func TestClampInvariantExtremeInputs(t *testing.T) {
	// Any raw value must land inside the valid range after clamping.
	for _, k := range models.AllMetricKinds {
		r := RangeOf(k)
		for _, v := range []float64{-1e9, -1, 0, 1, 100, 1e9} {
			got := Clamp(k, v)
			if got < r.Min || got > r.Max {
				t.Errorf("Clamp(%s, %f) = %f, outside [%f, %f]", k, v, got, r.Min, r.Max)
			}
		}
	}
}

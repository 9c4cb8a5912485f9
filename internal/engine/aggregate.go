// ABOUTME: AggregateImpactEngine: additive roll-up of per-metric impacts.
// ABOUTME: Latest reading per kind within the period wins; absent kinds are excluded.
package engine

import (
	"time"

	"github.com/harperreed/longevity/internal/models"
)

// Period bounds the readings considered by TotalImpact. A zero Period means
// no window restriction.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the period. Bounds are inclusive;
// a zero bound is open on that side.
func (p Period) Contains(t time.Time) bool {
	if !p.Start.IsZero() && t.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && t.After(p.End) {
		return false
	}
	return true
}

// LastDays returns a period covering the last n days ending at ref.
func LastDays(n int, ref time.Time) Period {
	return Period{Start: ref.AddDate(0, 0, -n), End: ref}
}

// TotalImpact combines the impacts of the readings into one aggregate.
// For each distinct kind, the most recent reading within the period is the
// representative; kinds with no reading are excluded from the sum, not
// zero-filled. The model is explicitly additive: no cross-metric weighting,
// no interaction terms. Pure over its input.
func (c *Calculator) TotalImpact(readings []*models.MetricReading, period Period) models.AggregateImpact {
	latest := make(map[models.MetricKind]*models.MetricReading)
	for _, r := range readings {
		if r == nil || !period.Contains(r.RecordedAt) {
			continue
		}
		current, ok := latest[r.Kind]
		if !ok || !r.RecordedAt.Before(current.RecordedAt) {
			latest[r.Kind] = r
		}
	}

	agg := models.AggregateImpact{
		Breakdown: make(map[models.MetricKind]models.ImpactResult, len(latest)),
	}
	for kind, r := range latest {
		result := c.ImpactOf(*r)
		agg.Breakdown[kind] = result
		agg.TotalMinutesPerDay += result.MinutesPerDay
	}
	return agg
}

// ABOUTME: OptimalMetricsProvider: best-possible reading set for a profile.
// ABOUTME: Pure data construction from catalog optimals; no failure modes.
package engine

import (
	"time"

	"github.com/harperreed/longevity/internal/catalog"
	"github.com/harperreed/longevity/internal/models"
)

// OptimalReadingsFor returns one reading per metric kind, each set to the
// healthiest value in its catalog range. Used as the alternate engine input
// that produces the upper-bound projection. The profile parameter keeps the
// contract open for profile-dependent optimals; today every profile gets the
// same best case.
func OptimalReadingsFor(profile models.UserProfile, asOf time.Time) []*models.MetricReading {
	readings := make([]*models.MetricReading, 0, len(models.AllMetricKinds))
	for _, kind := range models.AllMetricKinds {
		r := models.NewReading(kind, catalog.OptimalOf(kind)).WithRecordedAt(asOf)
		readings = append(readings, r)
	}
	return readings
}

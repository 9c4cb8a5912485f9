// ABOUTME: Reading and profile operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side filtering.
package charm

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/longevity/internal/models"
	"github.com/harperreed/longevity/internal/storage"
)

// Compile-time check that Client implements the storage Repository.
var _ storage.Repository = (*Client)(nil)

// CreateReading stores a new reading in the KV store.
func (c *Client) CreateReading(r *models.MetricReading) error {
	key := ReadingPrefix + r.ID.String()
	data, err := marshalJSON(r)
	if err != nil {
		return fmt.Errorf("marshal reading: %w", err)
	}
	return c.set(key, data)
}

// GetReading retrieves a reading by ID or ID prefix.
func (c *Client) GetReading(idOrPrefix string) (*models.MetricReading, error) {
	data, err := c.getByIDPrefix(ReadingPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get reading: %w", err)
	}

	reading, err := unmarshalJSON[models.MetricReading](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal reading: %w", err)
	}

	return reading, nil
}

// ListReadings retrieves readings with optional filtering by kind.
// Results are sorted by RecordedAt descending (most recent first).
func (c *Client) ListReadings(kind *models.MetricKind, limit int) ([]*models.MetricReading, error) {
	allData, err := c.listByPrefix(ReadingPrefix)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}

	var readings []*models.MetricReading
	for _, data := range allData {
		r, err := unmarshalJSON[models.MetricReading](data)
		if err != nil {
			continue // Skip invalid entries
		}

		// Filter by kind if specified
		if kind != nil && r.Kind != *kind {
			continue
		}

		readings = append(readings, r)
	}

	// Sort by RecordedAt descending
	sort.Slice(readings, func(i, j int) bool {
		return readings[i].RecordedAt.After(readings[j].RecordedAt)
	})

	// Apply limit
	if limit > 0 && len(readings) > limit {
		readings = readings[:limit]
	}

	return readings, nil
}

// DeleteReading removes a reading by ID or prefix.
func (c *Client) DeleteReading(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(ReadingPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	return nil
}

// GetLatestReading returns the most recent reading of a specific kind.
func (c *Client) GetLatestReading(kind models.MetricKind) (*models.MetricReading, error) {
	readings, err := c.ListReadings(&kind, 1)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, fmt.Errorf("no readings of kind %s found", kind)
	}
	return readings[0], nil
}

// SaveProfile stores the singleton user profile.
func (c *Client) SaveProfile(p *models.UserProfile) error {
	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return c.set(ProfileKey, data)
}

// GetProfile retrieves the stored profile, or nil if none has been saved.
func (c *Client) GetProfile() (*models.UserProfile, error) {
	data, err := c.get(ProfileKey)
	if err != nil || len(data) == 0 {
		// Missing key means no profile yet, not an error
		return nil, nil
	}

	profile, err := unmarshalJSON[models.UserProfile](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return profile, nil
}

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	readings, err := c.ListReadings(nil, 0)
	if err != nil {
		return nil, err
	}
	profile, err := c.GetProfile()
	if err != nil {
		return nil, err
	}
	return &storage.ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "longevity",
		Profile:    profile,
		Readings:   readings,
	}, nil
}

// ImportData imports data from an export file.
func (c *Client) ImportData(data *storage.ExportData) error {
	for _, r := range data.Readings {
		if err := c.CreateReading(r); err != nil {
			return fmt.Errorf("import reading %s: %w", r.ID, err)
		}
	}
	if data.Profile != nil {
		if err := c.SaveProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	return nil
}

// ABOUTME: MetricReading model for normalized metric observations.
// ABOUTME: Immutable value object with builder-style With* helpers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ReadingSource records where a reading came from.
type ReadingSource string

const (
	SourceUserInput ReadingSource = "user_input"
	SourceDevice    ReadingSource = "device"
)

// MetricReading is a single normalized metric observation. Both manually
// entered answers (via the level resolver) and device-synced samples take
// this shape before reaching the engine.
type MetricReading struct {
	ID         uuid.UUID     `json:"id" yaml:"id"`
	Kind       MetricKind    `json:"kind" yaml:"kind"`
	Value      float64       `json:"value" yaml:"value"`
	Unit       string        `json:"unit" yaml:"unit"`
	Source     ReadingSource `json:"source" yaml:"source"`
	RawLabel   *string       `json:"raw_label,omitempty" yaml:"raw_label,omitempty"`
	RecordedAt time.Time     `json:"recorded_at" yaml:"recorded_at"`
	Notes      *string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at" yaml:"created_at"`
}

// NewReading creates a user-input reading with generated UUID and current
// timestamp. The value is stored as given; range clamping happens in the
// catalog at evaluation time.
func NewReading(kind MetricKind, value float64) *MetricReading {
	now := time.Now()
	return &MetricReading{
		ID:         uuid.New(),
		Kind:       kind,
		Value:      value,
		Unit:       KindUnits[kind],
		Source:     SourceUserInput,
		RecordedAt: now,
		CreatedAt:  now,
	}
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (r *MetricReading) WithRecordedAt(t time.Time) *MetricReading {
	r.RecordedAt = t
	return r
}

// WithSource sets the reading source.
func (r *MetricReading) WithSource(s ReadingSource) *MetricReading {
	r.Source = s
	return r
}

// WithRawLabel preserves the original categorical label the reading was
// resolved from.
func (r *MetricReading) WithRawLabel(label string) *MetricReading {
	r.RawLabel = &label
	return r
}

// WithNotes sets notes on the reading.
func (r *MetricReading) WithNotes(notes string) *MetricReading {
	r.Notes = &notes
	return r
}

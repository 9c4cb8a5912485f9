// ABOUTME: Reading CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for metric readings.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/longevity/internal/models"
)

// CreateReading stores a new reading in the database.
func (d *DB) CreateReading(r *models.MetricReading) error {
	query := `
		INSERT INTO readings (id, kind, value, unit, source, raw_label, recorded_at, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		r.ID.String(),
		string(r.Kind),
		r.Value,
		r.Unit,
		string(r.Source),
		r.RawLabel,
		r.RecordedAt.Format(time.RFC3339),
		r.Notes,
		r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create reading: %w", err)
	}
	return nil
}

// GetReading retrieves a reading by ID or ID prefix.
func (d *DB) GetReading(idOrPrefix string) (*models.MetricReading, error) {
	id, err := d.resolveReadingID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, kind, value, unit, source, raw_label, recorded_at, notes, created_at
		FROM readings
		WHERE id = ?
	`
	return d.scanReading(d.db.QueryRow(query, id))
}

// ListReadings retrieves readings with optional filtering by kind.
// Results are sorted by RecordedAt descending (most recent first).
func (d *DB) ListReadings(kind *models.MetricKind, limit int) ([]*models.MetricReading, error) {
	var query string
	var args []interface{}

	if kind != nil {
		query = `
			SELECT id, kind, value, unit, source, raw_label, recorded_at, notes, created_at
			FROM readings
			WHERE kind = ?
			ORDER BY recorded_at DESC
		`
		args = append(args, string(*kind))
	} else {
		query = `
			SELECT id, kind, value, unit, source, raw_label, recorded_at, notes, created_at
			FROM readings
			ORDER BY recorded_at DESC
		`
	}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	defer rows.Close()

	return d.scanReadings(rows)
}

// DeleteReading removes a reading by ID or prefix.
func (d *DB) DeleteReading(idOrPrefix string) error {
	id, err := d.resolveReadingID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM readings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	return nil
}

// GetLatestReading returns the most recent reading of a specific kind.
func (d *DB) GetLatestReading(kind models.MetricKind) (*models.MetricReading, error) {
	query := `
		SELECT id, kind, value, unit, source, raw_label, recorded_at, notes, created_at
		FROM readings
		WHERE kind = ?
		ORDER BY recorded_at DESC
		LIMIT 1
	`
	r, err := d.scanReading(d.db.QueryRow(query, string(kind)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no readings of kind %s found", kind)
		}
		return nil, err
	}
	return r, nil
}

// resolveReadingID finds the full ID from a prefix.
func (d *DB) resolveReadingID(idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := `SELECT id FROM readings WHERE id LIKE ? || '%'`
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve reading ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan reading ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

// scanReading scans a single row into a MetricReading struct.
func (d *DB) scanReading(row *sql.Row) (*models.MetricReading, error) {
	var r models.MetricReading
	var idStr, kind, source, recordedAt, createdAt string
	var rawLabel, notes sql.NullString

	err := row.Scan(&idStr, &kind, &r.Value, &r.Unit, &source, &rawLabel, &recordedAt, &notes, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("not found")
		}
		return nil, fmt.Errorf("scan reading: %w", err)
	}

	r.ID, _ = uuid.Parse(idStr)
	r.Kind = models.MetricKind(kind)
	r.Source = models.ReadingSource(source)
	r.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if rawLabel.Valid {
		r.RawLabel = &rawLabel.String
	}
	if notes.Valid {
		r.Notes = &notes.String
	}

	return &r, nil
}

// scanReadings scans multiple rows into a slice of readings.
func (d *DB) scanReadings(rows *sql.Rows) ([]*models.MetricReading, error) {
	var readings []*models.MetricReading

	for rows.Next() {
		var r models.MetricReading
		var idStr, kind, source, recordedAt, createdAt string
		var rawLabel, notes sql.NullString

		err := rows.Scan(&idStr, &kind, &r.Value, &r.Unit, &source, &rawLabel, &recordedAt, &notes, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}

		r.ID, _ = uuid.Parse(idStr)
		r.Kind = models.MetricKind(kind)
		r.Source = models.ReadingSource(source)
		r.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if rawLabel.Valid {
			r.RawLabel = &rawLabel.String
		}
		if notes.Valid {
			r.Notes = &notes.String
		}

		readings = append(readings, &r)
	}

	return readings, rows.Err()
}

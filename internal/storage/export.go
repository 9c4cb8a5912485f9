// ABOUTME: Export and import functionality for lifespan-impact data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/longevity/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format.
type ExportData struct {
	Version    string                  `json:"version" yaml:"version"`
	ExportedAt time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool       string                  `json:"tool" yaml:"tool"`
	Profile    *models.UserProfile     `json:"profile,omitempty" yaml:"profile,omitempty"`
	Readings   []*models.MetricReading `json:"readings" yaml:"readings"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	readings, err := d.ListReadings(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}

	profile, err := d.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "longevity",
		Profile:    profile,
		Readings:   readings,
	}, nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	for _, r := range data.Readings {
		if err := d.CreateReading(r); err != nil {
			return fmt.Errorf("import reading %s: %w", r.ID, err)
		}
	}
	if data.Profile != nil {
		if err := d.SaveProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all repository data as indented JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all repository data as YAML.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports readings and profile from a JSON export.
func ImportJSON(repo Repository, raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse export file: %w", err)
	}
	return repo.ImportData(&data)
}

// ExportMarkdown renders readings as a Markdown table, optionally filtered
// by kind and a start date.
func ExportMarkdown(repo Repository, kind *models.MetricKind, since *time.Time) (string, error) {
	readings, err := repo.ListReadings(kind, 0)
	if err != nil {
		return "", err
	}

	var filtered []*models.MetricReading
	for _, r := range readings {
		if since != nil && r.RecordedAt.Before(*since) {
			continue
		}
		filtered = append(filtered, r)
	}

	// Oldest first reads better in a document
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].RecordedAt.Before(filtered[j].RecordedAt)
	})

	var b strings.Builder
	b.WriteString("# Longevity Readings\n\n")
	if len(filtered) == 0 {
		b.WriteString("No readings found.\n")
		return b.String(), nil
	}

	b.WriteString("| Date | Kind | Value | Unit | Source | Label |\n")
	b.WriteString("|------|------|-------|------|--------|-------|\n")
	for _, r := range filtered {
		label := ""
		if r.RawLabel != nil {
			label = *r.RawLabel
		}
		fmt.Fprintf(&b, "| %s | %s | %.2f | %s | %s | %s |\n",
			r.RecordedAt.Format("2006-01-02 15:04"),
			r.Kind, r.Value, r.Unit, r.Source, label)
	}

	return b.String(), nil
}

// ABOUTME: Tests for export/import round-trips.
// ABOUTME: Covers JSON, YAML, and Markdown formats.
package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/longevity/internal/models"
)

func seedExportData(t *testing.T, d *DB) {
	t.Helper()
	readings := []*models.MetricReading{
		models.NewReading(models.KindSmoking, 10).WithRawLabel("Never"),
		models.NewReading(models.KindBPSystolic, 124).WithSource(models.SourceDevice),
	}
	for _, r := range readings {
		if err := d.CreateReading(r); err != nil {
			t.Fatalf("seed reading: %v", err)
		}
	}
	if err := d.SaveProfile(&models.UserProfile{BirthYear: 1988, Gender: models.GenderMale}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	d := testDB(t)
	seedExportData(t, d)

	raw, err := ExportJSON(d)
	if err != nil {
		t.Fatalf("export json: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if data.Tool != "longevity" || data.Version != "1.0" {
		t.Errorf("envelope = %s/%s", data.Tool, data.Version)
	}
	if len(data.Readings) != 2 {
		t.Errorf("got %d readings, want 2", len(data.Readings))
	}
	if data.Profile == nil || data.Profile.BirthYear != 1988 {
		t.Error("profile missing from export")
	}

	// Import into a fresh database
	d2 := testDB(t)
	if err := ImportJSON(d2, raw); err != nil {
		t.Fatalf("import: %v", err)
	}
	readings, err := d2.ListReadings(nil, 0)
	if err != nil {
		t.Fatalf("list after import: %v", err)
	}
	if len(readings) != 2 {
		t.Errorf("got %d readings after import, want 2", len(readings))
	}
	p, _ := d2.GetProfile()
	if p == nil || p.BirthYear != 1988 {
		t.Error("profile not imported")
	}
}

func TestExportYAML(t *testing.T) {
	d := testDB(t)
	seedExportData(t, d)

	raw, err := ExportYAML(d)
	if err != nil {
		t.Fatalf("export yaml: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, "tool: longevity") {
		t.Errorf("yaml missing tool field:\n%s", out)
	}
	if !strings.Contains(out, "kind: smoking") {
		t.Errorf("yaml missing smoking reading:\n%s", out)
	}
}

func TestExportMarkdown(t *testing.T) {
	d := testDB(t)
	seedExportData(t, d)

	md, err := ExportMarkdown(d, nil, nil)
	if err != nil {
		t.Fatalf("export markdown: %v", err)
	}
	if !strings.Contains(md, "| Date | Kind |") {
		t.Errorf("markdown missing table header:\n%s", md)
	}
	if !strings.Contains(md, "smoking") || !strings.Contains(md, "bp_systolic") {
		t.Errorf("markdown missing readings:\n%s", md)
	}

	kind := models.KindSmoking
	md, err = ExportMarkdown(d, &kind, nil)
	if err != nil {
		t.Fatalf("export filtered markdown: %v", err)
	}
	if strings.Contains(md, "bp_systolic") {
		t.Errorf("filtered markdown leaked other kinds:\n%s", md)
	}

	future := time.Now().Add(24 * time.Hour)
	md, err = ExportMarkdown(d, nil, &future)
	if err != nil {
		t.Fatalf("export since-filtered markdown: %v", err)
	}
	if !strings.Contains(md, "No readings found.") {
		t.Errorf("expected empty table message:\n%s", md)
	}
}

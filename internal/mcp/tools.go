// ABOUTME: MCP tool implementations for the lifespan-impact engine.
// ABOUTME: Exposes reading CRUD, profile, impact, projection, and optimal tools.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/longevity/internal/catalog"
	"github.com/harperreed/longevity/internal/engine"
	"github.com/harperreed/longevity/internal/models"
	"github.com/harperreed/longevity/internal/resolve"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// record_answer
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_answer",
		Description: "Record a categorical onboarding answer (e.g. smoking: \"Never\"), resolved to a calibrated reading",
	}, s.handleRecordAnswer)

	// record_reading
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_reading",
		Description: "Record a numeric metric reading (1-10 lifestyle scale, or mmHg for bp_systolic)",
	}, s.handleRecordReading)

	// list_readings
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_readings",
		Description: "List recent readings, optionally filtered by kind",
	}, s.handleListReadings)

	// delete_reading
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_reading",
		Description: "Delete a reading by ID or ID prefix",
	}, s.handleDeleteReading)

	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Set the user profile (birth year, gender, height, weight)",
	}, s.handleSetProfile)

	// get_impact
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_impact",
		Description: "Compute the aggregate daily lifespan impact with a per-metric breakdown",
	}, s.handleGetImpact)

	// get_projection
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_projection",
		Description: "Project remaining life expectancy and the battery percentage for the stored profile",
	}, s.handleGetProjection)

	// get_optimal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_optimal",
		Description: "Show the best-possible metric set and its aggregate impact",
	}, s.handleGetOptimal)
}

// Tool input/output types

type recordAnswerInput struct {
	Kind  string `json:"kind" jsonschema:"metric kind: stress / anxiety / nutrition / smoking / alcohol / social_connection / sleep / activity / bp_systolic"`
	Label string `json:"label" jsonschema:"the answer label as shown on the onboarding screen"`
}

type readingOutput struct {
	ID      string  `json:"id"`
	Kind    string  `json:"kind"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Level   string  `json:"level,omitempty"`
	Message string  `json:"message"`
}

type recordReadingInput struct {
	Kind       string  `json:"kind" jsonschema:"metric kind"`
	Value      float64 `json:"value" jsonschema:"the reading value in native units"`
	RecordedAt string  `json:"recorded_at,omitempty" jsonschema:"ISO 8601 timestamp; defaults to now"`
	Device     bool    `json:"device,omitempty" jsonschema:"mark the reading as device-sourced"`
}

type listReadingsInput struct {
	Kind  string `json:"kind,omitempty" jsonschema:"filter by metric kind"`
	Limit int    `json:"limit,omitempty" jsonschema:"max results; defaults to 20"`
}

type deleteReadingInput struct {
	ID string `json:"id" jsonschema:"reading ID or ID prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type setProfileInput struct {
	BirthYear int     `json:"birth_year" jsonschema:"four-digit birth year"`
	Gender    string  `json:"gender,omitempty" jsonschema:"male / female / unspecified"`
	HeightCm  float64 `json:"height_cm,omitempty" jsonschema:"height in centimeters"`
	WeightKg  float64 `json:"weight_kg,omitempty" jsonschema:"weight in kilograms"`
}

type getImpactInput struct {
	Days int `json:"days,omitempty" jsonschema:"only consider readings from the last N days; defaults to all"`
}

type impactOutput struct {
	TotalMinutesPerDay float64               `json:"total_minutes_per_day"`
	HoursPerMonth      float64               `json:"hours_per_month"`
	Breakdown          []models.ImpactResult `json:"breakdown"`
	Message            string                `json:"message"`
}

type projectionOutput struct {
	Projection  models.LifeProjection `json:"projection"`
	GainPercent float64               `json:"gain_percent"`
	Message     string                `json:"message"`
}

// Tool handlers

func (s *Server) handleRecordAnswer(ctx context.Context, req *mcp.CallToolRequest, input recordAnswerInput) (*mcp.CallToolResult, readingOutput, error) {
	if !models.IsValidMetricKind(input.Kind) {
		return nil, readingOutput{}, fmt.Errorf("unknown metric kind: %s", input.Kind)
	}

	kind := models.MetricKind(input.Kind)
	level := resolve.ParseLevel(kind, input.Label)
	if level == models.LevelUnknown {
		return nil, readingOutput{}, fmt.Errorf("could not classify %q for %s; nothing was recorded", input.Label, input.Kind)
	}

	r := resolve.ReadingFromLabel(kind, input.Label)
	if err := s.repo.CreateReading(r); err != nil {
		return nil, readingOutput{}, fmt.Errorf("failed to create reading: %w", err)
	}

	return nil, readingOutput{
		ID:      r.ID.String()[:8],
		Kind:    input.Kind,
		Value:   r.Value,
		Unit:    r.Unit,
		Level:   string(level),
		Message: fmt.Sprintf("Recorded %s answer %q as %s (%.1f %s)", input.Kind, input.Label, level, r.Value, r.Unit),
	}, nil
}

func (s *Server) handleRecordReading(ctx context.Context, req *mcp.CallToolRequest, input recordReadingInput) (*mcp.CallToolResult, readingOutput, error) {
	if !models.IsValidMetricKind(input.Kind) {
		return nil, readingOutput{}, fmt.Errorf("unknown metric kind: %s", input.Kind)
	}

	kind := models.MetricKind(input.Kind)
	r := models.NewReading(kind, catalog.Clamp(kind, input.Value))
	if input.Device {
		r.WithSource(models.SourceDevice)
	}

	if input.RecordedAt != "" {
		t, err := time.Parse(time.RFC3339, input.RecordedAt)
		if err != nil {
			t, err = time.Parse("2006-01-02 15:04", input.RecordedAt)
		}
		if err == nil {
			r.WithRecordedAt(t)
		}
	}

	if err := s.repo.CreateReading(r); err != nil {
		return nil, readingOutput{}, fmt.Errorf("failed to create reading: %w", err)
	}

	return nil, readingOutput{
		ID:      r.ID.String()[:8],
		Kind:    input.Kind,
		Value:   r.Value,
		Unit:    r.Unit,
		Message: fmt.Sprintf("Recorded %s: %.2f %s (ID: %s)", input.Kind, r.Value, r.Unit, r.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListReadings(ctx context.Context, req *mcp.CallToolRequest, input listReadingsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var kind *models.MetricKind
	if input.Kind != "" {
		k := models.MetricKind(input.Kind)
		kind = &k
	}

	readings, err := s.repo.ListReadings(kind, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list readings: %w", err)
	}

	if len(readings) == 0 {
		return nil, map[string]interface{}{"message": "No readings found."}, nil
	}

	return nil, readings, nil
}

func (s *Server) handleDeleteReading(ctx context.Context, req *mcp.CallToolRequest, input deleteReadingInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteReading(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete reading: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted reading: %s", input.ID),
	}, nil
}

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.BirthYear < 1900 || input.BirthYear > time.Now().Year() {
		return nil, simpleOutput{}, fmt.Errorf("implausible birth year: %d", input.BirthYear)
	}

	p := &models.UserProfile{
		BirthYear: input.BirthYear,
		Gender:    models.Gender(input.Gender),
	}
	if input.HeightCm > 0 {
		p.HeightCm = &input.HeightCm
	}
	if input.WeightKg > 0 {
		p.WeightKg = &input.WeightKg
	}

	if err := s.repo.SaveProfile(p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Profile saved (birth year %d)", input.BirthYear),
	}, nil
}

func (s *Server) handleGetImpact(ctx context.Context, req *mcp.CallToolRequest, input getImpactInput) (*mcp.CallToolResult, impactOutput, error) {
	agg, err := s.aggregate(input.Days)
	if err != nil {
		return nil, impactOutput{}, err
	}

	breakdown := make([]models.ImpactResult, 0, len(agg.Breakdown))
	for _, result := range agg.Breakdown {
		breakdown = append(breakdown, result)
	}

	verb := "gaining"
	if agg.TotalMinutesPerDay < 0 {
		verb = "losing"
	}
	return nil, impactOutput{
		TotalMinutesPerDay: agg.TotalMinutesPerDay,
		HoursPerMonth:      agg.HoursPerMonth(),
		Breakdown:          breakdown,
		Message:            fmt.Sprintf("You're %s %.0f minutes per day across %d metrics", verb, abs(agg.TotalMinutesPerDay), len(agg.Breakdown)),
	}, nil
}

func (s *Server) handleGetProjection(ctx context.Context, req *mcp.CallToolRequest, input getImpactInput) (*mcp.CallToolResult, projectionOutput, error) {
	profile, err := s.repo.GetProfile()
	if err != nil {
		return nil, projectionOutput{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, projectionOutput{}, fmt.Errorf("no profile set; use set_profile first")
	}

	agg, err := s.aggregate(input.Days)
	if err != nil {
		return nil, projectionOutput{}, err
	}

	projection := s.projector.Project(agg, *profile, time.Now())
	gain := engine.GainPercent(projection.AdjustedYearsRemaining, projection.OptimalYearsRemaining)

	return nil, projectionOutput{
		Projection:  projection,
		GainPercent: gain,
		Message: fmt.Sprintf("Battery at %.0f%%: %.1f adjusted years remaining of %.1f optimal",
			projection.ProjectionPercentage*100, projection.AdjustedYearsRemaining, projection.OptimalYearsRemaining),
	}, nil
}

func (s *Server) handleGetOptimal(ctx context.Context, req *mcp.CallToolRequest, input getImpactInput) (*mcp.CallToolResult, impactOutput, error) {
	profile, err := s.repo.GetProfile()
	if err != nil {
		return nil, impactOutput{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		profile = &models.UserProfile{}
	}

	agg := s.calc.TotalImpact(engine.OptimalReadingsFor(*profile, time.Now()), engine.Period{})

	breakdown := make([]models.ImpactResult, 0, len(agg.Breakdown))
	for _, result := range agg.Breakdown {
		breakdown = append(breakdown, result)
	}

	return nil, impactOutput{
		TotalMinutesPerDay: agg.TotalMinutesPerDay,
		HoursPerMonth:      agg.HoursPerMonth(),
		Breakdown:          breakdown,
		Message:            fmt.Sprintf("Best case: gaining %.0f minutes per day", agg.TotalMinutesPerDay),
	}, nil
}

// aggregate loads stored readings and rolls them up, optionally windowed to
// the last N days.
func (s *Server) aggregate(days int) (models.AggregateImpact, error) {
	readings, err := s.repo.ListReadings(nil, 0)
	if err != nil {
		return models.AggregateImpact{}, fmt.Errorf("failed to list readings: %w", err)
	}

	period := engine.Period{}
	if days > 0 {
		period = engine.LastDays(days, time.Now())
	}
	return s.calc.TotalImpact(readings, period), nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

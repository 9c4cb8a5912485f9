// ABOUTME: MCP resource implementations for the lifespan-impact engine.
// ABOUTME: Provides longevity://impact, longevity://projection, and recent readings.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/longevity/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// longevity://impact - Current aggregate impact with breakdown
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "longevity://impact",
		Name:        "Current Lifespan Impact",
		Description: "Aggregate daily impact in minutes with per-metric breakdown",
		MIMEType:    "application/json",
	}, s.handleImpactResource)

	// longevity://projection - Battery percentage and projected years
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "longevity://projection",
		Name:        "Life Projection",
		Description: "Projected years remaining and battery percentage for the stored profile",
		MIMEType:    "application/json",
	}, s.handleProjectionResource)

	// longevity://readings/recent - Last 10 readings
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "longevity://readings/recent",
		Name:        "Recent Readings",
		Description: "Last 10 metric readings",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

// Resource handlers

func (s *Server) handleImpactResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	agg, err := s.aggregate(0)
	if err != nil {
		return nil, err
	}

	result := map[string]interface{}{
		"total_minutes_per_day": agg.TotalMinutesPerDay,
		"hours_per_month":       agg.HoursPerMonth(),
		"breakdown":             agg.Breakdown,
	}
	return jsonResource(req.Params.URI, result)
}

func (s *Server) handleProjectionResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	profile, err := s.repo.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return jsonResource(req.Params.URI, map[string]interface{}{
			"message": "No profile set.",
		})
	}

	agg, err := s.aggregate(0)
	if err != nil {
		return nil, err
	}

	projection := s.projector.Project(agg, *profile, time.Now())
	result := map[string]interface{}{
		"projection":   projection,
		"gain_percent": engine.GainPercent(projection.AdjustedYearsRemaining, projection.OptimalYearsRemaining),
	}
	return jsonResource(req.Params.URI, result)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	readings, err := s.repo.ListReadings(nil, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}

	return jsonResource(req.Params.URI, map[string]interface{}{
		"readings": readings,
	})
}

// jsonResource marshals a value into a single-content resource result.
func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// ABOUTME: MCP resource implementations for liftlog.
// ABOUTME: Provides liftlog://active, liftlog://records, and liftlog://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/CiaoGab/LIFTLOG/internal/analytics"
)

const (
	activeURI  = "liftlog://active"
	recordsURI = "liftlog://records"
	summaryURI = "liftlog://summary"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         activeURI,
		Name:        "Active Workout",
		Description: "The workout in progress, if any",
		MIMEType:    "application/json",
	}, s.handleActiveResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recordsURI,
		Name:        "Personal Records",
		Description: "Heaviest completed set per exercise",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Training Summary",
		Description: "Four-week summary stats, weekly volume, and recent workouts",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleActiveResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{"active": false}
	if active := s.store.Snapshot().ActiveSession; active != nil {
		result["active"] = true
		result["workout"] = newWorkoutView(active)
	}
	return jsonResource(activeURI, result)
}

func (s *Server) handleRecordsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"units":   s.store.Snapshot().Settings.Units,
		"records": analytics.SortedRecords(s.store.PersonalRecords()),
	}
	return jsonResource(recordsURI, result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snap := s.store.Snapshot()
	now := s.store.Now()

	recent := make([]historyItem, 0, 5)
	for i := range snap.History {
		if i >= 5 {
			break
		}
		w := &snap.History[i]
		recent = append(recent, historyItem{
			ID:        w.ID,
			Name:      w.Name,
			Date:      analytics.DateISO(w.StartTime),
			Exercises: len(w.Exercises),
			Sets:      w.CompletedSets(),
			Volume:    w.Volume(),
		})
	}

	result := map[string]interface{}{
		"stats":          analytics.ComputeSummaryStats(snap.History, 4, now),
		"weekly_volume":  analytics.ComputeWeeklyVolumeTrend(snap.History, 8, now),
		"recent":         recent,
		"active_workout": snap.ActiveSession != nil,
		"units":          snap.Settings.Units,
	}
	return jsonResource(summaryURI, result)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

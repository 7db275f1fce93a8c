// ABOUTME: MCP resource implementations for the mood journal.
// ABOUTME: Provides mood://summary and mood://recent resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/mood/internal/journal"
	"github.com/harperreed/mood/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	summaryURI  = "mood://summary"
	recentURI   = "mood://recent"
	recentLimit = 14
)

func (s *Server) registerResources() {
	// mood://summary - statistics over the whole journal
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Mood Summary",
		Description: "Entry count, average mood, most frequent mood, and per-mood tally",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// mood://recent - the last two weeks of entries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Moods",
		Description: "The 14 most recent mood entries",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load moods: %w", err)
	}

	result := map[string]any{
		"generated_at": time.Now().Format(time.RFC3339),
		"summary":      newStatsOutput(stats.Summarize(records)),
	}
	return jsonResource(summaryURI, result)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	view, err := journal.NewSession(s.repo).View()
	if err != nil {
		return nil, fmt.Errorf("failed to load moods: %w", err)
	}

	rows := view.Rows
	if len(rows) > recentLimit {
		rows = rows[:recentLimit]
	}

	result := map[string]any{
		"count":                len(rows),
		"total":                view.Count,
		"average_symbol":       view.AverageSymbol,
		"most_frequent_symbol": view.MostFrequentSymbol,
		"entries":              toMoodRows(rows),
	}
	return jsonResource(recentURI, result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
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

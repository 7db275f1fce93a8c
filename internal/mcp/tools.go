// ABOUTME: MCP tool implementations for the mood journal.
// ABOUTME: Save, read, delete, list, and summarize daily mood records.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/mood/internal/journal"
	"github.com/harperreed/mood/internal/models"
	"github.com/harperreed/mood/internal/stats"
	"github.com/harperreed/mood/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

func (s *Server) registerTools() {
	// save_mood
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_mood",
		Description: "Record the mood for a day, replacing any existing entry for that day",
	}, s.handleSaveMood)

	// get_mood
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_mood",
		Description: "Get the mood recorded for a day",
	}, s.handleGetMood)

	// delete_mood
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_mood",
		Description: "Delete the mood recorded for a day (requires confirm: true)",
	}, s.handleDeleteMood)

	// list_moods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_moods",
		Description: "List recorded moods, most recent first",
	}, s.handleListMoods)

	// mood_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "mood_stats",
		Description: "Entry count, average mood, and most frequent mood",
	}, s.handleMoodStats)

	// list_mood_kinds
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_mood_kinds",
		Description: "List the available moods with their rank, symbol, and colour",
	}, s.handleListMoodKinds)
}

// Tool input/output types

type saveMoodInput struct {
	Mood string `json:"mood" jsonschema:"Mood key (çok-mutlu, mutlu, normal, üzgün, çok-üzgün), English alias, or rank 1-5"`
	Date string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, defaults to today"`
}

type dateInput struct {
	Date string `json:"date" jsonschema:"Day as YYYY-MM-DD"`
}

type deleteMoodInput struct {
	Date    string `json:"date" jsonschema:"Day as YYYY-MM-DD"`
	Confirm bool   `json:"confirm" jsonschema:"Must be true to delete"`
}

type listMoodsInput struct {
	Since string `json:"since,omitempty" jsonschema:"Only include days on or after this YYYY-MM-DD date"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 30)"`
}

type statsInput struct {
	Since string `json:"since,omitempty" jsonschema:"Only include days on or after this YYYY-MM-DD date"`
}

type moodOutput struct {
	Date    string `json:"date"`
	Mood    string `json:"mood"`
	Symbol  string `json:"symbol"`
	Rank    int    `json:"rank"`
	Message string `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type moodRow struct {
	Date          string `json:"date"`
	FormattedDate string `json:"formatted_date"`
	Mood          string `json:"mood"`
	Symbol        string `json:"symbol"`
	Rank          int    `json:"rank"`
	Color         string `json:"color"`
}

type listOutput struct {
	Count              int       `json:"count"`
	AverageSymbol      string    `json:"average_symbol"`
	MostFrequentSymbol string    `json:"most_frequent_symbol"`
	Entries            []moodRow `json:"entries"`
}

type statsOutput struct {
	Count        int            `json:"count"`
	Mean         float64        `json:"mean,omitempty"`
	Average      string         `json:"average,omitempty"`
	MostFrequent string         `json:"most_frequent,omitempty"`
	Tally        map[string]int `json:"tally"`
	First        string         `json:"first,omitempty"`
	Last         string         `json:"last,omitempty"`
	Message      string         `json:"message"`
}

type moodKindOutput struct {
	Key     string   `json:"key"`
	Rank    int      `json:"rank"`
	Symbol  string   `json:"symbol"`
	Color   string   `json:"color"`
	Aliases []string `json:"aliases,omitempty"`
}

type kindsOutput struct {
	Kinds []moodKindOutput `json:"kinds"`
}

// Tool handlers

func (s *Server) handleSaveMood(ctx context.Context, req *mcp.CallToolRequest, input saveMoodInput) (*mcp.CallToolResult, moodOutput, error) {
	mood, err := models.LookupMoodKind(input.Mood)
	if err != nil {
		return nil, moodOutput{}, err
	}

	date := models.Today()
	if input.Date != "" {
		date, err = models.ParseDate(input.Date)
		if err != nil {
			return nil, moodOutput{}, err
		}
	}

	session := journal.NewSession(s.repo)
	session.SelectMood(mood)
	session.SelectDate(date)
	if _, err := session.Save(); err != nil {
		return nil, moodOutput{}, fmt.Errorf("failed to save mood: %w", err)
	}
	s.log.Debug("saved mood", zap.Stringer("date", date), zap.Stringer("mood", mood))

	return nil, moodOutput{
		Date:    date.String(),
		Mood:    mood.Key(),
		Symbol:  mood.Symbol(),
		Rank:    mood.Rank(),
		Message: fmt.Sprintf("Saved %s %s for %s", mood.Symbol(), mood.Key(), date.Display()),
	}, nil
}

func (s *Server) handleGetMood(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, moodOutput, error) {
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, moodOutput{}, err
	}

	rec, err := s.repo.Get(date)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, moodOutput{}, fmt.Errorf("no mood recorded for %s", date)
	}
	if err != nil {
		return nil, moodOutput{}, fmt.Errorf("failed to get mood: %w", err)
	}

	return nil, moodOutput{
		Date:    rec.Date.String(),
		Mood:    rec.Mood.Key(),
		Symbol:  rec.Mood.Symbol(),
		Rank:    rec.Mood.Rank(),
		Message: fmt.Sprintf("%s: %s %s", rec.Date.Display(), rec.Mood.Symbol(), rec.Mood.Key()),
	}, nil
}

func (s *Server) handleDeleteMood(ctx context.Context, req *mcp.CallToolRequest, input deleteMoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	session := journal.NewSession(s.repo)
	confirm := journal.ConfirmFunc(func(models.Date) bool { return input.Confirm })
	removed, err := session.Delete(date, confirm)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete mood: %w", err)
	}

	switch {
	case removed:
		return nil, simpleOutput{Message: fmt.Sprintf("Deleted mood for %s", date)}, nil
	case !input.Confirm:
		return nil, simpleOutput{Message: fmt.Sprintf("Not deleted: set confirm to true to delete %s", date)}, nil
	default:
		return nil, simpleOutput{Message: fmt.Sprintf("No mood recorded for %s", date)}, nil
	}
}

func (s *Server) handleListMoods(ctx context.Context, req *mcp.CallToolRequest, input listMoodsInput) (*mcp.CallToolResult, listOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 30
	}

	records, err := s.loadSince(input.Since)
	if err != nil {
		return nil, listOutput{}, err
	}

	view := journal.BuildView(records)
	rows := view.Rows
	if len(rows) > input.Limit {
		rows = rows[:input.Limit]
	}

	return nil, listOutput{
		Count:              view.Count,
		AverageSymbol:      view.AverageSymbol,
		MostFrequentSymbol: view.MostFrequentSymbol,
		Entries:            toMoodRows(rows),
	}, nil
}

func (s *Server) handleMoodStats(ctx context.Context, req *mcp.CallToolRequest, input statsInput) (*mcp.CallToolResult, statsOutput, error) {
	records, err := s.loadSince(input.Since)
	if err != nil {
		return nil, statsOutput{}, err
	}

	return nil, newStatsOutput(stats.Summarize(records)), nil
}

func (s *Server) handleListMoodKinds(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, kindsOutput, error) {
	out := kindsOutput{Kinds: make([]moodKindOutput, 0, len(models.AllMoodKinds))}
	for _, k := range models.AllMoodKinds {
		out.Kinds = append(out.Kinds, moodKindOutput{
			Key:     k.Key(),
			Rank:    k.Rank(),
			Symbol:  k.Symbol(),
			Color:   k.Color(),
			Aliases: k.Aliases(),
		})
	}
	return nil, out, nil
}

// loadSince loads every record, keeping only those on or after since when it is set.
func (s *Server) loadSince(since string) ([]models.MoodRecord, error) {
	records, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load moods: %w", err)
	}
	if since == "" {
		return records, nil
	}
	from, err := models.ParseDate(since)
	if err != nil {
		return nil, err
	}
	return stats.Since(records, from), nil
}

// toMoodRows flattens view rows to plain strings for structured tool output.
func toMoodRows(rows []journal.Row) []moodRow {
	out := make([]moodRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, moodRow{
			Date:          r.Date.String(),
			FormattedDate: r.FormattedDate,
			Mood:          r.Mood.Key(),
			Symbol:        r.Symbol,
			Rank:          r.Rank,
			Color:         r.Color,
		})
	}
	return out
}

func newStatsOutput(summary stats.Summary) statsOutput {
	out := statsOutput{
		Count: summary.Count,
		Mean:  summary.Mean,
		Tally: make(map[string]int, len(summary.Tally)),
	}
	for k, n := range summary.Tally {
		out.Tally[k.Key()] = n
	}
	if summary.Count == 0 {
		out.Message = "No moods recorded."
		return out
	}

	out.First = summary.First.String()
	out.Last = summary.Last.String()
	if summary.HasAverage {
		out.Average = summary.Average.Key()
	}
	if summary.HasMostFrequent {
		out.MostFrequent = summary.MostFrequent.Key()
	}
	out.Message = fmt.Sprintf("%d entries, average %s %s, most frequent %s %s",
		summary.Count,
		summary.Average.Symbol(), summary.Average.Key(),
		summary.MostFrequent.Symbol(), summary.MostFrequent.Key())
	return out
}

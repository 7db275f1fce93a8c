// ABOUTME: Export and import functionality for mood journal data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/mood/internal/models"
	"github.com/harperreed/mood/internal/stats"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for mood data.
type ExportData struct {
	Version    string              `json:"version" yaml:"version"`
	ExportedAt time.Time           `json:"exported_at" yaml:"exported_at"`
	Tool       string              `json:"tool" yaml:"tool"`
	Records    []models.MoodRecord `json:"records" yaml:"records"`
	Summary    *ExportSummary      `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// ExportSummary is the stats block included with an export.
type ExportSummary struct {
	Count        int            `json:"count" yaml:"count"`
	Mean         float64        `json:"mean" yaml:"mean"`
	Average      string         `json:"average,omitempty" yaml:"average,omitempty"`
	MostFrequent string         `json:"most_frequent,omitempty" yaml:"most_frequent,omitempty"`
	Tally        map[string]int `json:"tally" yaml:"tally"`
}

// ImportResult counts what an import changed.
type ImportResult struct {
	Added   int
	Updated int
}

func newExportSummary(records []models.MoodRecord) *ExportSummary {
	s := stats.Summarize(records)
	es := &ExportSummary{
		Count: s.Count,
		Mean:  s.Mean,
		Tally: make(map[string]int, len(s.Tally)),
	}
	if s.HasAverage {
		es.Average = s.Average.Key()
	}
	if s.HasMostFrequent {
		es.MostFrequent = s.MostFrequent.Key()
	}
	for k, c := range s.Tally {
		es.Tally[k.Key()] = c
	}
	return es
}

// GetAllData retrieves all data for export, newest record first.
func GetAllData(repo Repository) (*ExportData, error) {
	records, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "mood",
		Records:    stats.SortByDateDesc(records),
		Summary:    newExportSummary(records),
	}, nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML with records grouped by month.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                  `yaml:"version"`
		ExportedAt string                  `yaml:"exported_at"`
		Tool       string                  `yaml:"tool"`
		Summary    *ExportSummary          `yaml:"summary"`
		Months     map[string][]yamlRecord `yaml:"months"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Summary:    data.Summary,
		Months:     make(map[string][]yamlRecord),
	}

	for _, r := range data.Records {
		month := fmt.Sprintf("%04d-%02d", r.Date.Year, int(r.Date.Month))
		yamlData.Months[month] = append(yamlData.Months[month], yamlRecord{
			Date:   r.Date.String(),
			Mood:   r.Mood.Key(),
			Rank:   r.Mood.Rank(),
			Symbol: r.Mood.Symbol(),
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlRecord struct {
	Date   string `yaml:"date"`
	Mood   string `yaml:"mood"`
	Rank   int    `yaml:"rank"`
	Symbol string `yaml:"symbol"`
}

// ExportMarkdown exports data as Markdown, optionally limited to records on or after since.
func ExportMarkdown(repo Repository, since *models.Date) (string, error) {
	records, err := repo.Load()
	if err != nil {
		return "", err
	}
	if since != nil {
		records = stats.Since(records, *since)
	}
	s := stats.Summarize(records)

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Mood Journal - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- Records: %d\n", s.Count))
	if s.HasAverage {
		sb.WriteString(fmt.Sprintf("- Average: %s %s (%.2f)\n", s.Average.Symbol(), s.Average.Key(), s.Mean))
	}
	if s.HasMostFrequent {
		sb.WriteString(fmt.Sprintf("- Most frequent: %s %s (%d)\n",
			s.MostFrequent.Symbol(), s.MostFrequent.Key(), s.Tally[s.MostFrequent]))
	}
	sb.WriteString("\n")

	if len(records) == 0 {
		sb.WriteString("No records.\n")
		return sb.String(), nil
	}

	sb.WriteString("## Records\n\n")
	sb.WriteString("| Date | Mood |\n")
	sb.WriteString("|------|------|\n")
	for _, r := range stats.SortByDateDesc(records) {
		sb.WriteString(fmt.Sprintf("| %s | %s %s |\n", r.Date.Display(), r.Mood.Symbol(), r.Mood.Key()))
	}

	return sb.String(), nil
}

// ImportJSON imports records from an export document or a bare persisted payload.
// Each record is upserted, so importing the same file twice changes nothing.
func ImportJSON(repo Repository, data []byte) (*ImportResult, error) {
	records, err := parseImport(data)
	if err != nil {
		return nil, err
	}
	return ImportRecords(repo, records)
}

// ImportRecords upserts records into repo in one rewrite.
func ImportRecords(repo Repository, records []models.MoodRecord) (*ImportResult, error) {
	existing, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	merged, result := mergeRecords(existing, records)
	if err := repo.Save(merged); err != nil {
		return nil, fmt.Errorf("save records: %w", err)
	}
	return result, nil
}

// mergeRecords applies incoming over existing with upsert-by-date semantics.
func mergeRecords(existing, incoming []models.MoodRecord) ([]models.MoodRecord, *ImportResult) {
	result := &ImportResult{}
	index := make(map[models.Date]int, len(existing))
	merged := append([]models.MoodRecord(nil), existing...)
	for i, r := range merged {
		index[r.Date] = i
	}

	for _, r := range incoming {
		if i, ok := index[r.Date]; ok {
			if merged[i].Mood != r.Mood {
				merged[i].Mood = r.Mood
				result.Updated++
			}
			continue
		}
		index[r.Date] = len(merged)
		merged = append(merged, r)
		result.Added++
	}
	return merged, result
}

func parseImport(data []byte) ([]models.MoodRecord, error) {
	var records []models.MoodRecord
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("unmarshal JSON: %w", err)
		}
	} else {
		var exportData ExportData
		if err := json.Unmarshal(data, &exportData); err != nil {
			return nil, fmt.Errorf("unmarshal JSON: %w", err)
		}
		records = exportData.Records
	}

	// Absent fields decode to zero values, which the JSON decoder does not reject.
	for i, r := range records {
		if r.Date.IsZero() {
			return nil, fmt.Errorf("import record %d: %w", i, models.ErrMissingDate)
		}
		if !r.Mood.Valid() {
			return nil, fmt.Errorf("import record %d (%s): %w", i, r.Date, models.ErrUnknownMood)
		}
	}
	return records, nil
}

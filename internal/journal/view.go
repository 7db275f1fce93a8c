// ABOUTME: Display model for the journal: summary statistics plus date-ordered rows.
// ABOUTME: Renderers (CLI, MCP) consume a View instead of touching records directly.
package journal

import (
	"github.com/harperreed/mood/internal/models"
	"github.com/harperreed/mood/internal/stats"
)

// Row is one rendered history entry.
type Row struct {
	Date          models.Date     `json:"date"`
	FormattedDate string          `json:"formatted_date"`
	Mood          models.MoodKind `json:"mood"`
	Symbol        string          `json:"symbol"`
	Rank          int             `json:"rank"`
	Color         string          `json:"color"`
}

// View is everything a renderer needs to draw the journal.
type View struct {
	Count              int             `json:"count"`
	Mean               float64         `json:"mean,omitempty"`
	HasAverage         bool            `json:"-"`
	Average            models.MoodKind `json:"-"`
	AverageSymbol      string          `json:"average_symbol"`
	HasMostFrequent    bool            `json:"-"`
	MostFrequent       models.MoodKind `json:"-"`
	MostFrequentSymbol string          `json:"most_frequent_symbol"`
	Rows               []Row           `json:"rows"`
}

// Placeholder is shown for statistics of an empty journal.
const Placeholder = "-"

// BuildView derives the display model from records.
func BuildView(records []models.MoodRecord) *View {
	summary := stats.Summarize(records)
	v := &View{
		Count:              summary.Count,
		Mean:               summary.Mean,
		HasAverage:         summary.HasAverage,
		Average:            summary.Average,
		AverageSymbol:      Placeholder,
		HasMostFrequent:    summary.HasMostFrequent,
		MostFrequent:       summary.MostFrequent,
		MostFrequentSymbol: Placeholder,
		Rows:               make([]Row, 0, len(records)),
	}
	if summary.HasAverage {
		v.AverageSymbol = summary.Average.Symbol()
	}
	if summary.HasMostFrequent {
		v.MostFrequentSymbol = summary.MostFrequent.Symbol()
	}

	for _, r := range stats.SortByDateDesc(records) {
		v.Rows = append(v.Rows, Row{
			Date:          r.Date,
			FormattedDate: FormatDate(r.Date),
			Mood:          r.Mood,
			Symbol:        r.Mood.Symbol(),
			Rank:          r.Mood.Rank(),
			Color:         r.Mood.Color(),
		})
	}
	return v
}

// FormatDate renders a date as DD.MM.YYYY.
func FormatDate(d models.Date) string {
	return d.Display()
}

// ABOUTME: Aggregations over mood records: count, average, most frequent, date order.
// ABOUTME: Pure functions; every result is recomputed from the full record set.
package stats

import (
	"math"
	"slices"

	"github.com/harperreed/mood/internal/models"
)

// Count returns the number of records.
func Count(records []models.MoodRecord) int {
	return len(records)
}

// Mean returns the arithmetic mean of the record ranks.
func Mean(records []models.MoodRecord) (float64, bool) {
	if len(records) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range records {
		sum += r.Mood.Rank()
	}
	return float64(sum) / float64(len(records)), true
}

// Average returns the mood whose rank equals the mean rounded half up.
func Average(records []models.MoodRecord) (models.MoodKind, bool) {
	mean, ok := Mean(records)
	if !ok {
		return 0, false
	}
	return models.MoodKindForRank(int(math.Floor(mean + 0.5)))
}

// Tally counts records per mood.
func Tally(records []models.MoodRecord) map[models.MoodKind]int {
	counts := make(map[models.MoodKind]int, len(models.AllMoodKinds))
	for _, r := range records {
		counts[r.Mood]++
	}
	return counts
}

// MostFrequent returns the mood with the highest count. Ties go to the lowest rank.
func MostFrequent(records []models.MoodRecord) (models.MoodKind, bool) {
	if len(records) == 0 {
		return 0, false
	}
	counts := Tally(records)

	var best models.MoodKind
	bestCount := 0
	// AllMoodKinds runs from highest rank to lowest, so >= lets a lower rank win a tie.
	for _, k := range models.AllMoodKinds {
		if c := counts[k]; c > 0 && c >= bestCount {
			best, bestCount = k, c
		}
	}
	return best, bestCount > 0
}

// SortByDateDesc returns a copy of records ordered most recent first.
// Records with equal dates keep their relative order.
func SortByDateDesc(records []models.MoodRecord) []models.MoodRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.MoodRecord) int {
		return b.Date.Compare(a.Date)
	})
	return sorted
}

// Since returns the records dated on or after from, in their original order.
func Since(records []models.MoodRecord, from models.Date) []models.MoodRecord {
	var out []models.MoodRecord
	for _, r := range records {
		if !r.Date.Before(from) {
			out = append(out, r)
		}
	}
	return out
}

// Summary bundles the derived statistics for a record set.
type Summary struct {
	Count           int
	Mean            float64
	HasAverage      bool
	Average         models.MoodKind
	HasMostFrequent bool
	MostFrequent    models.MoodKind
	Tally           map[models.MoodKind]int
	First           models.Date
	Last            models.Date
}

// Summarize computes every statistic in one pass over records.
func Summarize(records []models.MoodRecord) Summary {
	s := Summary{
		Count: Count(records),
		Tally: Tally(records),
	}
	s.Mean, _ = Mean(records)
	s.Average, s.HasAverage = Average(records)
	s.MostFrequent, s.HasMostFrequent = MostFrequent(records)
	for i, r := range records {
		if i == 0 || r.Date.Before(s.First) {
			s.First = r.Date
		}
		if i == 0 || r.Date.After(s.Last) {
			s.Last = r.Date
		}
	}
	return s
}

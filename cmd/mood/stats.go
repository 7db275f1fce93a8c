// ABOUTME: CLI command for journal statistics.
// ABOUTME: Prints entry count, average mood, most frequent mood, and a per-mood tally.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/mood/internal/models"
	"github.com/harperreed/mood/internal/stats"
	"github.com/harperreed/mood/internal/storage"
	"github.com/spf13/cobra"
)

var statsSince string

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"summary"},
	Short:   "Show mood statistics",
	Long: `Show statistics over the journal.

  Entries        number of recorded days
  Average        the mood whose rank is the mean rank, rounded half up
  Most frequent  the most common mood; ties go to the lower mood

EXAMPLES:

  mood stats
  mood stats --since 2024-01-01`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		since, err := parseDateFlag("since", statsSince)
		if err != nil {
			return err
		}

		records, err := repo.Load()
		if err != nil {
			return fmt.Errorf("failed to load moods: %w", err)
		}
		if since != nil {
			records = stats.Since(records, *since)
		}

		printSummary(cmd, stats.Summarize(records))
		return nil
	},
}

func printSummary(cmd *cobra.Command, s stats.Summary) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	fmt.Fprintf(out, "%s %d\n", bold.Sprint("Entries:      "), s.Count)
	if s.Count == 0 {
		fmt.Fprintf(out, "%s -\n", bold.Sprint("Average:      "))
		fmt.Fprintf(out, "%s -\n", bold.Sprint("Most frequent:"))
		return
	}

	fmt.Fprintf(out, "%s %s %s\n", bold.Sprint("Average:      "), moodLabel(s.Average), faint.Sprintf("(%.2f)", s.Mean))
	fmt.Fprintf(out, "%s %s %s\n", bold.Sprint("Most frequent:"), moodLabel(s.MostFrequent), faint.Sprintf("(%d)", s.Tally[s.MostFrequent]))
	fmt.Fprintf(out, "%s %s … %s\n", bold.Sprint("Range:        "), s.First.Display(), s.Last.Display())
	if db := sqliteBackend(); db != nil {
		if at, err := db.UpdatedAt(storage.PayloadKey); err == nil {
			fmt.Fprintf(out, "%s %s %s\n", bold.Sprint("Last saved:   "),
				at.Local().Format("02.01.2006 15:04"), faint.Sprint(db.Path()))
		}
	}
	fmt.Fprintln(out)

	for _, k := range models.AllMoodKinds {
		n := s.Tally[k]
		bar := color.RGB(k.RGB()).Sprint(strings.Repeat("█", n))
		fmt.Fprintf(out, "  %s %-10s %3d %s\n", k.Symbol(), k.Key(), n, bar)
	}
}

// sqliteBackend returns the open SQLite backend, or nil for other backends.
func sqliteBackend() *storage.DB {
	store, ok := repo.(*storage.Store)
	if !ok {
		return nil
	}
	db, _ := store.Backend().(*storage.DB)
	return db
}

func init() {
	statsCmd.Flags().StringVar(&statsSince, "since", "", "only include days since date (YYYY-MM-DD)")
	rootCmd.AddCommand(statsCmd)
}

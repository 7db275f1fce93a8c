// ABOUTME: CLI command for listing mood history.
// ABOUTME: Shows entries most recent first with optional date and count limits.
package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harperreed/mood/internal/journal"
	"github.com/harperreed/mood/internal/models"
	"github.com/harperreed/mood/internal/stats"
	"github.com/spf13/cobra"
)

var (
	listLimit int
	listSince string
	listDays  int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List mood history",
	Long: `List recorded moods, most recent first.

OUTPUT FORMAT:

  A header with the entry count, average mood, and most frequent mood,
  then one line per day: DATE  SYMBOL MOOD  (RANK)

EXAMPLES:

  mood list                      # Last 30 days recorded
  mood list -n 7                 # Last 7 entries
  mood list --since 2024-01-01   # Everything from 2024 onward
  mood list --days 7             # Today and the six days before
  mood list -n 0                 # Everything`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		since, err := parseDateFlag("since", listSince)
		if err != nil {
			return err
		}
		if listDays > 0 {
			if since != nil {
				return fmt.Errorf("--days and --since cannot be combined")
			}
			from := models.Today().AddDays(1 - listDays)
			since = &from
		}

		records, err := repo.Load()
		if err != nil {
			return fmt.Errorf("failed to list moods: %w", err)
		}
		if since != nil {
			records = stats.Since(records, *since)
		}

		out := cmd.OutOrStdout()
		view := journal.BuildView(records)
		printViewHeader(out, view)
		if view.Count == 0 {
			fmt.Fprintln(out, "No moods recorded.")
			return nil
		}

		rows := view.Rows
		if listLimit > 0 && len(rows) > listLimit {
			rows = rows[:listLimit]
		}

		faint := color.New(color.Faint)
		for _, r := range rows {
			fmt.Fprintf(out, "%s  %s  %s\n",
				faint.Sprint(r.FormattedDate),
				moodLabel(r.Mood),
				faint.Sprintf("(%d)", r.Rank))
		}
		if len(rows) < view.Count {
			fmt.Fprintln(out, faint.Sprintf("… %d more", view.Count-len(rows)))
		}
		return nil
	},
}

// printViewHeader prints the entry count and the average and most frequent symbols.
func printViewHeader(out io.Writer, view *journal.View) {
	bold := color.New(color.Bold)
	fmt.Fprintf(out, "%s %d  %s %s  %s %s\n\n",
		bold.Sprint("Entries:"), view.Count,
		bold.Sprint("Average:"), view.AverageSymbol,
		bold.Sprint("Most frequent:"), view.MostFrequentSymbol)
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 30, "max number of entries (0 for all)")
	listCmd.Flags().StringVar(&listSince, "since", "", "only include days since date (YYYY-MM-DD)")
	listCmd.Flags().IntVar(&listDays, "days", 0, "only include the last N days, today included")
	rootCmd.AddCommand(listCmd)
}

// ABOUTME: CLI command for recording a day's mood.
// ABOUTME: Replaces any existing entry for the same day.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/mood/internal/journal"
	"github.com/harperreed/mood/internal/models"
	"github.com/spf13/cobra"
)

var addDate string

var addCmd = &cobra.Command{
	Use:     "add <mood>",
	Aliases: []string{"a", "save"},
	Short:   "Record a mood",
	Long: `Record the mood for a day. Each day holds one mood; adding again replaces it.

The mood may be given as its key, its rank, or an English alias:

  çok-mutlu  5  very-happy
  mutlu      4  happy
  normal     3  neutral
  üzgün      2  sad
  çok-üzgün  1  very-sad

Examples:
  mood add mutlu
  mood add 2 --date 2024-01-01
  mood add very-happy`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := journal.NewSession(repo)

		if len(args) == 1 {
			mood, err := models.LookupMoodKind(args[0])
			if err != nil {
				return fmt.Errorf("%w\nValid moods: çok-mutlu, mutlu, normal, üzgün, çok-üzgün (or 1-5)", err)
			}
			session.SelectMood(mood)
		}

		if cmd.Flags().Changed("date") {
			if addDate == "" {
				session.SelectDate(models.Date{})
			} else {
				d, err := models.ParseDate(addDate)
				if err != nil {
					return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", addDate)
				}
				session.SelectDate(d)
			}
		}

		mood, date := session.Selection()
		records, err := session.Save()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.GreenString("✓ Saved %s", date.Display()))
		fmt.Fprintf(out, "  %s  %s\n", moodLabel(mood), color.New(color.Faint).Sprintf("(%d entries)", len(records)))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "day to record (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(addCmd)
}

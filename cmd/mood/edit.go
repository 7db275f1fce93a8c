// ABOUTME: CLI command for changing an existing day's mood.
// ABOUTME: Prompts for the new mood when it is not given on the command line.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/mood/internal/journal"
	"github.com/harperreed/mood/internal/models"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:     "edit <date> [mood]",
	Aliases: []string{"e"},
	Short:   "Change a recorded mood",
	Long: `Change the mood recorded for a day.

Without a mood argument the current entry is shown and a new mood is read
from standard input.

EXAMPLES:

  mood edit 2024-01-01 normal
  mood edit 2024-01-01          # prompts for the new mood`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := models.ParseDate(args[0])
		if err != nil {
			return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", args[0])
		}

		out := cmd.OutOrStdout()
		session := journal.NewSession(repo)
		found, err := session.Edit(date)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintf(out, "No mood recorded for %s.\n", date.Display())
			return nil
		}

		var input string
		if len(args) == 2 {
			input = args[1]
		} else {
			current, _ := session.Selection()
			fmt.Fprintf(out, "%s  %s\n", date.Display(), moodLabel(current))
			input, err = prompt(cmd, "New mood [1-5 or key]: ")
			if err != nil {
				return err
			}
		}

		mood, err := models.LookupMoodKind(input)
		if err != nil {
			return err
		}
		session.SelectMood(mood)
		if _, err := session.Save(); err != nil {
			return err
		}

		fmt.Fprintln(out, color.GreenString("✓ Updated %s", date.Display()))
		fmt.Fprintf(out, "  %s\n", moodLabel(mood))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

// ABOUTME: CLI command for deleting a day's mood.
// ABOUTME: Asks for confirmation unless --yes is given.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/mood/internal/journal"
	"github.com/harperreed/mood/internal/models"
	"github.com/harperreed/mood/internal/storage"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a recorded mood",
	Long: `Delete the mood recorded for a day.

EXAMPLES:

  mood delete 2024-01-01
  mood rm 2024-01-01 --yes      # skip the confirmation prompt

CAUTION:

  This permanently deletes the entry. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := models.ParseDate(args[0])
		if err != nil {
			return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", args[0])
		}

		out := cmd.OutOrStdout()
		rec, err := repo.Get(date)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(out, "No mood recorded for %s.\n", date.Display())
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get mood: %w", err)
		}

		var confirmer journal.Confirmer = journal.AlwaysConfirm
		if !deleteYes {
			confirmer = journal.ConfirmFunc(func(d models.Date) bool {
				return confirm(cmd, fmt.Sprintf("Delete %s for %s?", moodLabel(rec.Mood), d.Display()))
			})
		}

		removed, err := journal.NewSession(repo).Delete(date, confirmer)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}

		fmt.Fprintln(out, color.YellowString("✗ Deleted %s", date.Display()))
		fmt.Fprintf(out, "  %s\n", moodLabel(rec.Mood))
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

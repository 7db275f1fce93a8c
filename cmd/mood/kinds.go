// ABOUTME: CLI command listing the available moods.
// ABOUTME: Shows rank, symbol, key, colour, and accepted aliases.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/mood/internal/models"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:         "kinds",
	Aliases:     []string{"moods"},
	Short:       "List available moods",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoStorage: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)
		for _, k := range models.AllMoodKinds {
			fmt.Fprintf(out, "%d  %s  %s  %s\n",
				k.Rank(),
				moodLabel(k),
				faint.Sprint(k.Color()),
				faint.Sprint(strings.Join(k.Aliases(), ", ")))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

// ABOUTME: CLI command for copying the journal between storage backends.
// ABOUTME: Merges source entries into the destination by day.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/mood/internal/config"
	"github.com/harperreed/mood/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	migrateFrom    string
	migrateTo      string
	migrateFromDir string
	migrateToDir   string
	migrateDryRun  bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy the journal between storage backends",
	Long: `Copy every entry from one storage backend to another.

Entries are merged by day: a day already present in the destination takes
the source's mood. The source is left unchanged.

USAGE:

  mood migrate --from charm --to sqlite --dry-run   # Preview
  mood migrate --from charm --to sqlite             # Copy Charm KV into SQLite
  mood migrate --from sqlite --to sqlite --to-dir ~/backup/mood`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoStorage: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if sameStore(migrateFrom, migrateFromDir, migrateTo, migrateToDir) {
			return fmt.Errorf("source and destination are the same: %s", migrateFrom)
		}

		out := cmd.OutOrStdout()
		src, err := openRepo(migrateFrom, migrateFromDir)
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer src.Close()

		if migrateDryRun {
			records, err := src.Load()
			if err != nil {
				return fmt.Errorf("failed to read source: %w", err)
			}
			fmt.Fprintln(out, color.YellowString("Dry run mode - no changes will be made"))
			fmt.Fprintf(out, "  Would copy %d entries from %s to %s\n", len(records), migrateFrom, migrateTo)
			return nil
		}

		if migrateTo == config.BackendSQLite {
			dir := destinationDir()
			if nonEmpty, err := storage.IsDirNonEmpty(dir); err == nil && nonEmpty {
				fmt.Fprintf(out, "Note: %s already has data; entries for the same day will be replaced.\n", dir)
			}
		}

		dst, err := openRepo(migrateTo, migrateToDir)
		if err != nil {
			return fmt.Errorf("failed to open destination: %w", err)
		}
		defer dst.Close()

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("migrated journal",
			zap.String("from", migrateFrom),
			zap.String("to", migrateTo),
			zap.Int("source", summary.Source))

		fmt.Fprintln(out, color.GreenString("✓ Migrated %s → %s", migrateFrom, migrateTo))
		fmt.Fprintf(out, "  Source entries: %d\n", summary.Source)
		fmt.Fprintf(out, "  Added: %d\n", summary.Added)
		fmt.Fprintf(out, "  Updated: %d\n", summary.Updated)
		return nil
	},
}

// sameStore reports whether both ends resolve to one store. Only sqlite
// places its data under the directory flags; charm shares a single client.
func sameStore(from, fromDir, to, toDir string) bool {
	if from != to {
		return false
	}
	return from != config.BackendSQLite || fromDir == toDir
}

// openRepo opens a store for backend, overriding the data directory when dir is set.
func openRepo(backend, dir string) (storage.Repository, error) {
	c := *cfg
	c.Backend = backend
	if dir != "" {
		c.DataDir = dir
	}
	return c.OpenStorage(logger)
}

func destinationDir() string {
	c := *cfg
	if migrateToDir != "" {
		c.DataDir = migrateToDir
	}
	return c.GetDataDir()
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", config.BackendCharm, "source backend: sqlite, charm, or memory")
	migrateCmd.Flags().StringVar(&migrateTo, "to", config.BackendSQLite, "destination backend: sqlite, charm, or memory")
	migrateCmd.Flags().StringVar(&migrateFromDir, "from-dir", "", "source data directory (sqlite only)")
	migrateCmd.Flags().StringVar(&migrateToDir, "to-dir", "", "destination data directory (sqlite only)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}

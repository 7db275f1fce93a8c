// ABOUTME: Root Cobra command for the mood CLI.
// ABOUTME: Loads config, builds the logger, and owns the storage lifecycle.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/mood/internal/config"
	"github.com/harperreed/mood/internal/logging"
	"github.com/harperreed/mood/internal/models"
	"github.com/harperreed/mood/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// annotationNoStorage marks commands that manage their own storage.
const annotationNoStorage = "mood/no-storage"

var (
	backendFlag string
	dataDirFlag string
	verbose     bool

	cfg      *config.Config
	repo     storage.Repository
	logger   = zap.NewNop()
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "mood",
	Short: "Daily mood journal",
	Long: `Mood is a CLI tool for keeping a daily mood journal.

Each day gets one of five moods:

  5  😄 çok-mutlu   (very happy)
  4  🙂 mutlu       (happy)
  3  😐 normal      (neutral)
  2  😔 üzgün       (sad)
  1  😢 çok-üzgün   (very sad)

QUICK START:

  $ mood add mutlu                     # Record today's mood
  $ mood add 2 --date 2024-01-01       # Record a past day by rank
  $ mood list                          # History, most recent first
  $ mood stats                         # Count, average, most frequent
  $ mood edit 2024-01-01 normal        # Change a day's mood
  $ mood delete 2024-01-01             # Remove a day

STORAGE:

  sqlite (default)  ~/.local/share/mood/mood.db
  charm             Charm KV, E2E encrypted and synced across devices
  memory            Nothing persisted (testing)

  Select with --backend or "backend" in ~/.config/mood/config.json.

MCP INTEGRATION:

  Run 'mood mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "mood": { "command": "mood", "args": ["mcp"] }
    }
  }`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if backendFlag != "" {
			cfg.Backend = backendFlag
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}

		opts := cfg.LoggingOptions()
		if verbose {
			opts.Level = "debug"
		}
		opts.Stderr = cmd.ErrOrStderr()
		logger, closeLog = logging.New(opts)
		logger.Debug("starting command",
			zap.String("command", cmd.CommandPath()),
			zap.String("backend", cfg.GetBackend()))

		if !needsStorage(cmd) {
			return nil
		}

		repo, err = cfg.OpenStorage(logger)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
}

// Execute runs the root command and releases storage and logging afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if closeErr := shutdown(); err == nil {
		err = closeErr
	}
	return err
}

func shutdown() error {
	var err error
	if repo != nil {
		err = repo.Close()
		repo = nil
	}
	_ = logger.Sync()
	if closeLog != nil {
		_ = closeLog()
		closeLog = nil
	}
	logger = zap.NewNop()
	return err
}

func needsStorage(cmd *cobra.Command) bool {
	if cmd.Name() == "help" {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoStorage] == "true" {
			return false
		}
	}
	return true
}

// moodLabel renders "symbol key" in the mood's own colour.
func moodLabel(k models.MoodKind) string {
	return color.RGB(k.RGB()).Sprintf("%s %s", k.Symbol(), k.Key())
}

// prompt writes question and returns the trimmed answer line.
func prompt(cmd *cobra.Command, question string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), question)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question that defaults to no.
func confirm(cmd *cobra.Command, question string) bool {
	answer, err := prompt(cmd, question+" [y/N] ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(name, value string) (*models.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := models.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s date: %s (use YYYY-MM-DD)", name, value)
	}
	return &d, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: sqlite, charm, or memory")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default ~/.local/share/mood)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
}

// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/mood/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to read and update your mood journal
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "mood": {
        "command": "mood",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  save_mood        Record the mood for a day
  get_mood         Get the mood for a day
  delete_mood      Delete a day (requires confirm: true)
  list_moods       List entries, most recent first
  mood_stats       Count, average, most frequent
  list_mood_kinds  Available moods

AVAILABLE RESOURCES:

  mood://summary   Journal statistics
  mood://recent    The 14 most recent entries`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

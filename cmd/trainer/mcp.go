// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio MCP server exposing workouts, progress, and recommendations.
package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "trainer": {
        "command": "trainer",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_workouts        List saved workouts, newest first
  get_workout          Get a workout by ID or prefix
  delete_workout       Delete a workout
  list_exercises       List the exercise catalog
  add_exercise         Add a custom exercise
  get_progress         Personal bests per exercise
  get_stats            Totals for a week, month, or all time
  current_workout      The workout in progress and its timer
  get_recommendations  Cached or refreshed AI recommendations

AVAILABLE RESOURCES:

  trainer://workouts/recent   Recent completed workouts
  trainer://progress          Dashboard and progress records
  trainer://current           The workout in progress`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, configuredTrainer())
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

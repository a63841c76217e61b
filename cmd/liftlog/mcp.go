// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the shared store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CiaoGab/LIFTLOG/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout, so logs go to stderr or the
configured log file.

CONFIGURATION:

  {
    "mcpServers": {
      "liftlog": {
        "command": "liftlog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  start_workout         Start from a template or empty
  add_exercise          Add an exercise to the active workout
  log_set               Log a set
  finish_workout        Finish and save the active workout
  cancel_workout        Discard the active workout
  get_active_workout    Show the active workout
  list_history          List completed workouts
  personal_records      Heaviest set per exercise
  summary_stats         Recent workouts, sets, and volume
  weekly_volume         Volume per week
  exercise_performance  Top set per day for one exercise
  log_bodyweight        Record bodyweight
  list_templates        List templates

AVAILABLE RESOURCES:

  liftlog://active      Active workout
  liftlog://records     Personal records
  liftlog://summary     Training summary`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(st, log)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

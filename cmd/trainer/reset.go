// ABOUTME: CLI command that deletes all trainer data from the active backend.
// ABOUTME: Built-in exercises return on next use; everything else is gone.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all trainer data",
	Long: `Delete all workouts, custom exercises, settings, the profile, cached
recommendations, and the workout in progress from the active backend.

Export first if you may want the data back:
  trainer export json -o backup.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if !resetYes && !confirm(cmd.InOrStdin(), out, fmt.Sprintf("Delete ALL trainer data from the %s backend?", cfg.GetBackend())) {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}
		if err := repo.ClearAll(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		success(out, "All trainer data deleted")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}

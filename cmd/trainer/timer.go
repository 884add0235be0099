// ABOUTME: CLI commands for the workout clock.
// ABOUTME: Start or resume, pause, and show the elapsed time, optionally live.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/models"
	"github.com/harperreed/trainer/internal/session"
)

var timerWatch bool

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Control the workout clock",
}

var timerStartCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"resume"},
	Short:   "Start or resume the clock",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := ctl.Resume(now); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Timer running at %s", models.FormatClock(ctl.Elapsed(now)))
		return nil
	},
}

var timerPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the clock",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := ctl.Pause(now); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Timer paused at %s", models.FormatClock(ctl.Elapsed(now)))
		return nil
	},
}

var timerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the elapsed time",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		if _, err := ctl.Current(); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		state := "paused"
		if ctl.Running() {
			state = "running"
		}

		if !timerWatch || !ctl.Running() {
			fmt.Fprintf(out, "%s (%s)\n", models.FormatClock(ctl.Elapsed(time.Now())), state)
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = ctl.Watch(ctx, session.DefaultWatchInterval, func(elapsed int) {
			fmt.Fprintf(out, "\r%s", models.FormatClock(elapsed))
		})
		fmt.Fprintln(out)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	timerStatusCmd.Flags().BoolVar(&timerWatch, "watch", false, "keep updating until interrupted")

	timerCmd.AddCommand(timerStartCmd, timerPauseCmd, timerStatusCmd)
	rootCmd.AddCommand(timerCmd)
}

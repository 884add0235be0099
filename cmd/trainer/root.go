// ABOUTME: Root Cobra command for the trainer CLI.
// ABOUTME: Loads config, sets up logging, and opens the repository via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/ai"
	"github.com/harperreed/trainer/internal/config"
	"github.com/harperreed/trainer/internal/storage"
)

// skipStore marks commands that manage storage themselves.
const skipStore = "skip-store"

var (
	cfg  *config.Config
	repo *storage.Repository

	flagLogLevel string
	flagBackend  string

	// newGenerator builds the AI backend from config.
	newGenerator = func(c *config.Config) ai.Generator {
		return ai.NewClient(c.ClientConfig())
	}
)

var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Workout tracker with an AI personal trainer",
	Long: `Trainer logs strength and cardio workouts, tracks personal bests,
and asks a generative AI model for training advice.

QUICK START:

  $ trainer workout start "Push Day"          # Begin a session
  $ trainer workout add bench-press -s 3 -r 8 -w 60
  $ trainer timer start                       # Start the workout clock
  $ trainer set done-all                      # Tick off every set
  $ trainer workout finish                    # Save it to history

PROGRESS:

  $ trainer progress                          # Personal bests per exercise
  $ trainer stats --period week               # Totals for the last 7 days
  $ trainer dashboard                         # Overview

AI COACHING (needs GEMINI_API_KEY):

  $ trainer recommend --refresh               # Next-session advice
  $ trainer workout plan --minutes 30         # Generate today's workout
  $ trainer chat "How do I fix my squat depth?"

STORAGE:

  Data lives in a local badger database under ~/.local/share/trainer.
  Set "backend" in ~/.config/trainer/config.json to "sqlite" for a single
  file, or "charm" to sync across devices with Charm Cloud.

MCP AND HTTP:

  trainer mcp      Model Context Protocol server on stdio
  trainer serve    JSON API on 127.0.0.1:8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagBackend != "" {
			c.Backend = flagBackend
		}
		if flagLogLevel != "" {
			c.LogLevel = flagLogLevel
		}
		if err := c.Validate(); err != nil {
			return err
		}
		setupLogging(c.GetLogLevel())
		cfg = c

		if cmd.Annotations[skipStore] == "true" {
			return nil
		}
		return openRepo()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeRepo()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend override (badger, sqlite, charm)")
}

// Execute runs the root command and always releases the repository.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeRepo(); err == nil {
		err = cerr
	}
	return err
}

func setupLogging(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.DurationFieldInteger = false
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

func openRepo() error {
	store, err := cfg.OpenStore()
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
	}
	r, err := storage.New(store)
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("failed to prepare storage: %w", err)
	}
	log.Debug().Str("backend", cfg.GetBackend()).Str("path", cfg.StorePath()).Msg("storage opened")
	repo = r
	return nil
}

func closeRepo() error {
	if repo == nil {
		return nil
	}
	err := repo.Close()
	repo = nil
	return err
}

func newTrainer() *ai.Trainer {
	return ai.NewTrainer(newGenerator(cfg))
}

// configuredTrainer is newTrainer, or nil when no API key is set so
// long-running servers only serve cached recommendations.
func configuredTrainer() *ai.Trainer {
	if cfg.AI.APIKey == "" {
		return nil
	}
	return newTrainer()
}

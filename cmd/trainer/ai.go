// ABOUTME: CLI commands for the AI personal trainer.
// ABOUTME: Recommendations, exercise suggestions, and chat with fallbacks on failure.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/ai"
	"github.com/harperreed/trainer/internal/models"
)

var (
	recommendRefresh bool
	suggestSave      bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show AI training recommendations",
	Long: `Show recommendations for your next sessions based on your history.

Recommendations are cached until you pass --refresh. When the AI service
is unreachable a set of general recommendations is shown instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := newTrainer().CachedOrRefresh(cmd.Context(), repo, recommendRefresh)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if set.Fallback {
			warn(out, "AI service unavailable; showing general recommendations")
		}
		if len(set.Items) == 0 {
			fmt.Fprintln(out, "No recommendations right now. Try again with --refresh.")
			return nil
		}
		for _, r := range set.Items {
			printRecommendation(out, r)
		}
		faint.Fprintf(out, "\nRefreshed %s\n", set.RefreshedAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask the AI for new exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := repo.ListExercises()
		if err != nil {
			return err
		}
		profile, err := repo.Profile()
		if err != nil {
			return err
		}

		res := newTrainer().SuggestExercises(cmd.Context(), exercises, profile.Goals, string(profile.FitnessLevel))
		out := cmd.OutOrStdout()
		if res.Fallback {
			warn(out, "AI suggestions unavailable: %v", res.Err)
			return nil
		}
		if len(res.Value) == 0 {
			fmt.Fprintln(out, "No new exercises suggested.")
			return nil
		}
		for _, e := range res.Value {
			bold.Fprintf(out, "%s", e.Name)
			faint.Fprintf(out, " (%s, %s)\n", e.ID, e.Category)
			if len(e.MuscleGroups) > 0 {
				fmt.Fprintf(out, "  Muscles: %s\n", strings.Join(e.MuscleGroups, ", "))
			}
			if e.Instructions != "" {
				fmt.Fprintf(out, "  %s\n", e.Instructions)
			}
		}
		if suggestSave {
			n, err := repo.EnsureExercises(res.Value)
			if err != nil {
				return err
			}
			success(out, "Added %d exercises to the catalog", n)
		}
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to the AI trainer",
	Long: `Ask the AI trainer a question. Without a message, start an interactive
chat; type 'exit' or press Ctrl-D to leave.

Examples:
  trainer chat "How many rest days should I take?"
  trainer chat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := repo.ListCompletedWorkouts()
		if err != nil {
			return err
		}
		records, err := repo.Progress()
		if err != nil {
			return err
		}
		t := newTrainer()
		out := cmd.OutOrStdout()

		if len(args) > 0 {
			res := t.Chat(cmd.Context(), strings.Join(args, " "), nil, workouts, records)
			fmt.Fprintln(out, res.Value)
			return nil
		}
		return chatLoop(cmd, t, workouts, records, cmd.InOrStdin(), out)
	},
}

func chatLoop(cmd *cobra.Command, t *ai.Trainer, workouts []models.Workout, records []models.Progress, in io.Reader, out io.Writer) error {
	cyan.Fprintln(out, ai.Greeting)
	history := []ai.ChatMessage{{Role: "assistant", Content: ai.Greeting}}

	scanner := bufio.NewScanner(in)
	for {
		bold.Fprint(out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		msg := strings.TrimSpace(scanner.Text())
		if msg == "" {
			continue
		}
		if msg == "exit" || msg == "quit" {
			return nil
		}

		res := t.Chat(cmd.Context(), msg, history, workouts, records)
		cyan.Fprintln(out, res.Value)
		history = append(history,
			ai.ChatMessage{Role: "user", Content: msg},
			ai.ChatMessage{Role: "assistant", Content: res.Value})
	}
}

func printRecommendation(out io.Writer, r models.Recommendation) {
	marker := faint.Sprint("•")
	switch r.Priority {
	case models.PriorityHigh:
		marker = yellow.Sprint("!")
	case models.PriorityMedium:
		marker = cyan.Sprint("•")
	}
	fmt.Fprintf(out, "%s ", marker)
	bold.Fprintf(out, "%s", r.Title)
	faint.Fprintf(out, " [%s, %.0f%%]\n", r.Type, r.Confidence*100)
	if r.ExerciseName != "" {
		fmt.Fprintf(out, "  Exercise: %s\n", r.ExerciseName)
	}
	if r.Description != "" {
		fmt.Fprintf(out, "  %s\n", r.Description)
	}
	if r.Reasoning != "" {
		faint.Fprintf(out, "  Why: %s\n", r.Reasoning)
	}
}

func init() {
	recommendCmd.Flags().BoolVar(&recommendRefresh, "refresh", false, "ask the AI for new recommendations")
	suggestCmd.Flags().BoolVar(&suggestSave, "save", false, "add the suggestions to the exercise catalog")

	rootCmd.AddCommand(recommendCmd, suggestCmd, chatCmd)
}

// ABOUTME: CLI commands for personal bests, period totals, and the dashboard.
// ABOUTME: All figures are derived from completed workouts at read time.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/models"
	"github.com/harperreed/trainer/internal/progress"
)

var (
	progressCategory string
	progressExercise string
	statsPeriod      string
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show personal bests per exercise",
	Long: `Show the best and most recent performance for every exercise you
have completed, with the improvement of the latest session over the best.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if progressCategory != "" && !models.IsValidCategory(progressCategory) {
			return invalidCategory(progressCategory)
		}
		records, err := repo.Progress()
		if err != nil {
			return fmt.Errorf("failed to compute progress: %w", err)
		}
		if progressCategory != "" {
			records = progress.FilterByCategory(records, models.Category(progressCategory))
		}
		if progressExercise != "" {
			p, ok := progress.Find(records, progressExercise)
			if !ok {
				return fmt.Errorf("no progress for exercise %s", progressExercise)
			}
			records = []models.Progress{p}
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No completed sets yet. Finish a workout to start tracking progress.")
			return nil
		}
		unit := preferredUnit()
		for _, p := range records {
			bold.Fprintf(out, "%s", p.ExerciseName)
			faint.Fprintf(out, " (%s)\n", p.Category)
			fmt.Fprintf(out, "  Best:    %s  %s\n",
				formatPerformance(p.PreviousBest.Performance, p.Category, unit),
				faint.Sprint(p.PreviousBest.Date.Local().Format("2006-01-02")))
			fmt.Fprintf(out, "  Latest:  %s\n", formatPerformance(p.CurrentSession, p.Category, unit))
			if p.Improvement != nil {
				green.Fprintf(out, "  ↑ %.1f%% %s\n", p.Improvement.Percentage, p.Improvement.Type)
			}
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show workout totals for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := progress.ParsePeriod(statsPeriod)
		if err != nil {
			return err
		}
		s, err := repo.Stats(period, time.Now())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		bold.Fprintf(out, "Stats (%s)\n", s.Period)
		fmt.Fprintf(out, "  Workouts:          %d\n", s.TotalWorkouts)
		fmt.Fprintf(out, "  Completed sets:    %d\n", s.TotalSets)
		fmt.Fprintf(out, "  Total time:        %d min\n", s.TotalDuration)
		fmt.Fprintf(out, "  Average duration:  %d min\n", s.AverageDuration)
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show a training overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := repo.Dashboard(time.Now())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		bold.Fprintln(out, "Dashboard")
		fmt.Fprintf(out, "  Workouts:          %d\n", d.TotalWorkouts)
		goal := fmt.Sprintf("%d / %d", d.ThisWeekWorkouts, d.WeeklyGoal)
		if d.ThisWeekWorkouts >= d.WeeklyGoal {
			goal = green.Sprint(goal + " ✓")
		}
		fmt.Fprintf(out, "  This week:         %s\n", goal)
		fmt.Fprintf(out, "  Exercises:         %d\n", d.TotalExercises)
		fmt.Fprintf(out, "  Average duration:  %d min\n", d.AverageDuration)

		if len(d.Recent) > 0 {
			fmt.Fprintln(out)
			bold.Fprintln(out, "Recent")
			for _, w := range d.Recent {
				fmt.Fprintf(out, "  %s %s %s\n",
					faint.Sprint(shortID(w.ID)),
					faint.Sprint(w.Date.Local().Format("2006-01-02")),
					w.Name)
			}
		}
		return nil
	},
}

func formatPerformance(p models.Performance, category models.Category, unit models.WeightUnit) string {
	if category == models.CategoryCardio {
		s := ""
		if p.Distance != nil {
			s = fmt.Sprintf("%g km", *p.Distance)
		}
		if p.Duration != nil {
			if s != "" {
				s += "  "
			}
			s += models.FormatClock(*p.Duration)
		}
		if s == "" {
			return "-"
		}
		return s
	}
	return fmt.Sprintf("%d × %s", p.Reps, showWeight(p.Weight, unit))
}

func init() {
	progressCmd.Flags().StringVarP(&progressCategory, "category", "c", "", "filter by category")
	progressCmd.Flags().StringVarP(&progressExercise, "exercise", "e", "", "show one exercise by ID")
	statsCmd.Flags().StringVarP(&statsPeriod, "period", "p", "all", "week, month, or all")

	rootCmd.AddCommand(progressCmd, statsCmd, dashboardCmd)
}

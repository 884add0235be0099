// ABOUTME: CLI commands for the current workout session and workout history.
// ABOUTME: Supports start, from, plan, show, add, finish, clear, list, get, and delete.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/ai"
	"github.com/harperreed/trainer/internal/models"
	"github.com/harperreed/trainer/internal/progress"
	"github.com/harperreed/trainer/internal/session"
)

var (
	addSets     int
	addReps     int
	addWeight   float64
	addDuration time.Duration
	addDistance float64
	addRename   string

	listLimit int

	planType      string
	planMinutes   int
	planGoals     []string
	planEquipment []string
	planDryRun    bool

	clearYes bool
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Run the current workout and browse history",
	Long: `Run one workout session at a time and browse saved workouts.

WORKFLOW:

  1. Start a session:      trainer workout start "Leg Day"
  2. Add exercises:        trainer workout add squat -s 5 -r 5 -w 100
  3. Track sets:           trainer set toggle <set-id>
  4. Finish and save:      trainer workout finish

Repeat a past session with 'trainer workout from <id>' or let the AI
trainer build one with 'trainer workout plan'.`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start [name]",
	Short: "Start a new empty workout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		w, err := ctl.Start(name)
		if err != nil {
			return inProgressHint(err)
		}
		success(cmd.OutOrStdout(), "Started %s", w.Name)
		faint.Fprintln(cmd.OutOrStdout(), "  Add exercises with 'trainer workout add <exercise-id>'.")
		return nil
	},
}

var workoutFromCmd = &cobra.Command{
	Use:   "from <id>",
	Short: "Start a workout copied from a saved one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		saved, err := repo.GetWorkout(args[0])
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		w, err := ctl.StartFromTemplate(saved)
		if err != nil {
			return inProgressHint(err)
		}
		success(cmd.OutOrStdout(), "Started %s with %d sets", w.Name, len(w.Sets))
		return nil
	},
}

var workoutPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate today's workout with the AI trainer",
	Long: `Generate a workout plan from your profile and make it the current workout.

Flags override the profile for this plan only. If the AI service is
unavailable a simple bodyweight sample workout is used instead.

Examples:
  trainer workout plan
  trainer workout plan --type upper-body --minutes 30
  trainer workout plan --equipment dumbbells --equipment bench --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		profile, err := repo.Profile()
		if err != nil {
			return err
		}

		req := ai.PlanRequest{
			FitnessLevel:     string(profile.FitnessLevel),
			WorkoutType:      planType,
			Goals:            profile.Goals,
			AvailableMinutes: profile.Preferences.WorkoutDuration,
			Equipment:        profile.Preferences.Equipment,
		}
		if planMinutes > 0 {
			req.AvailableMinutes = planMinutes
		}
		if len(planGoals) > 0 {
			req.Goals = planGoals
		}
		if len(planEquipment) > 0 {
			req.Equipment = planEquipment
		}

		res := newTrainer().WorkoutPlan(cmd.Context(), req)
		if res.Fallback {
			warn(out, "AI plan unavailable (%v); using the sample workout", res.Err)
		}
		if planDryRun {
			printWorkout(out, res.Value, preferredUnit())
			return nil
		}

		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		w, err := ctl.ApplyPlan(res.Value)
		if err != nil {
			return inProgressHint(err)
		}
		if !res.Fallback {
			if n, err := repo.EnsureExercises(w.Exercises); err != nil {
				warn(out, "Could not add new exercises to the catalog: %v", err)
			} else if n > 0 {
				faint.Fprintf(out, "  Added %d new exercises to the catalog\n", n)
			}
		}
		success(out, "Started %s", w.Name)
		printWorkout(out, w, preferredUnit())
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		w, err := ctl.Current()
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No workout in progress.")
			return nil
		}
		printWorkout(cmd.OutOrStdout(), w, preferredUnit())
		fmt.Fprintln(cmd.OutOrStdout())
		state := "paused"
		if ctl.Running() {
			state = "running"
		}
		faint.Fprintf(cmd.OutOrStdout(), "Timer: %s (%s)\n", models.FormatClock(ctl.Elapsed(time.Now())), state)
		return nil
	},
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <exercise-id>",
	Short: "Add an exercise to the current workout",
	Long: `Add an exercise to the current workout.

Strength exercises get --sets sets of --reps reps at --weight (in your
preferred unit; omit for bodyweight). Cardio exercises get a single set
with an optional --duration and --distance (km).

Examples:
  trainer workout add bench-press -s 3 -r 8 -w 60
  trainer workout add pull-up -s 4 -r 6
  trainer workout add running --duration 30m --distance 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := repo.GetExercise(args[0])
		if err != nil {
			return fmt.Errorf("%w (see 'trainer exercise list')", err)
		}
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}

		unit := preferredUnit()
		opts := session.AddOptions{
			Name:            addRename,
			Sets:            addSets,
			Reps:            addReps,
			DurationSeconds: int(addDuration / time.Second),
			Distance:        addDistance,
		}
		if cmd.Flags().Changed("weight") {
			kg := toKG(addWeight, unit)
			opts.Weight = &kg
		}

		added, err := ctl.AddExercise(*ex, opts)
		if err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Added %s (%d sets)", ex.Name, len(added))
		for _, s := range added {
			fmt.Fprintln(cmd.OutOrStdout(), formatSet(s, unit))
		}
		return nil
	},
}

var workoutFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish and save the current workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		w, err := ctl.Finish(time.Now())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		success(out, "Saved %s", w.Name)
		fmt.Fprintf(out, "  ID: %s\n", w.ShortID())
		fmt.Fprintf(out, "  Sets: %d\n", len(w.Sets))
		if w.Duration != nil {
			fmt.Fprintf(out, "  Duration: %d min\n", *w.Duration)
		}
		return nil
	},
}

var workoutClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the current workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		w, err := ctl.Current()
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No workout in progress.")
			return nil
		}
		if !clearYes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Discard %s?", w.Name)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}
		if err := ctl.Clear(); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Discarded %s", w.Name)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := repo.ListWorkouts()
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No workouts found.")
			return nil
		}

		limit := listLimit
		if limit <= 0 || limit > len(workouts) {
			limit = len(workouts)
		}
		for _, w := range progress.Recent(workouts, limit) {
			duration := ""
			if w.Duration != nil {
				duration = fmt.Sprintf("%d min", *w.Duration)
			}
			status := ""
			if !w.Completed {
				status = yellow.Sprint(" (incomplete)")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %3d sets %s%s\n",
				faint.Sprint(shortID(w.ID)),
				faint.Sprint(w.Date.Local().Format("2006-01-02 15:04")),
				padRight(truncate(w.Name, 24), 24),
				len(w.Sets),
				duration,
				status)
		}
		return nil
	},
}

var workoutGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a saved workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := repo.GetWorkout(args[0])
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}
		printWorkout(cmd.OutOrStdout(), w, preferredUnit())
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteWorkout(args[0]); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		success(cmd.OutOrStdout(), "Deleted workout %s", args[0])
		return nil
	},
}

func inProgressHint(err error) error {
	if errors.Is(err, session.ErrWorkoutInProgress) {
		return fmt.Errorf("%w: finish it with 'trainer workout finish' or discard it with 'trainer workout clear'", err)
	}
	return err
}

func init() {
	workoutAddCmd.Flags().IntVarP(&addSets, "sets", "s", 3, "number of sets (strength)")
	workoutAddCmd.Flags().IntVarP(&addReps, "reps", "r", 10, "reps per set (strength)")
	workoutAddCmd.Flags().Float64VarP(&addWeight, "weight", "w", 0, "weight per set in your preferred unit")
	workoutAddCmd.Flags().DurationVar(&addDuration, "duration", 0, "cardio duration, e.g. 30m")
	workoutAddCmd.Flags().Float64Var(&addDistance, "distance", 0, "cardio distance in km")
	workoutAddCmd.Flags().StringVar(&addRename, "name", "", "rename the workout")

	workoutListCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")

	workoutPlanCmd.Flags().StringVar(&planType, "type", "", "workout focus, e.g. upper-body or cardio")
	workoutPlanCmd.Flags().IntVar(&planMinutes, "minutes", 0, "available time in minutes")
	workoutPlanCmd.Flags().StringSliceVar(&planGoals, "goal", nil, "training goal (repeatable)")
	workoutPlanCmd.Flags().StringSliceVar(&planEquipment, "equipment", nil, "available equipment (repeatable)")
	workoutPlanCmd.Flags().BoolVar(&planDryRun, "dry-run", false, "print the plan without starting it")

	workoutClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation")

	workoutCmd.AddCommand(workoutStartCmd, workoutFromCmd, workoutPlanCmd, workoutShowCmd, workoutAddCmd,
		workoutFinishCmd, workoutClearCmd, workoutListCmd, workoutGetCmd, workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}

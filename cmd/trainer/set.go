// ABOUTME: CLI commands for individual sets in the current workout.
// ABOUTME: Toggle, complete all, edit, remove, and add one more set.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/models"
	"github.com/harperreed/trainer/internal/session"
)

var (
	editReps     int
	editWeight   float64
	editDuration time.Duration
	editDistance float64
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Track sets in the current workout",
	Long: `Track sets in the current workout.

Set IDs are shown by 'trainer workout show'. Any unique prefix works.`,
}

var setToggleCmd = &cobra.Command{
	Use:   "toggle <set-id>",
	Short: "Mark a set done or not done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		done, err := ctl.ToggleSet(args[0])
		if err != nil {
			return err
		}
		if done {
			success(cmd.OutOrStdout(), "Set %s done", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s not done\n", args[0])
		}
		return nil
	},
}

var setDoneAllCmd = &cobra.Command{
	Use:   "done-all",
	Short: "Mark every set in the current workout done",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		n, err := ctl.CompleteAll()
		if err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Marked %d sets done", n)
		return nil
	},
}

var setEditCmd = &cobra.Command{
	Use:   "edit <set-id>",
	Short: "Change the values of a set",
	Long: `Change the values of a set. Unset flags keep their current value.

Strength sets take --reps and --weight (preferred unit). Cardio sets
take --duration and --distance (km).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		w, err := ctl.Current()
		if err != nil {
			return err
		}
		s, err := lookupSet(w, args[0])
		if err != nil {
			return err
		}

		unit := preferredUnit()
		edit := session.SetEdit{
			Reps:     s.Reps,
			Weight:   s.Weight,
			Duration: s.Duration,
			Distance: s.Distance,
		}
		flags := cmd.Flags()
		if flags.Changed("reps") {
			edit.Reps = editReps
		}
		if flags.Changed("weight") {
			kg := toKG(editWeight, unit)
			edit.Weight = &kg
		}
		if flags.Changed("duration") {
			secs := int(editDuration / time.Second)
			edit.Duration = &secs
		}
		if flags.Changed("distance") {
			d := editDistance
			edit.Distance = &d
		}

		updated, err := ctl.EditSet(s.ID, edit)
		if err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Updated set")
		fmt.Fprintln(cmd.OutOrStdout(), formatSet(updated, unit))
		return nil
	},
}

var setRemoveCmd = &cobra.Command{
	Use:     "rm <set-id>",
	Aliases: []string{"remove"},
	Short:   "Remove a set from the current workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		if err := ctl.RemoveSet(args[0]); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Removed set %s", args[0])
		return nil
	},
}

var setAddCmd = &cobra.Command{
	Use:   "add <exercise-id>",
	Short: "Add one more set of an exercise",
	Long: `Add one more set of an exercise, copying the values of its first set.

Use 'trainer workout add' to add an exercise with several sets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := session.Load(repo)
		if err != nil {
			return err
		}
		w, err := ctl.Current()
		if err != nil {
			return err
		}
		ex, ok := w.FindExercise(args[0])
		if !ok {
			found, err := repo.GetExercise(args[0])
			if err != nil {
				return err
			}
			ex = *found
		}
		s, err := ctl.AddSet(ex)
		if err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Added a set of %s", ex.Name)
		fmt.Fprintln(cmd.OutOrStdout(), formatSet(s, preferredUnit()))
		return nil
	},
}

// lookupSet finds a set by full ID or unique prefix.
func lookupSet(w *models.Workout, id string) (models.WorkoutSet, error) {
	if i := w.FindSet(id); i >= 0 {
		return w.Sets[i], nil
	}
	var matches []models.WorkoutSet
	for _, s := range w.Sets {
		if id != "" && strings.HasPrefix(s.ID, id) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return models.WorkoutSet{}, fmt.Errorf("%w: %s", session.ErrSetNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return models.WorkoutSet{}, fmt.Errorf("%w: %s is ambiguous", session.ErrSetNotFound, id)
	}
}

func init() {
	setEditCmd.Flags().IntVarP(&editReps, "reps", "r", 0, "reps (strength)")
	setEditCmd.Flags().Float64VarP(&editWeight, "weight", "w", 0, "weight in your preferred unit (strength)")
	setEditCmd.Flags().DurationVar(&editDuration, "duration", 0, "duration, e.g. 25m30s (cardio)")
	setEditCmd.Flags().Float64Var(&editDistance, "distance", 0, "distance in km (cardio)")

	setCmd.AddCommand(setToggleCmd, setDoneAllCmd, setEditCmd, setRemoveCmd, setAddCmd)
	rootCmd.AddCommand(setCmd)
}

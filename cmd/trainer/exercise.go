// ABOUTME: CLI commands for the exercise catalog.
// ABOUTME: Lists built-in and custom exercises and manages custom ones.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/models"
	"github.com/harperreed/trainer/internal/storage"
)

var (
	exCategory     string
	exMuscleGroups []string
	exEquipment    string
	exInstructions string
	exName         string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Browse and manage the exercise catalog",
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exCategory != "" && !models.IsValidCategory(exCategory) {
			return invalidCategory(exCategory)
		}
		exercises, err := repo.ListExercises()
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		out := cmd.OutOrStdout()
		shown := 0
		for _, e := range exercises {
			if exCategory != "" && string(e.Category) != exCategory {
				continue
			}
			custom := ""
			if !storage.IsDefaultExercise(e.ID) {
				custom = faint.Sprint(" (custom)")
			}
			fmt.Fprintf(out, "%s %s %s%s\n",
				padRight(e.ID, 24),
				padRight(truncate(e.Name, 24), 24),
				cyan.Sprint(e.Category),
				custom)
			shown++
		}
		if shown == 0 {
			fmt.Fprintln(out, "No exercises found.")
		}
		return nil
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := repo.GetExercise(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		bold.Fprintf(out, "%s\n", e.Name)
		fmt.Fprintf(out, "ID: %s\n", e.ID)
		fmt.Fprintf(out, "Category: %s\n", e.Category)
		if len(e.MuscleGroups) > 0 {
			fmt.Fprintf(out, "Muscles: %s\n", strings.Join(e.MuscleGroups, ", "))
		}
		if e.Equipment != "" {
			fmt.Fprintf(out, "Equipment: %s\n", e.Equipment)
		}
		if e.Instructions != "" {
			fmt.Fprintf(out, "\n%s\n", e.Instructions)
		}
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom exercise",
	Long: `Add a custom exercise to the catalog.

Examples:
  trainer exercise add "Bulgarian Split Squat" --category legs --muscle quads --muscle glutes
  trainer exercise add "Rowing" --category cardio --equipment "rowing machine"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidCategory(exCategory) {
			return invalidCategory(exCategory)
		}
		e := models.NewCustomExercise(args[0], models.Category(exCategory))
		if len(exMuscleGroups) > 0 {
			e.WithMuscleGroups(exMuscleGroups...)
		}
		if exEquipment != "" {
			e.Equipment = exEquipment
		}
		if exInstructions != "" {
			e.Instructions = exInstructions
		}
		if err := repo.SaveExercise(e); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Added %s", e.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "  ID: %s\n", e.ID)
		return nil
	},
}

var exerciseEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an exercise",
	Long: `Edit an exercise. Unset flags keep their current value.

Edits to built-in exercises are stored as overrides in the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := repo.GetExercise(args[0])
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("name") {
			e.Name = exName
		}
		if flags.Changed("category") {
			if !models.IsValidCategory(exCategory) {
				return invalidCategory(exCategory)
			}
			e.Category = models.Category(exCategory)
		}
		if flags.Changed("muscle") {
			e.MuscleGroups = exMuscleGroups
		}
		if flags.Changed("equipment") {
			e.Equipment = exEquipment
		}
		if flags.Changed("instructions") {
			e.Instructions = exInstructions
		}
		if err := repo.SaveExercise(e); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Updated %s", e.Name)
		return nil
	},
}

var exerciseRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Remove a custom exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteExercise(args[0]); err != nil {
			if errors.Is(err, storage.ErrBuiltinExercise) {
				return fmt.Errorf("%w (built-in exercises cannot be removed)", err)
			}
			return err
		}
		success(cmd.OutOrStdout(), "Removed exercise %s", args[0])
		return nil
	},
}

func invalidCategory(c string) error {
	names := make([]string, len(models.AllCategories))
	for i, cat := range models.AllCategories {
		names[i] = string(cat)
	}
	return fmt.Errorf("invalid category %q (use one of: %s)", c, strings.Join(names, ", "))
}

func init() {
	exerciseListCmd.Flags().StringVarP(&exCategory, "category", "c", "", "filter by category")

	for _, c := range []*cobra.Command{exerciseAddCmd, exerciseEditCmd} {
		c.Flags().StringVarP(&exCategory, "category", "c", "", "category")
		c.Flags().StringSliceVarP(&exMuscleGroups, "muscle", "m", nil, "muscle group (repeatable)")
		c.Flags().StringVar(&exEquipment, "equipment", "", "equipment needed")
		c.Flags().StringVar(&exInstructions, "instructions", "", "how to perform it")
	}
	_ = exerciseAddCmd.MarkFlagRequired("category")
	exerciseEditCmd.Flags().StringVar(&exName, "name", "", "new name")

	exerciseCmd.AddCommand(exerciseListCmd, exerciseShowCmd, exerciseAddCmd, exerciseEditCmd, exerciseRemoveCmd)
	rootCmd.AddCommand(exerciseCmd)
}

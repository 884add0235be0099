// ABOUTME: CLI commands for preferences, the user profile, and backend selection.
// ABOUTME: The weight unit and profile live in storage; the backend lives in config.json.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/config"
	"github.com/harperreed/trainer/internal/models"
)

var (
	profileName      string
	profileLevel     string
	profileGoals     []string
	profileDuration  int
	profileFrequency int
	profileEquipment []string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := repo.WeightUnit()
		if err != nil {
			return err
		}
		path := config.GetConfigPath()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config:      %s\n", path)
		fmt.Fprintf(out, "Backend:     %s\n", cfg.GetBackend())
		fmt.Fprintf(out, "Data dir:    %s\n", cfg.GetDataDir())
		fmt.Fprintf(out, "Weight unit: %s\n", unit)
		aiState := "not configured (set GEMINI_API_KEY)"
		if cfg.AI.APIKey != "" {
			aiState = "configured"
		}
		fmt.Fprintf(out, "AI:          %s\n", aiState)
		return nil
	},
}

var settingsUnitCmd = &cobra.Command{
	Use:       "unit [kg|lb]",
	Short:     "Show or set the weight unit",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(models.UnitKG), string(models.UnitLB)},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			unit, err := repo.WeightUnit()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), unit)
			return nil
		}
		unit, err := models.ParseWeightUnit(args[0])
		if err != nil {
			return err
		}
		if err := repo.SetWeightUnit(unit); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Weights will be shown in %s", unit)
		return nil
	},
}

var settingsBackendCmd = &cobra.Command{
	Use:         "backend [badger|sqlite|charm]",
	Short:       "Show or set the storage backend",
	Long:        "Show or set the storage backend. Use 'trainer migrate' to copy existing data.",
	Args:        cobra.MaximumNArgs(1),
	ValidArgs:   []string{config.BackendBadger, config.BackendSQLite, config.BackendCharm},
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), cfg.GetBackend())
			return nil
		}
		fileCfg, err := config.LoadFile()
		if err != nil {
			return err
		}
		fileCfg.Backend = args[0]
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		if err := fileCfg.Save(); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Backend set to %s", args[0])
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your training profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.Profile()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if p.Name != "" {
			fmt.Fprintf(out, "Name:       %s\n", p.Name)
		}
		fmt.Fprintf(out, "Level:      %s\n", p.FitnessLevel)
		fmt.Fprintf(out, "Goals:      %s\n", strings.Join(p.Goals, ", "))
		fmt.Fprintf(out, "Duration:   %d min\n", p.Preferences.WorkoutDuration)
		fmt.Fprintf(out, "Frequency:  %d per week\n", p.Preferences.WorkoutFrequency)
		fmt.Fprintf(out, "Equipment:  %s\n", strings.Join(p.Preferences.Equipment, ", "))
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your training profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return profileCmd.RunE(cmd, args)
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update your training profile",
	Long: `Update your training profile. Unset flags keep their current value.

Example:
  trainer profile set --level beginner --goal "lose weight" --equipment dumbbells --minutes 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.Profile()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("name") {
			p.Name = profileName
		}
		if flags.Changed("level") {
			if !models.IsValidFitnessLevel(profileLevel) {
				return fmt.Errorf("invalid fitness level %q (use beginner, intermediate, or advanced)", profileLevel)
			}
			p.FitnessLevel = models.FitnessLevel(profileLevel)
		}
		if flags.Changed("goal") {
			p.Goals = profileGoals
		}
		if flags.Changed("minutes") {
			p.Preferences.WorkoutDuration = profileDuration
		}
		if flags.Changed("frequency") {
			p.Preferences.WorkoutFrequency = profileFrequency
		}
		if flags.Changed("equipment") {
			p.Preferences.Equipment = profileEquipment
		}
		if err := repo.SaveProfile(p); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "your name")
	profileSetCmd.Flags().StringVar(&profileLevel, "level", "", "beginner, intermediate, or advanced")
	profileSetCmd.Flags().StringSliceVar(&profileGoals, "goal", nil, "training goal (repeatable)")
	profileSetCmd.Flags().IntVar(&profileDuration, "minutes", 0, "preferred workout length in minutes")
	profileSetCmd.Flags().IntVar(&profileFrequency, "frequency", 0, "workouts per week")
	profileSetCmd.Flags().StringSliceVar(&profileEquipment, "equipment", nil, "available equipment (repeatable)")

	settingsCmd.AddCommand(settingsUnitCmd, settingsBackendCmd)
	profileCmd.AddCommand(profileShowCmd, profileSetCmd)
	rootCmd.AddCommand(settingsCmd, profileCmd)
}

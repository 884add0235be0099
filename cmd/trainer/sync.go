// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, now, repair, reset, and wipe operations.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	charmkv "github.com/charmbracelet/charm/kv"
	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/charm"
	"github.com/harperreed/trainer/internal/config"
	"github.com/harperreed/trainer/internal/storage"
)

var syncRepairForce bool

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync trainer data across devices",
	Long: `Sync trainer data across devices using Charm Cloud.

Your data is E2E encrypted with your SSH key before upload.

GETTING STARTED:

  1. Copy your data to Charm:   trainer migrate --to charm
  2. Use Charm by default:      trainer settings backend charm
  3. Link other devices:        trainer sync link

With the charm backend, data syncs automatically after each write.`,
}

var syncLinkCmd = &cobra.Command{
	Use:         "link",
	Short:       "Link this device to Charm",
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm("link"); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}
		out := cmd.OutOrStdout()
		success(out, "Device linked to Charm")

		client, err := charm.InitClient()
		if err != nil {
			warn(out, "Initial sync skipped: %v", err)
			return nil
		}
		if err := client.Sync(); err != nil {
			warn(out, "Initial sync failed: %v", err)
		} else {
			success(out, "Initial sync complete")
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:         "unlink",
	Short:       "Disconnect from Charm",
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm("unlink"); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}
		success(cmd.OutOrStdout(), "Device unlinked from Charm")
		fmt.Fprintln(cmd.OutOrStdout(), "Your local trainer data is preserved.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:         "status",
	Short:       "Show sync status",
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg.GetBackend() != config.BackendCharm {
			yellow.Fprintf(out, "Sync is off: the %s backend is local only.\n", cfg.GetBackend())
			fmt.Fprintln(out, "\nRun 'trainer migrate --to charm' and 'trainer settings backend charm' to enable it.")
			return nil
		}

		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("charm client: %w", err)
		}
		id, err := client.ID()
		if err != nil {
			yellow.Fprintln(out, "Not linked to Charm")
			fmt.Fprintln(out, "\nRun 'trainer sync link' to connect to Charm.")
			return nil
		}

		fmt.Fprintln(out, "Charm ID:", id)
		fmt.Fprintln(out, "Server:", os.Getenv("CHARM_HOST"))
		fmt.Fprintln(out)

		workouts, _ := client.Keys(storage.WorkoutPrefix)
		exercises, _ := client.Keys(storage.ExercisePrefix)
		success(out, "Connected to Charm")
		fmt.Fprintf(out, "  Workouts:  %d\n", len(workouts))
		fmt.Fprintf(out, "  Custom exercises: %d\n", len(exercises))
		if client.IsReadOnly() {
			warn(out, "Database is locked by another process; running read-only")
		}
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:         "now",
	Short:       "Sync with Charm Cloud immediately",
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("charm client: %w", err)
		}
		if err := client.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		success(cmd.OutOrStdout(), "Synced")
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:         "wipe",
	Short:       "Delete all cloud and local data",
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "This will PERMANENTLY DELETE all cloud backups and local trainer data.")
		fmt.Fprint(out, "Type 'wipe' to confirm: ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if strings.TrimSpace(answer) != "wipe" {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}

		result, err := charmkv.Wipe(charm.DBName)
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}
		success(out, "Data wiped successfully")
		fmt.Fprintf(out, "  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Fprintf(out, "  Local files deleted: %d\n", result.LocalFilesDeleted)
		return nil
	},
}

var syncRepairCmd = &cobra.Command{
	Use:         "repair",
	Short:       "Repair database corruption",
	Long:        `Repair the local Charm database by checkpointing WAL, removing SHM files, checking integrity, and vacuuming.`,
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Repairing trainer database...")
		result, err := charmkv.Repair(charm.DBName, syncRepairForce)

		if result.WalCheckpointed {
			success(out, "  WAL checkpointed")
		}
		if result.ShmRemoved {
			success(out, "  SHM file removed")
		}
		if result.IntegrityOK {
			success(out, "  Integrity check passed")
		} else {
			warn(out, "  Integrity check failed")
		}
		if result.Vacuumed {
			success(out, "  Database vacuumed")
		}
		if err != nil {
			if !syncRepairForce {
				yellow.Fprintln(out, "\nRun with --force to attempt recovery.")
			}
			return fmt.Errorf("repair failed: %w", err)
		}
		success(out, "Repair complete")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:         "reset",
	Short:       "Reset local data and restore from cloud",
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "This will DELETE all local trainer data and restore from cloud.")
		if !confirm(cmd.InOrStdin(), out, "Continue?") {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}
		if err := charmkv.Reset(charm.DBName); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		success(out, "Local data reset and restored from cloud")
		return nil
	},
}

func runCharm(arg string) error {
	c := exec.Command("charm", arg)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func init() {
	syncRepairCmd.Flags().BoolVar(&syncRepairForce, "force", false, "attempt recovery even if integrity checks fail")

	syncCmd.AddCommand(syncLinkCmd, syncUnlinkCmd, syncStatusCmd, syncNowCmd, syncRepairCmd, syncResetCmd, syncWipeCmd)
	rootCmd.AddCommand(syncCmd)
}

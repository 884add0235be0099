// ABOUTME: CLI command for copying data between storage backends.
// ABOUTME: Opens both stores directly and refuses to overwrite a populated target.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/config"
	"github.com/harperreed/trainer/internal/storage"
)

var (
	migrateFrom  string
	migrateTo    string
	migrateForce bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data between storage backends",
	Long: `Copy all trainer data from one storage backend to another.

BACKENDS:

  badger   Local badger database (default)
  sqlite   Single SQLite file
  charm    Charm Cloud, E2E encrypted and synced across devices

The target must be empty unless --force is given. Afterwards switch to
the new backend with 'trainer settings backend <name>'.

EXAMPLES:

  trainer migrate --from badger --to sqlite
  trainer migrate --from sqlite --to charm`,
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		from := migrateFrom
		if from == "" {
			from = cfg.GetBackend()
		}
		if migrateTo == "" {
			return fmt.Errorf("--to is required")
		}
		if from == migrateTo {
			return fmt.Errorf("source and target are both %s", from)
		}

		if !migrateForce {
			target := *cfg
			target.Backend = migrateTo
			if path := target.StorePath(); path != "" {
				nonEmpty, err := hasData(path)
				if err != nil {
					return err
				}
				if nonEmpty {
					return fmt.Errorf("target %s already has data at %s (use --force to merge)", migrateTo, path)
				}
			}
		}

		src, err := openRepoFor(from)
		if err != nil {
			return err
		}
		defer src.Close()
		dst, err := openRepoFor(migrateTo)
		if err != nil {
			return err
		}
		defer dst.Close()

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		out := cmd.OutOrStdout()
		success(out, "Migrated %s → %s", from, migrateTo)
		fmt.Fprintf(out, "  Workouts:  %d\n", summary.Workouts)
		fmt.Fprintf(out, "  Exercises: %d\n", summary.Exercises)
		if summary.Profile {
			fmt.Fprintln(out, "  Profile:   copied")
		}
		if summary.Session {
			fmt.Fprintln(out, "  Current workout: copied")
		}
		faint.Fprintf(out, "\nSwitch with 'trainer settings backend %s'.\n", migrateTo)
		return nil
	},
}

// hasData reports whether a backend path is a non-empty directory or file.
func hasData(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return storage.IsDirNonEmpty(path)
	}
	return info.Size() > 0, nil
}

func openRepoFor(backend string) (*storage.Repository, error) {
	store, err := cfg.OpenBackend(backend)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", backend, err)
	}
	r, err := storage.New(store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return r, nil
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source backend (default: configured backend)")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "target backend: "+config.BackendBadger+", "+config.BackendSQLite+", or "+config.BackendCharm)
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "write into a target that already has data")

	rootCmd.AddCommand(migrateCmd)
}

// ABOUTME: CLI commands for exporting and importing trainer data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/storage"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export trainer data",
	Long: `Export trainer data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Completed workouts as a Markdown log

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include workouts since this date (markdown only)

EXAMPLES:

  trainer export json -o backup.json
  trainer export yaml
  trainer export markdown --since 2025-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error

		switch args[0] {
		case "json":
			data, err = repo.ExportJSON()
		case "yaml":
			data, err = repo.ExportYAML()
		case "markdown", "md":
			var since *time.Time
			if exportSince != "" {
				t, perr := parseTime(exportSince)
				if perr != nil {
					return perr
				}
				since = &t
			}
			var md string
			md, err = repo.ExportMarkdown(since)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			success(cmd.OutOrStdout(), "Exported to %s", exportOutput)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import trainer data from a JSON or YAML export",
	Long: `Import trainer data from a JSON or YAML export.

Exercises and workouts are upserted by ID, so importing the same file
twice does not create duplicates. The profile and weight unit are
replaced when the file has them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		data, err := storage.ParseExport(raw)
		if err != nil {
			return err
		}
		if err := repo.ImportData(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		success(cmd.OutOrStdout(), "Imported %d workouts and %d exercises from %s",
			len(data.Workouts), len(data.Exercises), args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include workouts since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd, importCmd)
}

// ABOUTME: CLI commands for exporting and importing wellness data.
// ABOUTME: Supports JSON, YAML, and per-collection CSV export formats.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
	exportSince  string
	exportUntil  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export wellness data",
	Long: `Export wellness data for backup or analysis.

FORMATS:

  json   Full snapshot envelope (suitable for backup/restore)
  yaml   Same snapshot as YAML (human-readable)
  csv    One timestamped CSV file per collection, written to --out

OPTIONS:

  --format       json, yaml, or csv (default json)
  --out          Output file (json/yaml) or directory (csv)
  --since        Only include records on or after this date (YYYY-MM-DD)
  --until        Only include records on or before this date

EXAMPLES:

  mynd export                              # Full JSON snapshot to stdout
  mynd export --format yaml --out backup.yaml
  mynd export --format csv --out ./exports
  mynd export --since 2026-01-01           # This year only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := storage.DateRange{Start: storage.RangeStart, End: storage.RangeEnd}
		if exportSince != "" {
			if _, err := time.Parse(models.DateLayout, exportSince); err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", exportSince)
			}
			rng.Start = exportSince
		}
		if exportUntil != "" {
			if _, err := time.Parse(models.DateLayout, exportUntil); err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", exportUntil)
			}
			rng.End = exportUntil
		}

		switch exportFormat {
		case "csv":
			return exportCSVFiles(rng)
		case "json", "yaml":
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or csv)", exportFormat)
		}

		var data []byte
		var err error
		if exportFormat == "json" {
			data, err = storage.ExportJSON(repo, rng)
		} else {
			data, err = storage.ExportYAML(repo, rng)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOut != "" {
			if err := os.WriteFile(exportOut, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOut)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

func exportCSVFiles(rng storage.DateRange) error {
	docs, err := storage.ExportCSV(repo, rng)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if len(docs) == 0 {
		fmt.Println("Nothing to export.")
		return nil
	}

	dir := exportOut
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	now := time.Now()
	for collection, doc := range docs {
		name := filepath.Join(dir, storage.CSVFilename(collection, now))
		if err := os.WriteFile(name, doc, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		color.Green("✓ %s", name)
	}
	return nil
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import wellness data from a JSON snapshot",
	Long: `Import records from a previously exported JSON snapshot.
Record ids are reassigned by the store on import.

Example:
  mynd import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		if err := storage.ImportJSON(repo, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		color.Green("✓ Imported %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format (json, yaml, csv)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (json/yaml) or directory (csv)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "start date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportUntil, "until", "", "end date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd, importCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/patent-lens/internal/archive"
	"github.com/pdiddy/patent-lens/internal/report"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Browse the local search archive (list, show, export)",
	Long: `Archive manages the local SQLite history written by search --archive.
Use subcommands to list archived searches, show one with its records,
or export the whole archive.`,
}

// --- list subcommand ---

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived searches, newest first",
	RunE:  runArchiveList,
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No archived searches.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-19s  %7s  %7s  %s\n",
		"ID", "Created", "Records", "Total", "Keywords")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, e := range entries {
		keywords := strings.Join(e.Keywords, ", ")
		if len(keywords) > 40 {
			keywords = keywords[:37] + "..."
		}
		if e.SearchError != "" {
			keywords += " (failed)"
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-19s  %7d  %7d  %s\n",
			e.ID, e.CreatedAt.Format("2006-01-02 15:04:05"), e.RecordCount, e.TotalAvailable, keywords)
	}

	fmt.Fprintf(os.Stdout, "\n%d searches\n", len(entries))
	return nil
}

// --- show subcommand ---

var archiveShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one archived search and its records",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveShow,
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	entry, records, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(archive.ExportRecord{Entry: entry, Records: records})
	}

	fmt.Fprintf(os.Stdout, "ID:        %s\n", entry.ID)
	fmt.Fprintf(os.Stdout, "Created:   %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(os.Stdout, "Keywords:  %s\n", strings.Join(entry.Keywords, ", "))
	fmt.Fprintf(os.Stdout, "Per page:  %d\n", entry.PerPage)
	fmt.Fprintf(os.Stdout, "Total:     %d\n", entry.TotalAvailable)
	if entry.SearchError != "" {
		fmt.Fprintf(os.Stdout, "Error:     %s\n", entry.SearchError)
	}
	fmt.Fprintln(os.Stdout)

	report.FormatTable(records, os.Stdout)
	return nil
}

// --- export subcommand ---

var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the archive to YAML or JSON",
	RunE:  runArchiveExport,
}

func runArchiveExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background())
	case "json":
		path, err = store.ExportJSON(context.Background())
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported to %s\n", path)
	return nil
}

func init() {
	archiveListCmd.Flags().Bool("json", false, "output entries as JSON")
	archiveShowCmd.Flags().Bool("json", false, "output the search and records as JSON")
	archiveExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveExportCmd)

	rootCmd.AddCommand(archiveCmd)
}

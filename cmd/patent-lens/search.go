// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/patent-lens/internal/archive"
	"github.com/pdiddy/patent-lens/internal/pipeline"
	"github.com/pdiddy/patent-lens/internal/report"
	"github.com/pdiddy/patent-lens/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [keywords]",
	Short: "Search PatentsView for patents matching keywords",
	Long: `Search queries the PatentsView API for patents whose abstracts contain
each of the given keywords (comma-separated, order preserved), prints the
normalized result table, and optionally writes exports: a saved results
file, CSV, XLSX, chart pages, or an archive entry.

A failed fetch is not fatal: the command reports the error, prints an
empty table, and still writes whatever exports were requested.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("keywords")
	if raw == "" && len(args) > 0 {
		raw = strings.Join(args, " ")
	}
	q := search.ParseKeywords(raw)

	client, err := search.NewClient(searchConfig(cmd))
	if err != nil {
		return err
	}

	out, err := pipeline.Run(context.Background(), client, insightConfig(), q)
	if err != nil {
		return err
	}

	for _, w := range out.Warnings {
		fmt.Fprintln(os.Stderr, w)
	}
	if out.SearchError == "" && len(out.Records) > 0 {
		fmt.Fprintf(os.Stderr, "Found %d patents\n", len(out.Records))
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		if err := report.FormatJSON(out.Records, os.Stdout); err != nil {
			return err
		}
	} else {
		report.FormatTable(out.Records, os.Stdout)
	}

	return writeSearchArtifacts(cmd, client, out)
}

// writeSearchArtifacts handles --save, --csv, --xlsx, --charts-dir, and
// --archive for a finished search.
func writeSearchArtifacts(cmd *cobra.Command, client *search.Client, out *pipeline.Outcome) error {
	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := search.WriteResultsFile(path, out.Query, client.PerPage(), out.Records, out.TotalAvailable, out.SearchError); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved results to %s\n", path)
	}

	if csvOut, _ := cmd.Flags().GetBool("csv"); csvOut {
		path := filepath.Join(outputDir(cmd), report.CSVFilename(time.Now()))
		if err := writeExportFile(path, func(f *os.File) error { return report.WriteCSV(f, out.Records) }); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}

	if xlsxOut, _ := cmd.Flags().GetBool("xlsx"); xlsxOut {
		path := filepath.Join(outputDir(cmd), report.XLSXFilename(time.Now()))
		if err := writeExportFile(path, func(f *os.File) error { return report.WriteXLSX(f, out.Records) }); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}

	if chartsDir, _ := cmd.Flags().GetString("charts-dir"); chartsDir != "" {
		if len(out.Records) == 0 {
			fmt.Fprintln(os.Stderr, "Skipping charts: no records.")
		} else {
			if err := report.WriteChartFiles(chartsDir, out.Insights); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote charts to %s\n", chartsDir)
		}
	}

	if archiveRun, _ := cmd.Flags().GetBool("archive"); archiveRun {
		store, err := archive.NewStore(archiveConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Save(context.Background(), archive.Search{
			Keywords:       out.Query.Keywords,
			PerPage:        client.PerPage(),
			TotalAvailable: out.TotalAvailable,
			SearchError:    out.SearchError,
			Records:        out.Records,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Archived search %s\n", id)
	}

	return nil
}

// outputDir resolves the artifact directory: flag, then config file, then
// the output/ default.
func outputDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("output-dir")
	if dir == "" {
		dir = viper.GetString("output.dir")
	}
	if dir == "" {
		dir = "output"
	}
	return dir
}

func writeExportFile(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	searchCmd.Flags().String("keywords", "", "keywords to search for (comma-separated)")
	searchCmd.Flags().String("api-key", "", "PatentsView API key (default: .secrets/patentsview-api-key)")
	searchCmd.Flags().Int("per-page", 0, "results per page, capped at 1000 (0 = default)")
	searchCmd.Flags().Bool("json", false, "output records as JSON")
	searchCmd.Flags().String("save", "", "write a results YAML file to this path")
	searchCmd.Flags().Bool("csv", false, "write a CSV export to the output directory")
	searchCmd.Flags().Bool("xlsx", false, "write an XLSX export to the output directory")
	searchCmd.Flags().String("charts-dir", "", "write chart HTML pages to this directory")
	searchCmd.Flags().Bool("archive", false, "record the search in the local archive")
	searchCmd.Flags().String("output-dir", "", "directory for CSV/XLSX exports (default: output)")

	rootCmd.AddCommand(searchCmd)
}

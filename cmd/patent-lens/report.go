// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/patent-lens/internal/insights"
	"github.com/pdiddy/patent-lens/internal/report"
	"github.com/pdiddy/patent-lens/internal/search"
)

var reportCmd = &cobra.Command{
	Use:   "report [results-file]",
	Short: "Render insights from a saved results file",
	Long: `Report reads a results YAML file written by search --save and renders it
without re-querying the API: the result table on stdout, a Markdown
summary, and the chart pages in the output directory. CSV and XLSX
exports are opt-in.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	if from == "" && len(args) > 0 {
		from = args[0]
	}
	if from == "" {
		return fmt.Errorf("results file required: pass a path or --from")
	}

	rf, err := search.ReadResultsFile(from)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d records from %s\n", len(rf.Records), from)
	if rf.Summary.SearchError != "" {
		fmt.Fprintf(os.Stderr, "Saved search had failed: %s\n", rf.Summary.SearchError)
	}

	set := insights.Build(rf.Records, insightConfig())

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		if err := report.FormatJSON(rf.Records, os.Stdout); err != nil {
			return err
		}
	} else {
		report.FormatTable(rf.Records, os.Stdout)
	}

	dir := outputDir(cmd)

	summaryPath := filepath.Join(dir, "summary.md")
	err = writeExportFile(summaryPath, func(f *os.File) error {
		return report.WriteSummary(f, rf.Query.Keywords, set, rf.Summary.SearchError)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", summaryPath)

	if len(rf.Records) == 0 {
		fmt.Fprintln(os.Stderr, "Skipping charts: no records.")
	} else {
		chartsDir, _ := cmd.Flags().GetString("charts-dir")
		if chartsDir == "" {
			chartsDir = filepath.Join(dir, "charts")
		}
		if err := report.WriteChartFiles(chartsDir, set); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote charts to %s\n", chartsDir)
	}

	if csvOut, _ := cmd.Flags().GetBool("csv"); csvOut {
		path := filepath.Join(dir, report.CSVFilename(time.Now()))
		if err := writeExportFile(path, func(f *os.File) error { return report.WriteCSV(f, rf.Records) }); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}

	if xlsxOut, _ := cmd.Flags().GetBool("xlsx"); xlsxOut {
		path := filepath.Join(dir, report.XLSXFilename(time.Now()))
		if err := writeExportFile(path, func(f *os.File) error { return report.WriteXLSX(f, rf.Records) }); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}

	return nil
}

func init() {
	reportCmd.Flags().String("from", "", "results YAML file written by search --save")
	reportCmd.Flags().Bool("json", false, "output records as JSON")
	reportCmd.Flags().Bool("csv", false, "write a CSV export to the output directory")
	reportCmd.Flags().Bool("xlsx", false, "write an XLSX export to the output directory")
	reportCmd.Flags().String("charts-dir", "", "directory for chart HTML pages (default: <output-dir>/charts)")
	reportCmd.Flags().String("output-dir", "", "directory for report artifacts (default: output)")

	rootCmd.AddCommand(reportCmd)
}

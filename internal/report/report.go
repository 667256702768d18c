// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders patent records and insights into user-facing
// artifacts: terminal tables, CSV and XLSX exports, chart HTML, and a
// markdown summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/patent-lens/pkg/types"
)

// FormatTable writes records as a human-readable table to w.
func FormatTable(records []types.PatentRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No patents found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-12s  %-10s  %-50s  %-7s  %s\n",
		"Rank", "Number", "Date", "Title", "Country", "Type")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, r := range records {
		title := r.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-12s  %-10s  %-50s  %-7s  %s\n",
			i+1, r.Number, r.Date, title, r.Country, r.Type)
	}

	fmt.Fprintf(w, "\n%d patents\n", len(records))
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.PatentRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

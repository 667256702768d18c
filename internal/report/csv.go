// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pdiddy/patent-lens/pkg/types"
)

// exportHeader lists the exported columns. Year is derived from Date and
// left empty when the date does not parse.
var exportHeader = []string{"Patent Number", "Date", "Title", "Country", "Type", "Abstract", "Year"}

// CSVFilename returns the timestamped artifact name for a CSV export.
func CSVFilename(now time.Time) string {
	return "patents_" + now.Format("20060102_150405") + ".csv"
}

// WriteCSV writes records as UTF-8 CSV with a header row.
func WriteCSV(w io.Writer, records []types.PatentRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(exportRow(r)); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportRow(r types.PatentRecord) []string {
	year := ""
	if y, ok := r.Year(); ok {
		year = strconv.Itoa(y)
	}
	return []string{r.Number, r.Date, r.Title, r.Country, r.Type, r.Abstract, year}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/patent-lens/pkg/types"
)

const xlsxSheet = "Patents"

// XLSXFilename returns the timestamped artifact name for an XLSX export.
func XLSXFilename(now time.Time) string {
	return "patents_" + now.Format("20060102_150405") + ".xlsx"
}

// WriteXLSX writes records as a single-sheet workbook with the same columns
// as the CSV export.
func WriteXLSX(w io.Writer, records []types.PatentRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if err := writeRow(f, 1, exportHeader); err != nil {
		return err
	}
	for i, r := range records {
		if err := writeRow(f, i+2, exportRow(r)); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("addressing cell: %w", err)
		}
		if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
			return fmt.Errorf("setting cell %s: %w", cell, err)
		}
	}
	return nil
}

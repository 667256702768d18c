// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/patent-lens/pkg/types"
)

func TestCSVFilename(t *testing.T) {
	now := time.Date(2026, 8, 21, 14, 30, 5, 0, time.Local)
	if got := CSVFilename(now); got != "patents_20260821_143005.csv" {
		t.Errorf("CSVFilename = %q", got)
	}
}

func TestXLSXFilename(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	if got := XLSXFilename(now); got != "patents_20260102_030405.xlsx" {
		t.Errorf("XLSXFilename = %q", got)
	}
}

func TestWriteCSV(t *testing.T) {
	records := []types.PatentRecord{
		{Number: "10000001", Date: "2020-03-15", Title: `Cell, "improved"`, Country: "US", Type: "utility", Abstract: "Line one.\nLine two."},
		{Number: "10000002", Date: "bad-date", Title: "Battery Pack", Country: "JP", Type: "utility", Abstract: "A pack."},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want header + 2", len(rows))
	}

	wantHeader := []string{"Patent Number", "Date", "Title", "Country", "Type", "Abstract", "Year"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	// Commas, quotes, and newlines survive the round trip.
	if rows[1][2] != `Cell, "improved"` {
		t.Errorf("Title = %q", rows[1][2])
	}
	if rows[1][5] != "Line one.\nLine two." {
		t.Errorf("Abstract = %q", rows[1][5])
	}
	if rows[1][6] != "2020" {
		t.Errorf("Year = %q, want 2020", rows[1][6])
	}

	// Unparsable date leaves the Year cell empty.
	if rows[2][6] != "" {
		t.Errorf("Year = %q, want empty for bad date", rows[2][6])
	}
}

func TestWriteCSVEmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want header only", len(rows))
	}
}

func TestWriteXLSX(t *testing.T) {
	records := []types.PatentRecord{
		{Number: "10000001", Date: "2020-03-15", Title: "Photovoltaic Cell", Country: "US", Type: "utility", Abstract: "A cell."},
		{Number: "10000002", Date: "", Title: "Battery Pack", Country: "JP", Type: "utility", Abstract: "A pack."},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, records); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Patents" {
		t.Errorf("sheets = %v, want [Patents]", got)
	}

	cells := map[string]string{
		"A1": "Patent Number",
		"G1": "Year",
		"A2": "10000001",
		"C2": "Photovoltaic Cell",
		"G2": "2020",
		"B3": "",
		"D3": "JP",
		"G3": "",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(xlsxSheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}

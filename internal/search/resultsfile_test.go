// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/patent-lens/pkg/types"
)

func TestWriteAndReadResultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.yaml")

	q := Query{Keywords: []string{"solar", "battery"}}
	records := []types.PatentRecord{
		{Number: "10000001", Date: "2020-03-15", Title: "Photovoltaic Cell", Country: "US", Type: "utility", Abstract: "A cell."},
		{Number: "10000002", Date: "2021-07-01", Title: "Battery Pack", Country: "JP", Type: "utility", Abstract: "A pack."},
	}

	if err := WriteResultsFile(path, q, 1000, records, 2340, ""); err != nil {
		t.Fatalf("WriteResultsFile: %v", err)
	}

	rf, err := ReadResultsFile(path)
	if err != nil {
		t.Fatalf("ReadResultsFile: %v", err)
	}

	if len(rf.Query.Keywords) != 2 || rf.Query.Keywords[0] != "solar" || rf.Query.Keywords[1] != "battery" {
		t.Errorf("Keywords = %v, want [solar battery]", rf.Query.Keywords)
	}
	if rf.Config.PerPage != 1000 {
		t.Errorf("PerPage = %d, want 1000", rf.Config.PerPage)
	}
	if len(rf.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(rf.Records))
	}
	if rf.Records[0].Number != "10000001" {
		t.Errorf("Records[0].Number = %q", rf.Records[0].Number)
	}
	if rf.Records[1].Country != "JP" {
		t.Errorf("Records[1].Country = %q, want JP", rf.Records[1].Country)
	}
	if rf.Summary.Total != 2 {
		t.Errorf("Summary.Total = %d, want 2", rf.Summary.Total)
	}
	if rf.Summary.TotalAvailable != 2340 {
		t.Errorf("Summary.TotalAvailable = %d, want 2340", rf.Summary.TotalAvailable)
	}
	if rf.Summary.SearchError != "" {
		t.Errorf("Summary.SearchError = %q, want empty", rf.Summary.SearchError)
	}
	if rf.Summary.Timestamp.IsZero() {
		t.Error("Summary.Timestamp should be set")
	}
}

func TestWriteResultsFileRecordsSearchError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.yaml")

	if err := WriteResultsFile(path, Query{Keywords: []string{"x"}}, 1000, nil, 0, "PatentsView API returned HTTP 500"); err != nil {
		t.Fatalf("WriteResultsFile: %v", err)
	}

	rf, err := ReadResultsFile(path)
	if err != nil {
		t.Fatalf("ReadResultsFile: %v", err)
	}
	if rf.Summary.Total != 0 {
		t.Errorf("Summary.Total = %d, want 0", rf.Summary.Total)
	}
	if !strings.Contains(rf.Summary.SearchError, "HTTP 500") {
		t.Errorf("SearchError = %q, should mention HTTP 500", rf.Summary.SearchError)
	}
}

func TestReadResultsFileMissing(t *testing.T) {
	_, err := ReadResultsFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadResultsFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("records: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := ReadResultsFile(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing") {
		t.Errorf("error = %q, should mention parsing", err.Error())
	}
}

func TestQueryParamsToQuery(t *testing.T) {
	p := QueryParams{Keywords: []string{"solar", "grid"}}
	q := p.ToQuery()
	if len(q.Keywords) != 2 || q.Keywords[0] != "solar" || q.Keywords[1] != "grid" {
		t.Errorf("ToQuery() = %v, want [solar grid]", q.Keywords)
	}
}

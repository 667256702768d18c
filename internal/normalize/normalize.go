// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize converts raw PatentsView response objects into flat
// patent records. Every input object produces exactly one record, in input
// order, however sparse the object is.
package normalize

import (
	"strconv"

	"github.com/pdiddy/patent-lens/pkg/types"
)

// Records flattens raw API patent objects into PatentRecords. Missing keys
// and values of unexpected shape become empty strings; numeric values are
// formatted rather than dropped.
func Records(patents []map[string]any) []types.PatentRecord {
	records := make([]types.PatentRecord, len(patents))
	for i, p := range patents {
		records[i] = types.PatentRecord{
			Number:   fieldString(p["patent_number"]),
			Date:     fieldString(p["patent_date"]),
			Title:    fieldString(p["patent_title"]),
			Country:  fieldString(p["patent_firstnamed_assignee_country"]),
			Type:     fieldString(p["patent_type"]),
			Abstract: fieldString(p["patent_abstract"]),
		}
	}
	return records
}

// fieldString renders a decoded JSON value as a column string. JSON numbers
// arrive as float64; integral values are formatted without an exponent or
// trailing zeros.
func fieldString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

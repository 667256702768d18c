// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/patent-lens/pkg/types"
)

// WriteSummary writes a markdown digest of a search: the query, the result
// totals, and the leading entries of each distribution.
func WriteSummary(w io.Writer, keywords []string, set types.InsightSet, searchErr string) error {
	var b strings.Builder
	b.WriteString("# Patent Search Summary\n\n")
	fmt.Fprintf(&b, "Keywords: %s\n\n", strings.Join(keywords, ", "))

	if searchErr != "" {
		fmt.Fprintf(&b, "> Search failed: %s\n\n", searchErr)
	}
	if set.TotalRecords == 0 {
		b.WriteString("No patents found matching the criteria.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "- Patents: %d\n", set.TotalRecords)
	if set.WithoutYear > 0 {
		fmt.Fprintf(&b, "- Without a parsable grant date: %d\n", set.WithoutYear)
	}
	b.WriteString("\n")

	if len(set.Years) > 0 {
		b.WriteString("## Patents by Year\n\n")
		b.WriteString("| Year | Patents |\n|------|---------|\n")
		for _, yc := range set.Years {
			fmt.Fprintf(&b, "| %d | %d |\n", yc.Year, yc.Count)
		}
		b.WriteString("\n")
	}

	if len(set.Countries) > 0 {
		b.WriteString("## Top Countries\n\n")
		b.WriteString("| Country | Patents |\n|---------|---------|\n")
		for _, cc := range set.Countries {
			fmt.Fprintf(&b, "| %s | %d |\n", DisplayCountry(cc.Country), cc.Count)
		}
		b.WriteString("\n")
	}

	if len(set.Words) > 0 {
		b.WriteString("## Top Keywords\n\n")
		limit := len(set.Words)
		if limit > 25 {
			limit = 25
		}
		terms := make([]string, limit)
		for i := 0; i < limit; i++ {
			terms[i] = fmt.Sprintf("%s (%d)", set.Words[i].Word, set.Words[i].Count)
		}
		b.WriteString(strings.Join(terms, ", "))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

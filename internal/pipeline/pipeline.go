// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one search end to end: fetch matching patents,
// normalize them into records, and derive the insight distributions. A run
// never fails because the API did: fetch errors come back as an outcome
// with zero records and a user-visible message.
package pipeline

import (
	"context"
	"errors"

	"github.com/pdiddy/patent-lens/internal/insights"
	"github.com/pdiddy/patent-lens/internal/normalize"
	"github.com/pdiddy/patent-lens/internal/search"
	"github.com/pdiddy/patent-lens/pkg/types"
)

// Searcher is the search stage seam. *search.Client implements it; tests
// substitute stubs.
type Searcher interface {
	Search(ctx context.Context, q search.Query) (*search.Response, error)
}

// Outcome bundles everything a renderer needs from one run.
type Outcome struct {
	Query          search.Query
	Records        []types.PatentRecord
	Insights       types.InsightSet
	TotalAvailable int
	SearchError    string
	Warnings       []string
}

// Run executes the fetch → normalize → insights sequence. Invalid input
// (a ValidationError) is returned as an error for the boundary to render;
// any other fetch failure is absorbed into the outcome: zero records, the
// error text in SearchError, and a warning for the user.
func Run(ctx context.Context, client Searcher, cfg types.InsightConfig, q search.Query) (*Outcome, error) {
	out := &Outcome{Query: q}

	resp, err := client.Search(ctx, q)
	if err != nil {
		var verr *search.ValidationError
		if errors.As(err, &verr) {
			return nil, err
		}
		out.SearchError = err.Error()
		out.Warnings = append(out.Warnings, "Error fetching data: "+err.Error())
		out.Insights = insights.Build(nil, cfg)
		return out, nil
	}

	out.Records = normalize.Records(resp.Patents)
	out.TotalAvailable = resp.Total
	out.Insights = insights.Build(out.Records, cfg)
	if len(out.Records) == 0 {
		out.Warnings = append(out.Warnings, "No patents found matching the criteria.")
	}
	return out, nil
}

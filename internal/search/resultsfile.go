// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/patent-lens/pkg/types"
)

// ResultsFile is the on-disk representation of a search and its normalized
// records. A search can be saved to a file and rendered later without
// re-querying the API.
type ResultsFile struct {
	Query   QueryParams          `yaml:"query"`
	Config  ResultsFileConfig    `yaml:"config"`
	Records []types.PatentRecord `yaml:"records"`
	Summary ResultsSummary       `yaml:"summary"`
}

// QueryParams stores the query parameters in a serializable form.
type QueryParams struct {
	Keywords []string `yaml:"keywords"`
}

// ResultsFileConfig stores the search configuration that produced the records.
type ResultsFileConfig struct {
	PerPage int `yaml:"per_page"`
}

// ResultsSummary stores result statistics and a timestamp.
type ResultsSummary struct {
	Total          int       `yaml:"total"`
	TotalAvailable int       `yaml:"total_available"`
	SearchError    string    `yaml:"search_error,omitempty"`
	Timestamp      time.Time `yaml:"timestamp"`
}

// WriteResultsFile saves a query and its normalized records to a YAML file.
func WriteResultsFile(path string, q Query, perPage int, records []types.PatentRecord, totalAvailable int, searchErr string) error {
	rf := ResultsFile{
		Query:   QueryParams{Keywords: q.Keywords},
		Config:  ResultsFileConfig{PerPage: perPage},
		Records: records,
		Summary: ResultsSummary{
			Total:          len(records),
			TotalAvailable: totalAvailable,
			SearchError:    searchErr,
			Timestamp:      time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling results file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultsFile loads a previously saved results file from disk.
func ReadResultsFile(path string) (*ResultsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}
	var rf ResultsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing results file: %w", err)
	}
	return &rf, nil
}

// ToQuery converts stored QueryParams back into a Query.
func (p QueryParams) ToQuery() Query {
	return Query{Keywords: p.Keywords}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the patent-lens pipeline.
package types

import "time"

// patentDateFormat is the date layout PatentsView uses for patent_date.
const patentDateFormat = "2006-01-02"

// PatentRecord is one normalized row of the result table. Every field is the
// string the API returned, or "" when the source object lacked the key.
type PatentRecord struct {
	// Number is the patent number (column "Patent Number").
	Number string `json:"number" yaml:"number"`

	// Date is the grant date as returned by the API, normally YYYY-MM-DD.
	Date string `json:"date" yaml:"date"`

	// Title is the patent title.
	Title string `json:"title" yaml:"title"`

	// Country is the first-named assignee country.
	Country string `json:"country" yaml:"country"`

	// Type is the patent type (e.g. "utility", "design").
	Type string `json:"type" yaml:"type"`

	// Abstract is the patent abstract.
	Abstract string `json:"abstract" yaml:"abstract"`
}

// Year returns the grant year derived from Date, or false when the date is
// empty or does not parse as YYYY-MM-DD. Records without a year are excluded
// from yearly aggregation and get an empty Year cell in exports.
func (r PatentRecord) Year() (int, bool) {
	if r.Date == "" {
		return 0, false
	}
	t, err := time.Parse(patentDateFormat, r.Date)
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}

// YearCount is one bucket of the yearly grant distribution.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// CountryCount is one bucket of the assignee-country ranking.
type CountryCount struct {
	Country string `json:"country" yaml:"country"`
	Count   int    `json:"count" yaml:"count"`
}

// WordCount is one entry of the abstract word-frequency ranking.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// InsightSet bundles the aggregations derived from one normalized table.
type InsightSet struct {
	// Years is the grant distribution, ascending by year.
	Years []YearCount `json:"years" yaml:"years"`

	// Countries is the assignee-country ranking, count descending then
	// country ascending, truncated to the configured top N.
	Countries []CountryCount `json:"countries" yaml:"countries"`

	// Words is the abstract word-frequency ranking, count descending then
	// word ascending, truncated to the configured maximum.
	Words []WordCount `json:"words" yaml:"words"`

	// TotalRecords is the number of records the set was derived from.
	TotalRecords int `json:"total_records" yaml:"total_records"`

	// WithoutYear counts records whose date did not yield a year.
	WithoutYear int `json:"without_year,omitempty" yaml:"without_year,omitempty"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package insights derives yearly, country, and keyword distributions from
// normalized patent records. All derivations are pure functions of the
// record set, so a fixed set always yields the same insights.
package insights

import (
	"sort"

	"github.com/pdiddy/patent-lens/pkg/types"
)

const (
	defaultTopCountries = 10
	defaultMaxWords     = 100
)

// Build computes the full insight set for a record set. Records without a
// parsable date are counted in WithoutYear and excluded from the yearly
// distribution; an empty assignee country is a countable value.
func Build(records []types.PatentRecord, cfg types.InsightConfig) types.InsightSet {
	topCountries := cfg.TopCountries
	if topCountries <= 0 {
		topCountries = defaultTopCountries
	}
	maxWords := cfg.MaxWords
	if maxWords <= 0 {
		maxWords = defaultMaxWords
	}

	set := types.InsightSet{TotalRecords: len(records)}

	yearFreq := map[int]int{}
	for _, r := range records {
		y, ok := r.Year()
		if !ok {
			set.WithoutYear++
			continue
		}
		yearFreq[y]++
	}
	set.Years = sortedYears(yearFreq)
	set.Countries = topCountryCounts(records, topCountries)
	set.Words = topWords(records, cfg.ExtraStopwords, maxWords)
	return set
}

func sortedYears(freq map[int]int) []types.YearCount {
	years := make([]types.YearCount, 0, len(freq))
	for y, n := range freq {
		years = append(years, types.YearCount{Year: y, Count: n})
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })
	return years
}

// topCountryCounts ranks countries by count descending, name ascending on
// ties, and keeps the first max entries. Counts are full-corpus counts even
// for countries cut from the list.
func topCountryCounts(records []types.PatentRecord, max int) []types.CountryCount {
	freq := map[string]int{}
	for _, r := range records {
		freq[r.Country]++
	}

	countries := make([]types.CountryCount, 0, len(freq))
	for c, n := range freq {
		countries = append(countries, types.CountryCount{Country: c, Count: n})
	}
	sort.Slice(countries, func(i, j int) bool {
		if countries[i].Count == countries[j].Count {
			return countries[i].Country < countries[j].Country
		}
		return countries[i].Count > countries[j].Count
	})
	if len(countries) > max {
		countries = countries[:max]
	}
	return countries
}

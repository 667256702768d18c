// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search builds PatentsView keyword queries and fetches matching
// patents. One search is one explicit request/response call: build the
// boolean query from the keyword list, issue a single GET, decode the
// response. Nothing is cached between calls.
package search

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError reports rejected user input or configuration. Callers
// match it with errors.As and render the reason as a user-facing message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Query holds the ordered keyword list for one search.
type Query struct {
	Keywords []string
}

// IsEmpty reports whether the query contains no keywords.
func (q Query) IsEmpty() bool { return len(q.Keywords) == 0 }

// ParseKeywords splits comma-separated user input into an ordered keyword
// list. Parts are whitespace-trimmed and empty parts are dropped.
func ParseKeywords(raw string) Query {
	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return Query{Keywords: keywords}
}

// Query JSON shapes. Each keyword becomes one _text_phrase predicate on
// patent_abstract; the predicates are combined with _and in keyword order.
type abstractPhrase struct {
	PatentAbstract string `json:"patent_abstract"`
}

type phrasePredicate struct {
	TextPhrase abstractPhrase `json:"_text_phrase"`
}

type andQuery struct {
	And []phrasePredicate `json:"_and"`
}

// BuildQuery translates a keyword list into the PatentsView q parameter.
// A single keyword is still wrapped in _and so the query shape is uniform.
func BuildQuery(q Query) (string, error) {
	if q.IsEmpty() {
		return "", &ValidationError{Field: "keywords", Reason: "at least one keyword is required"}
	}

	predicates := make([]phrasePredicate, len(q.Keywords))
	for i, kw := range q.Keywords {
		predicates[i] = phrasePredicate{TextPhrase: abstractPhrase{PatentAbstract: kw}}
	}

	data, err := json.Marshal(andQuery{And: predicates})
	if err != nil {
		return "", fmt.Errorf("encoding query: %w", err)
	}
	return string(data), nil
}

package search

import (
	"errors"
	"reflect"
	"testing"
)

// --- Query ---

func TestQueryIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  bool
	}{
		{"empty", Query{}, true},
		{"nil keywords", Query{Keywords: nil}, true},
		{"one keyword", Query{Keywords: []string{"solar"}}, false},
		{"several keywords", Query{Keywords: []string{"solar", "battery"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single keyword", "solar", []string{"solar"}},
		{"comma separated", "solar,battery", []string{"solar", "battery"}},
		{"whitespace trimmed", "  machine learning , neural network ", []string{"machine learning", "neural network"}},
		{"empty parts dropped", "solar,,battery,", []string{"solar", "battery"}},
		{"only separators", " , ,, ", nil},
		{"empty input", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKeywords(tt.input)
			if !reflect.DeepEqual(got.Keywords, tt.want) {
				t.Errorf("ParseKeywords(%q) = %v, want %v", tt.input, got.Keywords, tt.want)
			}
		})
	}
}

// --- Query translation ---

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "single keyword",
			query: Query{Keywords: []string{"machine learning"}},
			want:  `{"_and":[{"_text_phrase":{"patent_abstract":"machine learning"}}]}`,
		},
		{
			name:  "keyword order preserved",
			query: Query{Keywords: []string{"neural network", "battery"}},
			want:  `{"_and":[{"_text_phrase":{"patent_abstract":"neural network"}},{"_text_phrase":{"patent_abstract":"battery"}}]}`,
		},
		{
			name:  "reversed order is a different query",
			query: Query{Keywords: []string{"battery", "neural network"}},
			want:  `{"_and":[{"_text_phrase":{"patent_abstract":"battery"}},{"_text_phrase":{"patent_abstract":"neural network"}}]}`,
		},
		{
			name:  "quotes escaped",
			query: Query{Keywords: []string{`so-called "smart" grid`}},
			want:  `{"_and":[{"_text_phrase":{"patent_abstract":"so-called \"smart\" grid"}}]}`,
		},
		{
			name:  "backslash escaped",
			query: Query{Keywords: []string{`path\separator`}},
			want:  `{"_and":[{"_text_phrase":{"patent_abstract":"path\\separator"}}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildQuery(tt.query)
			if err != nil {
				t.Fatalf("BuildQuery: %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildQuery() =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

func TestBuildQueryEmpty(t *testing.T) {
	_, err := BuildQuery(Query{})
	if err == nil {
		t.Fatal("expected error for empty query")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if verr.Field != "keywords" {
		t.Errorf("Field = %q, want %q", verr.Field, "keywords")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "keywords", Reason: "at least one keyword is required"}
	want := "invalid keywords: at least one keyword is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

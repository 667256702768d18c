// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "patent-lens/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the PatentsView search stage. The API
// credential is part of the injected configuration; nothing reads it from
// process-global state.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the PatentsView API key sent as the X-Api-Key header.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the PatentsView endpoint. Empty uses the default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// PerPage is the page size requested from the API (default 1000,
	// capped at 1000, the API maximum).
	PerPage int `json:"per_page" yaml:"per_page"`

	// MaxRetries is the number of retry attempts on rate-limited calls.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// InsightConfig holds settings for the insight aggregation stage.
type InsightConfig struct {
	// TopCountries is the size of the country ranking (default 10).
	TopCountries int `json:"top_countries" yaml:"top_countries"`

	// MaxWords is the size of the word-frequency ranking (default 100).
	MaxWords int `json:"max_words" yaml:"max_words"`

	// ExtraStopwords extends the built-in stopword set.
	ExtraStopwords []string `json:"extra_stopwords,omitempty" yaml:"extra_stopwords,omitempty"`
}

// ArchiveConfig holds settings for the search archive.
type ArchiveConfig struct {
	// Dir is the directory holding the archive database (default "archive").
	Dir string `json:"dir" yaml:"dir"`
}

// ServerConfig holds settings for the dashboard server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// OutputConfig holds settings for artifact writers.
type OutputConfig struct {
	// Dir is the directory for generated artifacts (default "output").
	Dir string `json:"dir" yaml:"dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Search   SearchConfig  `json:"search" yaml:"search"`
	Insights InsightConfig `json:"insights" yaml:"insights"`
	Archive  ArchiveConfig `json:"archive" yaml:"archive"`
	Server   ServerConfig  `json:"server" yaml:"server"`
	Output   OutputConfig  `json:"output" yaml:"output"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that talk to the
// network.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "bibcite/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the Crossref metadata client.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is sent as the mailto parameter for Crossref polite-pool
	// access. Usually loaded from the crossref-email secret.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// RequestsPerSecond paces consecutive DOI lookups (default 1).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// RenderConfig holds the default rendering settings; every field can be
// overridden per invocation with a flag.
type RenderConfig struct {
	// Style is the default reference style key (e.g. "ACS").
	Style string `json:"style" yaml:"style"`

	// Format selects the output encoding: plain, rtf, or html.
	Format string `json:"format" yaml:"format"`

	// MaxAuthors caps the author list; 0 uses each style's own default.
	MaxAuthors int `json:"max_authors" yaml:"max_authors"`

	// OmitTitle drops the title segment from every citation.
	OmitTitle bool `json:"omit_title" yaml:"omit_title"`

	// ReverseAuthors swaps the first and last formatted author strings.
	ReverseAuthors bool `json:"reverse_authors" yaml:"reverse_authors"`

	// Sort orders entries before numbering: appearance, author-asc,
	// author-desc, year-asc, or year-desc.
	Sort string `json:"sort" yaml:"sort"`
}

// LibraryConfig holds settings for the local bibliography store.
type LibraryConfig struct {
	// Path is the SQLite database file (default "library.db").
	Path string `json:"path" yaml:"path"`
}

// ServerConfig holds settings for the preview server.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr"`
}

// Config groups all component configurations.
type Config struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Render  RenderConfig  `json:"render" yaml:"render"`
	Library LibraryConfig `json:"library" yaml:"library"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}

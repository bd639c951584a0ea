// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "tissue-classifier/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ArchiveConfig holds settings for SRA archive lookups.
type ArchiveConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is an optional NCBI E-utilities key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// EnrichmentConfig holds settings for BioSample enrichment lookups.
type EnrichmentConfig struct {
	HTTPConfig `yaml:",inline"`
}

// ClassifierConfig holds settings for the generative-text classifier.
type ClassifierConfig struct {
	// Model is the model identifier (e.g. "gemini-1.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the generative-text API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout is the request timeout for classifier calls.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// AugmentConfig holds settings for the CSV batch driver.
type AugmentConfig struct {
	// InputPath is the CSV to read; the first column holds SRX accessions.
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is the augmented CSV to write.
	OutputPath string `json:"output" yaml:"output"`

	// Limit is the maximum number of rows to process from the start
	// (default 20).
	Limit int `json:"limit" yaml:"limit"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Archive    ArchiveConfig    `json:"archive" yaml:"archive"`
	Enrichment EnrichmentConfig `json:"enrichment" yaml:"enrichment"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier"`
	Augment    AugmentConfig    `json:"augment" yaml:"augment"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tissue-classifier/internal/classify"
	"github.com/pdiddy/tissue-classifier/internal/secrets"
	"github.com/pdiddy/tissue-classifier/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "tissue-classifier/0.1"
)

// errMissingAPIKey aborts a run before any processing begins. Commands map
// it to exit code 2.
var errMissingAPIKey = fmt.Errorf("Gemini API key required: pass --api-key or set GEMINI_API_KEY/GOOGLE_API_KEY")

// pipelineConfig assembles the stage configuration from flags, viper, the
// environment, and loaded secrets. Flags win over environment variables,
// which win over .secrets/ files.
func pipelineConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("http.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("classifier.model")
	}
	if model == "" {
		model = classify.DefaultModel
	}

	apiKeyFlag, _ := cmd.Flags().GetString("api-key")
	apiKey := secrets.Resolve(apiKeyFlag, geminiEnvVars, loadedSecrets, "gemini-api-key")
	if apiKey == "" {
		return types.PipelineConfig{}, errMissingAPIKey
	}

	// The NCBI key is optional; E-utilities just allow more requests with one.
	ncbiKey := secrets.Resolve(viper.GetString("archive.api_key"), ncbiEnvVars, loadedSecrets, "ncbi-api-key")

	httpCfg := types.HTTPConfig{
		Timeout:   timeout,
		UserAgent: defaultUserAgent,
	}

	return types.PipelineConfig{
		Archive: types.ArchiveConfig{
			HTTPConfig: httpCfg,
			APIKey:     ncbiKey,
		},
		Enrichment: types.EnrichmentConfig{
			HTTPConfig: httpCfg,
		},
		Classifier: types.ClassifierConfig{
			Model:   model,
			APIKey:  apiKey,
			Timeout: timeout,
		},
	}, nil
}

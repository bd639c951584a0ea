// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tissue-classifier/internal/augment"
	"github.com/pdiddy/tissue-classifier/internal/pipeline"
	"github.com/pdiddy/tissue-classifier/pkg/types"
)

var augmentCmd = &cobra.Command{
	Use:   "augment",
	Short: "Augment a CSV of SRX accessions with classifier output columns",
	Long: `Augment reads a CSV whose first column holds SRX accessions, classifies
up to --limit rows, and writes the table back with three appended columns:
srx_link, summary_5_words, tissue_guess. Rows that fail keep the original
columns and get empty strings in the new ones; the batch never aborts on a
per-record failure.`,
	RunE: runAugment,
}

func init() {
	augmentCmd.Flags().String("input", "", "input CSV path (required)")
	augmentCmd.Flags().String("output", "", "output CSV path (required)")
	augmentCmd.Flags().Int("limit", 20, "number of rows to process from start")
	augmentCmd.Flags().String("api-key", "", "Gemini API key (or set GEMINI_API_KEY/GOOGLE_API_KEY)")
	augmentCmd.Flags().String("model", "", "model identifier (default gemini-1.5-flash)")
	augmentCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	augmentCmd.MarkFlagRequired("input")
	augmentCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(augmentCmd)
}

func runAugment(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		if errors.Is(err, errMissingAPIKey) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	limit, _ := cmd.Flags().GetInt("limit")

	p := pipeline.New(cfg)
	result, err := augment.Run(cmd.Context(), p, types.AugmentConfig{
		InputPath:  input,
		OutputPath: output,
		Limit:      limit,
	}, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d rows to %s\n", result.Written, output)
	return nil
}

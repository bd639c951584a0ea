// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tissue-classifier/internal/pipeline"
)

var classifyCmd = &cobra.Command{
	Use:   "classify SRX",
	Short: "Classify tissue of origin for a single SRX accession",
	Long: `Classify fetches SRA metadata for one SRX accession (e.g. SRX22288182),
optionally enriches it from BioSample, and asks the generative-text model
for a five-word summary and a best-guess tissue type. The result is printed
as JSON (or YAML with --format yaml).`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("api-key", "", "Gemini API key (or set GEMINI_API_KEY/GOOGLE_API_KEY)")
	classifyCmd.Flags().String("model", "", "model identifier (default gemini-1.5-flash)")
	classifyCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	classifyCmd.Flags().String("format", "json", "output format: json or yaml")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		if errors.Is(err, errMissingAPIKey) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}
		return err
	}

	p := pipeline.New(cfg)
	out, err := p.ClassifyRecord(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("classifying %s: %w", args[0], err)
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown format %q (use json or yaml)", format)
	}
	return nil
}

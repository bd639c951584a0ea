// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tissue-classifier CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tissue-classifier/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// Environment variables recognized for the classifier credential, in
// precedence order.
var geminiEnvVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

// ncbiEnvVars are recognized for the optional E-utilities key.
var ncbiEnvVars = []string{"NCBI_API_KEY"}

// rootCmd is the base command for the tissue-classifier CLI.
var rootCmd = &cobra.Command{
	Use:   "tissue-classifier",
	Short: "Classify tissue/cell-of-origin for SRA sequencing experiments",
	Long: `tissue-classifier enriches scRNA-seq experiment records with a
machine-guessed tissue/cell-of-origin classification. It fetches experiment
metadata from the SRA archive, optionally enriches it from BioSample, asks a
generative-text model for a five-word summary and a tissue guess, and merges
the result back.

Use "classify" for a single SRX accession or "augment" to process the first
column of a CSV table row by row.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tissue-classifier.yaml or ~/.config/tissue-classifier/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tissue-classifier")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tissue-classifier"))
		}
	}

	viper.SetEnvPrefix("TISSUE_CLASSIFIER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

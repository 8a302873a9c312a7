// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/insight-engine/internal/corpus"
	"github.com/pdiddy/insight-engine/internal/openalex"
	"github.com/pdiddy/insight-engine/internal/secrets"
	"github.com/pdiddy/insight-engine/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch work records from OpenAlex into a corpus file",
	Long: `Fetch queries the OpenAlex works API for records matching a search query,
optionally bounded to a publication-year range, and writes them to a corpus
file (JSON or YAML, chosen by extension).

An email for the OpenAlex polite pool and an optional premium API key are
read from config, environment, or the .secrets/ directory (openalex-email,
openalex-api-key).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, _ := cmd.Flags().GetString("query")
		fromYear, _ := cmd.Flags().GetInt("from-year")
		toYear, _ := cmd.Flags().GetInt("to-year")
		maxResults, _ := cmd.Flags().GetInt("max-results")
		out, _ := cmd.Flags().GetString("out")

		cfg := types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("http.timeout"),
				UserAgent: viper.GetString("http.userAgent"),
			},
			MaxResults: maxResults,
			MaxRetries: viper.GetInt("fetch.maxRetries"),
		}
		if cfg.MaxResults <= 0 {
			cfg.MaxResults = viper.GetInt("fetch.maxResults")
		}

		client := &openalex.Client{
			HTTP:   &http.Client{Timeout: cfg.Timeout},
			Email:  secrets.Value(loadedSecrets, "openalex-email", viper.GetString("fetch.email")),
			APIKey: secrets.Value(loadedSecrets, "openalex-api-key", viper.GetString("fetch.apiKey")),
		}

		works, err := client.FetchWorks(cmd.Context(), query, fromYear, toYear, cfg)
		if err != nil {
			return err
		}

		if err := corpus.WriteFile(out, works); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Fetched %d works to %s\n", len(works), out)
		return nil
	},
}

func init() {
	fetchCmd.Flags().String("query", "", "free-text search query (required)")
	fetchCmd.Flags().Int("from-year", 0, "earliest publication year (inclusive, 0 = open)")
	fetchCmd.Flags().Int("to-year", 0, "latest publication year (inclusive, 0 = open)")
	fetchCmd.Flags().Int("max-results", 0, "maximum number of works to fetch (default from config)")
	fetchCmd.Flags().String("out", "corpus.json", "output corpus file (.json, .yaml, or .yml)")
	fetchCmd.MarkFlagRequired("query")

	rootCmd.AddCommand(fetchCmd)
}

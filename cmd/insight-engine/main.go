// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the insight-engine CLI. It wires
// corpus acquisition, deny-list cleaning, and topic trend analysis into
// subcommands: fetch, import, clean, trends.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/insight-engine/internal/corpus"
	"github.com/pdiddy/insight-engine/internal/secrets"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the insight-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "insight-engine",
	Short: "Corpus hygiene and topic trend analysis for bibliographic works",
	Long: `insight-engine maintains a corpus of bibliographic work records and analyzes
how research attention shifts over time. It fetches works from OpenAlex,
removes denied and duplicate records using a CSV deny list, and compares
per-topic publication and citation totals across two year windows to label
each topic's trajectory.

Each stage is a subcommand: fetch, import, clean, and trends.`,
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./insight-engine.yaml or ~/.config/insight-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("insight-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "insight-engine"))
		}
	}

	viper.SetEnvPrefix("INSIGHT_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("http.timeout", "30s")
	viper.SetDefault("http.userAgent", "insight-engine/"+version)
	viper.SetDefault("fetch.maxResults", 100)
	viper.SetDefault("fetch.maxRetries", 5)
	viper.SetDefault("corpus.dbPath", "data/corpus.db")

	// Classifier thresholds override leaf by leaf, never wholesale.
	viper.SetDefault("thresholds.strongSurge.pubs", 2.0)
	viper.SetDefault("thresholds.strongSurge.cites", 2.0)
	viper.SetDefault("thresholds.growingPriority.pubs", 1.5)
	viper.SetDefault("thresholds.growingPriority.cites", 1.2)
	viper.SetDefault("thresholds.impactLed.cites", 1.5)
	viper.SetDefault("thresholds.impactLed.pubsMax", 1.0)
	viper.SetDefault("thresholds.outputSoftening.pubs", 1.2)
	viper.SetDefault("thresholds.outputSoftening.citesMax", 0.9)
	viper.SetDefault("thresholds.declineDrop", 0.8)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadWorks reads the corpus either from a file (--corpus) or the SQLite
// store (--db). The file takes precedence when both are set.
func loadWorks(cmd *cobra.Command) ([]types.Work, error) {
	corpusPath, _ := cmd.Flags().GetString("corpus")
	if corpusPath != "" {
		return corpus.ReadFile(corpusPath)
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("corpus.dbPath")
	}
	store, err := corpus.NewStore(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.LoadWorks(cmd.Context())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/insight-engine/internal/corpus"
	"github.com/pdiddy/insight-engine/internal/trends"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Compare per-topic activity across two year windows",
	Long: `Trends aggregates publication and citation totals per topic over one or two
inclusive year windows and labels each topic's trajectory between them
(surging, growing, softening, declining, emerging, absent, impact-led, or
stable). With only period A flags it reports a single-period summary with
no labels.

The corpus is cleaned (deny list plus deduplication) before aggregation so
denied works never influence the counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fromA, _ := cmd.Flags().GetInt("from-a")
		toA, _ := cmd.Flags().GetInt("to-a")
		fromB, _ := cmd.Flags().GetInt("from-b")
		toB, _ := cmd.Flags().GetInt("to-b")
		denyPath, _ := cmd.Flags().GetString("denylist")
		authorID, _ := cmd.Flags().GetString("author")
		sortField, _ := cmd.Flags().GetString("sort")
		descending, _ := cmd.Flags().GetBool("desc")
		asJSON, _ := cmd.Flags().GetBool("json")

		works, err := loadWorks(cmd)
		if err != nil {
			return err
		}

		eng, err := loadDenyList(denyPath)
		if err != nil {
			return err
		}
		works, _ = corpus.Clean(works, eng, authorID)

		opts := trends.Options{
			PeriodA:    trends.YearRange{From: fromA, To: toA},
			Thresholds: thresholdsFromConfig(),
		}
		if cmd.Flags().Changed("from-b") || cmd.Flags().Changed("to-b") {
			opts.PeriodB = &trends.YearRange{From: fromB, To: toB}
		}

		rows := trends.BuildInsights(works, opts)
		if err := trends.SortInsights(rows, trends.SortField(sortField), descending); err != nil {
			return err
		}

		if asJSON {
			return trends.FormatJSON(rows, os.Stdout)
		}
		trends.FormatTable(rows, os.Stdout)
		return nil
	},
}

// thresholdsFromConfig merges config overrides against the built-in
// classifier defaults, leaf by leaf.
func thresholdsFromConfig() trends.Thresholds {
	return trends.Thresholds{
		StrongSurge: trends.SurgeThreshold{
			Pubs:  viper.GetFloat64("thresholds.strongSurge.pubs"),
			Cites: viper.GetFloat64("thresholds.strongSurge.cites"),
		},
		GrowingPriority: trends.SurgeThreshold{
			Pubs:  viper.GetFloat64("thresholds.growingPriority.pubs"),
			Cites: viper.GetFloat64("thresholds.growingPriority.cites"),
		},
		ImpactLed: trends.ImpactLedThreshold{
			Cites:   viper.GetFloat64("thresholds.impactLed.cites"),
			PubsMax: viper.GetFloat64("thresholds.impactLed.pubsMax"),
		},
		OutputSoftening: trends.SofteningThreshold{
			Pubs:     viper.GetFloat64("thresholds.outputSoftening.pubs"),
			CitesMax: viper.GetFloat64("thresholds.outputSoftening.citesMax"),
		},
		DeclineDrop: viper.GetFloat64("thresholds.declineDrop"),
	}
}

func init() {
	trendsCmd.Flags().String("corpus", "", "corpus file to analyze")
	trendsCmd.Flags().String("db", "", "SQLite corpus database path (used when --corpus is not set)")
	trendsCmd.Flags().Int("from-a", 0, "period A start year (inclusive, 0 = open)")
	trendsCmd.Flags().Int("to-a", 0, "period A end year (inclusive, 0 = open)")
	trendsCmd.Flags().Int("from-b", 0, "period B start year (inclusive, 0 = open)")
	trendsCmd.Flags().Int("to-b", 0, "period B end year (inclusive, 0 = open)")
	trendsCmd.Flags().String("denylist", "", "deny-list CSV file applied before aggregation")
	trendsCmd.Flags().String("author", "", "author ID for per-author deny rules")
	trendsCmd.Flags().String("sort", "topic", "sort column: topic, pubsA, pubsB, citesA, citesB, pubsDelta, citesDelta, label")
	trendsCmd.Flags().Bool("desc", false, "sort descending")
	trendsCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(trendsCmd)
}

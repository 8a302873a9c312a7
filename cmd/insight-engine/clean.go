// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/insight-engine/internal/corpus"
	"github.com/pdiddy/insight-engine/internal/exclusion"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove denied and duplicate works from a corpus",
	Long: `Clean applies a CSV deny list to a corpus and removes duplicate records.
Global deny-list rows exclude a work everywhere; per-author rows exclude it
only when --author names that author. Matching is canonical: identifier and
DOI registry prefixes are stripped and titles are slugged, so equivalent
spellings of the same work match.

Without --out the cleaned corpus replaces the input file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		denyPath, _ := cmd.Flags().GetString("denylist")
		authorID, _ := cmd.Flags().GetString("author")
		out, _ := cmd.Flags().GetString("out")

		works, err := loadWorks(cmd)
		if err != nil {
			return err
		}

		eng, err := loadDenyList(denyPath)
		if err != nil {
			return err
		}

		kept, sum := corpus.Clean(works, eng, authorID)

		if out == "" {
			out, _ = cmd.Flags().GetString("corpus")
		}
		if out == "" {
			return fmt.Errorf("no output path: use --out when cleaning from the database")
		}
		if err := corpus.WriteFile(out, kept); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Cleaned corpus: %d kept, %d excluded, %d duplicates removed\n",
			sum.Kept, sum.Excluded, sum.Duplicates)
		return nil
	},
}

// loadDenyList parses a deny-list CSV into an exclusion engine. An empty
// path means no exclusion rules.
func loadDenyList(path string) (*exclusion.Engine, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening deny list: %w", err)
	}
	defer f.Close()

	entries, skipped, err := exclusion.ParseDenyList(f)
	if err != nil {
		return nil, fmt.Errorf("parsing deny list %s: %w", path, err)
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Deny list: %d rows skipped\n", skipped)
	}
	return exclusion.NewEngine(entries), nil
}

func init() {
	cleanCmd.Flags().String("corpus", "", "corpus file to clean")
	cleanCmd.Flags().String("db", "", "SQLite corpus database path (used when --corpus is not set)")
	cleanCmd.Flags().String("denylist", "", "deny-list CSV file")
	cleanCmd.Flags().String("author", "", "author ID for per-author deny rules")
	cleanCmd.Flags().String("out", "", "output corpus file (default: overwrite --corpus)")

	rootCmd.AddCommand(cleanCmd)
}

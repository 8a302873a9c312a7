// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/insight-engine/internal/corpus"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a corpus file into the SQLite store",
	Long: `Import reads work records from a corpus file (JSON or YAML) and upserts
them into the SQLite corpus database. Re-importing the same file is
idempotent: records are keyed by work identifier.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		corpusPath, _ := cmd.Flags().GetString("corpus")
		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			dbPath = viper.GetString("corpus.dbPath")
		}

		works, err := corpus.ReadFile(corpusPath)
		if err != nil {
			return err
		}

		store, err := corpus.NewStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		saved, err := store.SaveWorks(cmd.Context(), works)
		if err != nil {
			return err
		}
		if skipped := len(works) - saved; skipped > 0 {
			fmt.Fprintf(os.Stderr, "Skipped %d works without an identifier\n", skipped)
		}
		fmt.Fprintf(os.Stderr, "Imported %d works into %s\n", saved, dbPath)
		return nil
	},
}

func init() {
	importCmd.Flags().String("corpus", "", "corpus file to import (required)")
	importCmd.Flags().String("db", "", "SQLite corpus database path (default from config)")
	importCmd.MarkFlagRequired("corpus")

	rootCmd.AddCommand(importCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ragcore/internal/corpus"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build or rebuild the local corpus index",
	Long: `Index scans the corpus directory for text files (.jsonl, .md, .tex, .txt),
extracts entities and co-occurrence relationships, and persists the index as
JSON files. An existing index is reused unless --force is given.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().String("corpus-dir", "", "corpus directory to scan")
	indexCmd.Flags().String("index-dir", "", "directory holding the index files")
	indexCmd.Flags().Int("max-results", 0, "default search result cap stored with the index")
	indexCmd.Flags().Bool("force", false, "rebuild even when an index already exists")

	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	ix, err := corpus.NewIndexer(corpusConfig(cmd), os.Stderr)
	if err != nil {
		return err
	}

	summary, err := ix.IndexCorpus(cmd.Context(), force, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("status: %s\n", summary.Status)
	fmt.Printf("documents: %d, entities: %d, relationships: %d\n",
		summary.Documents, summary.Entities, summary.Relationships)
	if summary.Failed > 0 {
		fmt.Printf("failed files: %d\n", summary.Failed)
	}
	return nil
}

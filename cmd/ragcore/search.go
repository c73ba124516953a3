// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ragcore/internal/corpus"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the local corpus index",
	Long: `Search scores indexed documents against the query over content previews,
entities, and filenames, and prints the top hits with match contexts. Run
"ragcore index" first; searching an empty index yields no results.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("corpus-dir", "", "corpus directory")
	searchCmd.Flags().String("index-dir", "", "directory holding the index files")
	searchCmd.Flags().Int("max-results", 0, "maximum number of hits to return")
	searchCmd.Flags().Bool("json", false, "output hits as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	asJSON, _ := cmd.Flags().GetBool("json")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	ix, err := corpus.NewIndexer(corpusConfig(cmd), os.Stderr)
	if err != nil {
		return err
	}

	hits := ix.Search(query, maxResults, os.Stderr)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Println("No matching documents.")
		return nil
	}

	fmt.Printf("Found %d matching documents:\n\n", len(hits))
	for i, hit := range hits {
		fmt.Printf("%d. %s (score %d)\n", i+1, hit.Document.Filename, hit.Score)
		fmt.Printf("   Path: %s\n", hit.Document.Path)
		for _, match := range hit.Matches {
			fmt.Printf("   ... %s ...\n", match)
		}
		fmt.Println()
	}
	return nil
}

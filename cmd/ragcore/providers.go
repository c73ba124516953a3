// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ragcore/internal/retrieval"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List retrieval providers and their availability",
	RunE:  runProviders,
}

func init() {
	providersCmd.Flags().String("corpus-dir", "", "corpus directory")
	providersCmd.Flags().String("index-dir", "", "directory holding the index files")
	providersCmd.Flags().Int("max-results", 0, "unused; accepted for config symmetry")
	providersCmd.Flags().Bool("json", false, "output provider info as JSON")

	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	r := retrieval.NewRetriever(retrievalConfig(cmd), os.Stderr)
	infos := r.AllProviderInfo()

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for _, info := range infos {
		status := "unavailable"
		if info.Available {
			status = "available"
		}
		fmt.Printf("%-8s %-30s %s\n", info.Provider, info.Name, status)
		if info.CorpusStats != nil {
			fmt.Printf("         %d documents, %d entities, %d relationships in %s\n",
				info.CorpusStats.Documents, info.CorpusStats.Entities,
				info.CorpusStats.Relationships, info.CorpusStats.CorpusPath)
		}
	}
	return nil
}

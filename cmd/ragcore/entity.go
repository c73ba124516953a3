// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ragcore/internal/corpus"
)

var entityCmd = &cobra.Command{
	Use:   "entity <name>",
	Short: "Show an entity's documents and relationships",
	Long: `Entity looks up one indexed entity (e.g. "concept:inflation" or
"author:Alice Smith") and lists the documents containing it and the
co-occurrence relationships that touch it.`,
	Args: cobra.ExactArgs(1),
	RunE: runEntity,
}

func init() {
	entityCmd.Flags().String("corpus-dir", "", "corpus directory")
	entityCmd.Flags().String("index-dir", "", "directory holding the index files")
	entityCmd.Flags().Int("max-results", 0, "unused; accepted for config symmetry")
	entityCmd.Flags().Bool("json", false, "output entity info as JSON")

	rootCmd.AddCommand(entityCmd)
}

func runEntity(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	ix, err := corpus.NewIndexer(corpusConfig(cmd), os.Stderr)
	if err != nil {
		return err
	}

	info := ix.EntityInfo(args[0])

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("Entity: %s\n", info.Entity)
	fmt.Printf("Documents: %d\n", len(info.Documents))
	for _, doc := range info.Documents {
		fmt.Printf("  %s (%s)\n", doc.Filename, doc.Path)
	}
	fmt.Printf("Relationships: %d\n", len(info.Relationships))
	for _, rel := range info.Relationships {
		fmt.Printf("  %s %s %s\n", rel.Source, rel.Type, rel.Target)
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ragcore/internal/retrieval"
	"github.com/pdiddy/ragcore/pkg/types"
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve <query>",
	Short: "Retrieve research context through the provider facade",
	Long: `Retrieve routes the query to one provider (web, domain, corpus, or arxiv).
With --fallback the remaining providers are tried in order when the preferred
one yields nothing. Provider failures degrade to empty results with warnings
on stderr; the command itself does not fail.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRetrieve,
}

func init() {
	retrieveCmd.Flags().String("provider", "corpus", "provider: web, domain, corpus, or arxiv")
	retrieveCmd.Flags().Bool("fallback", false, "fall back to other providers on empty results")
	retrieveCmd.Flags().String("corpus-dir", "", "corpus directory")
	retrieveCmd.Flags().String("index-dir", "", "directory holding the index files")
	retrieveCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	retrieveCmd.Flags().Int("max-results", 0, "maximum number of results (default 5)")
	retrieveCmd.Flags().Bool("json", false, "output results as JSON")
	retrieveCmd.Flags().String("save", "", "save the retrieval to a YAML file")

	rootCmd.AddCommand(retrieveCmd)
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	provider, _ := cmd.Flags().GetString("provider")
	fallback, _ := cmd.Flags().GetBool("fallback")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	asJSON, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")

	r := retrieval.NewRetriever(retrievalConfig(cmd), os.Stderr)

	var out []types.RetrievalResult
	if fallback {
		out = r.RetrieveWithFallback(cmd.Context(), query, provider, maxResults)
	} else {
		out = r.Retrieve(cmd.Context(), query, provider, maxResults)
	}

	if savePath != "" {
		if err := retrieval.WriteRetrievalFile(savePath, query, provider, fallback, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved retrieval to %s\n", savePath)
	}

	if asJSON {
		return retrieval.FormatJSON(os.Stdout, out)
	}
	retrieval.FormatResults(os.Stdout, out)
	return nil
}

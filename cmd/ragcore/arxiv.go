// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ragcore/internal/arxiv"
	"github.com/pdiddy/ragcore/pkg/types"
)

var arxivCmd = &cobra.Command{
	Use:   "arxiv <query>",
	Short: "Search arXiv for academic papers",
	Long: `Arxiv queries the arXiv Atom API directly. With --category the query is
restricted to one category (human labels like "cosmology" resolve to category
codes); --recent-days ignores the query and lists recent submissions in the
category instead.`,
	Args: cobra.ArbitraryArgs,
	RunE: runArxiv,
}

func init() {
	arxivCmd.Flags().String("category", "", `category filter (label like "cosmology" or a raw code)`)
	arxivCmd.Flags().Int("recent-days", 0, "list papers submitted in the last N days (requires --category)")
	arxivCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	arxivCmd.Flags().Int("max-results", 0, "maximum number of papers (default 10)")
	arxivCmd.Flags().Bool("json", false, "output papers as JSON")

	rootCmd.AddCommand(arxivCmd)
}

func runArxiv(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	recentDays, _ := cmd.Flags().GetInt("recent-days")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	asJSON, _ := cmd.Flags().GetBool("json")

	client := arxiv.NewClient(arxivConfig(cmd))

	var papers []types.ArxivPaper
	var err error
	switch {
	case recentDays > 0:
		if category == "" {
			return fmt.Errorf("--recent-days requires --category")
		}
		papers, err = client.RecentPapers(cmd.Context(), category, recentDays, maxResults)
	case category != "":
		papers, err = client.SearchByCategory(cmd.Context(), category, maxResults)
	case len(args) > 0:
		papers, err = client.Search(cmd.Context(), strings.Join(args, " "), maxResults)
	default:
		return fmt.Errorf("provide a query or --category")
	}
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	}

	arxiv.FormatPapers(os.Stdout, papers)
	return nil
}

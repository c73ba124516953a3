// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ragcore/pkg/types"
)

const defaultUserAgent = "ragcore/0.1"

// corpusConfig resolves corpus settings from command flags with config-file
// fallbacks for the directories.
func corpusConfig(cmd *cobra.Command) types.CorpusConfig {
	corpusDir, _ := cmd.Flags().GetString("corpus-dir")
	if corpusDir == "" {
		corpusDir = viper.GetString("corpus.dir")
	}
	indexDir, _ := cmd.Flags().GetString("index-dir")
	if indexDir == "" {
		indexDir = viper.GetString("corpus.index_dir")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.CorpusConfig{
		CorpusDir:  corpusDir,
		IndexDir:   indexDir,
		MaxResults: maxResults,
	}
}

// arxivConfig resolves arXiv client settings from command flags.
func arxivConfig(cmd *cobra.Command) types.ArxivConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("arxiv.timeout")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.ArxivConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		MaxResults: maxResults,
	}
}

// retrievalConfig assembles the full facade configuration. The web-search
// key resolves flag, then config file, then the loaded secret; the adapter
// itself falls back to the environment.
func retrievalConfig(cmd *cobra.Command) types.RetrievalConfig {
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.RetrievalConfig{
		Corpus:          corpusConfig(cmd),
		Arxiv:           arxivConfig(cmd),
		WebSearchAPIKey: secretDefault("perplexity-api-key", viper.GetString("web_search_api_key")),
		MaxResults:      maxResults,
	}
}

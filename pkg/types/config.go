package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "ragcore/0.1"). Per prd003-arxiv R5.2.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CorpusConfig holds settings for the local corpus index.
// Per prd001-corpus-index R1.1, prd002-local-search R2.3.
type CorpusConfig struct {
	// CorpusDir is the root directory scanned for corpus files.
	CorpusDir string `json:"corpus_dir" yaml:"corpus_dir"`

	// IndexDir is where documents.json, entities.json, and
	// relationships.json are persisted.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of search results (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ArxivConfig holds settings for the arXiv client.
// Per prd003-arxiv R1.3, R5.1.
type ArxivConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the default maximum number of papers per query (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// RetrievalConfig groups the provider configurations for the unified
// retriever. Per prd004-providers R2.1-R2.4.
type RetrievalConfig struct {
	Corpus CorpusConfig `json:"corpus" yaml:"corpus"`
	Arxiv  ArxivConfig  `json:"arxiv" yaml:"arxiv"`

	// WebSearchAPIKey gates the web-search provider. When empty the
	// provider reports unavailable.
	WebSearchAPIKey string `json:"web_search_api_key,omitempty" yaml:"web_search_api_key,omitempty"`

	// MaxResults is the default result cap applied when a caller passes
	// zero (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

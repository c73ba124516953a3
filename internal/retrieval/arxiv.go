// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieval

import (
	"context"

	"github.com/pdiddy/ragcore/internal/arxiv"
	"github.com/pdiddy/ragcore/pkg/types"
)

// arxivAdapter fronts the arXiv API client, constructed lazily on first
// use like the corpus adapter (R2.4).
type arxivAdapter struct {
	cfg types.ArxivConfig

	client *arxiv.Client
}

func (a *arxivAdapter) ProviderName() string { return ProviderArxiv.DisplayName() }

func (a *arxivAdapter) Available() bool { return true }

func (a *arxivAdapter) Retrieve(ctx context.Context, query string, maxResults int) ([]types.RetrievalResult, error) {
	if a.client == nil {
		a.client = arxiv.NewClient(a.cfg)
	}

	papers, err := a.client.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	results := make([]types.RetrievalResult, 0, len(papers))
	for _, paper := range papers {
		results = append(results, a.paperToResult(paper))
	}
	return results, nil
}

func (a *arxivAdapter) paperToResult(paper types.ArxivPaper) types.RetrievalResult {
	url := paper.AbstractURL
	if url == "" && paper.ArxivID != "" {
		url = "https://arxiv.org/abs/" + paper.ArxivID
	}

	return types.RetrievalResult{
		Title:    paper.Title,
		URL:      url,
		DOI:      paper.DOI,
		Content:  paper.Summary,
		Score:    1.0, // the feed carries no per-entry score
		Provider: a.ProviderName(),
		Metadata: map[string]any{
			"authors":    paper.Authors,
			"arxiv_id":   paper.ArxivID,
			"categories": paper.Categories,
			"published":  paper.Published,
			"type":       "arxiv_paper",
		},
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieval

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/ragcore/internal/corpus"
	"github.com/pdiddy/ragcore/pkg/types"
)

// corpusAdapter fronts the local corpus index. The indexer is constructed
// lazily on the first Retrieve and the corpus indexed then if no index was
// loaded from disk; once built the adapter stays ready and never reverts
// (R2.3).
type corpusAdapter struct {
	cfg  types.CorpusConfig
	warn io.Writer

	indexer *corpus.Indexer
}

func (a *corpusAdapter) ProviderName() string { return ProviderCorpus.DisplayName() }

// Available reports true regardless of corpus contents: an empty corpus is
// a valid, searchable state.
func (a *corpusAdapter) Available() bool { return true }

// backend returns the lazily constructed indexer, building the index on
// first use when none was persisted.
func (a *corpusAdapter) backend(ctx context.Context) (*corpus.Indexer, error) {
	if a.indexer != nil {
		return a.indexer, nil
	}

	ix, err := corpus.NewIndexer(a.cfg, a.warn)
	if err != nil {
		return nil, err
	}
	if ix.Stats().Documents == 0 {
		fmt.Fprintln(a.warn, "no corpus index found, building one")
		if _, err := ix.IndexCorpus(ctx, false, a.warn); err != nil {
			return nil, err
		}
	}

	a.indexer = ix
	return a.indexer, nil
}

func (a *corpusAdapter) Retrieve(ctx context.Context, query string, maxResults int) ([]types.RetrievalResult, error) {
	ix, err := a.backend(ctx)
	if err != nil {
		return nil, err
	}

	hits := ix.Search(query, maxResults, a.warn)

	results := make([]types.RetrievalResult, 0, len(hits))
	for _, hit := range hits {
		doc := hit.Document

		entities := doc.Entities
		if len(entities) > 5 {
			entities = entities[:5]
		}

		results = append(results, types.RetrievalResult{
			Title:    doc.Filename,
			URL:      "file://" + doc.Path,
			Content:  doc.Content,
			Score:    float64(hit.Score),
			Provider: a.ProviderName(),
			Metadata: map[string]any{
				"matches":  hit.Matches,
				"entities": entities,
				"type":     "local_corpus",
			},
		})
	}
	return results, nil
}

// Stats reports index counts for provider info. Before the first Retrieve
// the backend does not exist yet and the counts are zero; consulting stats
// must not trigger an index build.
func (a *corpusAdapter) Stats() types.CorpusStats {
	if a.indexer == nil {
		return types.CorpusStats{CorpusPath: a.cfg.CorpusDir}
	}
	return a.indexer.Stats()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieval

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/ragcore/pkg/types"
)

const defaultMaxResults = 5

// Retriever is the unified facade over all providers. The host constructs
// one Retriever and passes it to callers; there are no package-level
// instances. Adapters are built once here, so expensive backends (corpus
// index, HTTP client) are constructed a single time and reused.
//
// No error crosses the Retriever boundary: every failure degrades to an
// empty result list plus a warning on the configured writer. Retrieval
// augments generation rather than gating it, so availability wins over
// fail-fast (R4.1-R4.5).
type Retriever struct {
	adapters   map[Provider]Adapter
	maxResults int
	warn       io.Writer
}

// NewRetriever builds the facade with one adapter per provider. warn
// receives warnings and fallback notices; nil means os.Stderr.
func NewRetriever(cfg types.RetrievalConfig, warn io.Writer) *Retriever {
	if warn == nil {
		warn = os.Stderr
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	return &Retriever{
		adapters: map[Provider]Adapter{
			ProviderWeb:    &webAdapter{apiKey: cfg.WebSearchAPIKey},
			ProviderDomain: &domainAdapter{},
			ProviderCorpus: &corpusAdapter{cfg: cfg.Corpus, warn: warn},
			ProviderArxiv:  &arxivAdapter{cfg: cfg.Arxiv},
		},
		maxResults: maxResults,
		warn:       warn,
	}
}

// Retrieve resolves providerName, checks availability fresh, and delegates
// to the matching adapter. An unknown name is a caller-contract violation:
// it is logged as an error rather than a warning and yields an empty
// result (R4.2, R4.4).
func (r *Retriever) Retrieve(ctx context.Context, query, providerName string, maxResults int) []types.RetrievalResult {
	provider, err := ParseProvider(providerName)
	if err != nil {
		fmt.Fprintf(r.warn, "error: %v\n", err)
		return nil
	}
	return r.retrieve(ctx, query, provider, maxResults)
}

func (r *Retriever) retrieve(ctx context.Context, query string, provider Provider, maxResults int) []types.RetrievalResult {
	if maxResults <= 0 {
		maxResults = r.maxResults
	}

	adapter := r.adapters[provider]

	// Availability is computed per call; credentials and corpus state can
	// change while the process runs.
	if !adapter.Available() {
		fmt.Fprintf(r.warn, "warning: provider %s not available\n", provider.DisplayName())
		return nil
	}

	results, err := adapter.Retrieve(ctx, query, maxResults)
	if err != nil {
		fmt.Fprintf(r.warn, "warning: retrieval failed for %s: %v\n", provider.DisplayName(), err)
		return nil
	}
	return results
}

// RetrieveWithFallback tries the preferred provider first. If it yields
// nothing, the remaining available providers are tried strictly
// sequentially in declaration order and the first non-empty result set
// wins; empty comes back only when every available provider yields
// nothing (R4.3).
func (r *Retriever) RetrieveWithFallback(ctx context.Context, query, preferredName string, maxResults int) []types.RetrievalResult {
	preferred, err := ParseProvider(preferredName)
	if err != nil {
		fmt.Fprintf(r.warn, "error: %v\n", err)
		return nil
	}

	if results := r.retrieve(ctx, query, preferred, maxResults); len(results) > 0 {
		return results
	}

	for _, provider := range r.AvailableProviders() {
		if provider == preferred {
			continue
		}
		if results := r.retrieve(ctx, query, provider, maxResults); len(results) > 0 {
			fmt.Fprintf(r.warn, "using fallback provider: %s\n", provider.DisplayName())
			return results
		}
	}

	fmt.Fprintln(r.warn, "warning: all providers failed or unavailable")
	return nil
}

// AvailableProviders lists the providers reporting available, in
// declaration order.
func (r *Retriever) AvailableProviders() []Provider {
	var available []Provider
	for _, p := range Providers {
		if r.adapters[p].Available() {
			available = append(available, p)
		}
	}
	return available
}

// ProviderInfo describes one provider's current state.
type ProviderInfo struct {
	Provider  Provider `json:"provider"`
	Name      string   `json:"name"`
	Available bool     `json:"available"`

	// CorpusStats is set for the corpus provider only.
	CorpusStats *types.CorpusStats `json:"corpus_stats,omitempty"`
}

// ProviderInfo resolves providerName and reports its state. Unknown names
// return an error rather than the facade's usual degradation: callers ask
// for info explicitly and deserve the diagnosis.
func (r *Retriever) ProviderInfo(providerName string) (ProviderInfo, error) {
	provider, err := ParseProvider(providerName)
	if err != nil {
		return ProviderInfo{}, err
	}

	adapter := r.adapters[provider]
	info := ProviderInfo{
		Provider:  provider,
		Name:      adapter.ProviderName(),
		Available: adapter.Available(),
	}

	if ca, ok := adapter.(*corpusAdapter); ok {
		stats := ca.Stats()
		info.CorpusStats = &stats
	}
	return info, nil
}

// AllProviderInfo reports every provider in declaration order.
func (r *Retriever) AllProviderInfo() []ProviderInfo {
	infos := make([]ProviderInfo, 0, len(Providers))
	for _, p := range Providers {
		info, _ := r.ProviderInfo(string(p))
		infos = append(infos, info)
	}
	return infos
}

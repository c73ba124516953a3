// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retrieval unifies the retrieval providers (web search, static
// domain knowledge, local corpus, arXiv) behind one adapter contract and
// a facade with fallback chaining.
// Implements: prd004-providers (R1-R5); docs/ARCHITECTURE.md § Providers.
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/ragcore/pkg/types"
)

// Provider identifies one retrieval backend. The set is closed; fallback
// iterates Providers in declaration order.
type Provider string

const (
	ProviderWeb    Provider = "web"
	ProviderDomain Provider = "domain"
	ProviderCorpus Provider = "corpus"
	ProviderArxiv  Provider = "arxiv"
)

// Providers fixes the declaration order used for fallback chaining and
// provider listings.
var Providers = []Provider{ProviderWeb, ProviderDomain, ProviderCorpus, ProviderArxiv}

// displayNames are the human-readable provider labels shown in results
// and UI listings.
var displayNames = map[Provider]string{
	ProviderWeb:    "Perplexity (web)",
	ProviderDomain: "Domain (Planck/CAMB/CLASSY)",
	ProviderCorpus: "GraphRAG (local corpus)",
	ProviderArxiv:  "arXiv (academic papers)",
}

// DisplayName returns the human-readable label for p.
func (p Provider) DisplayName() string {
	return displayNames[p]
}

// ParseProvider resolves a provider identifier or display name. The match
// on identifiers is case-insensitive; display names match exactly.
func ParseProvider(name string) (Provider, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Providers {
		if lower == string(p) || name == p.DisplayName() {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown provider %q", name)
}

// Adapter is the capability contract every provider implements. Retrieve
// returns results in provider order; Available reports whether the
// provider can serve calls right now; it must be re-evaluated per call
// because credentials and corpus state can change at runtime.
type Adapter interface {
	Retrieve(ctx context.Context, query string, maxResults int) ([]types.RetrievalResult, error)
	Available() bool
	ProviderName() string
}

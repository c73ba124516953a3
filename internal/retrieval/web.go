// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieval

import (
	"context"
	"os"

	"github.com/pdiddy/ragcore/pkg/types"
)

// webEnvVar is consulted when no credential was configured, so a key
// exported after construction still makes the provider available.
const webEnvVar = "PERPLEXITY_API_KEY"

// webAdapter fronts the Perplexity web-search provider. The live API call
// is not implemented; Retrieve always substitutes a clearly synthetic
// placeholder carrying a fallback metadata flag, which callers must treat
// as low-confidence (R2.2).
type webAdapter struct {
	apiKey string
}

func (a *webAdapter) ProviderName() string { return ProviderWeb.DisplayName() }

// Available reports whether a web-search credential is present, checking
// the configured key first and the environment on every call.
func (a *webAdapter) Available() bool {
	return a.apiKey != "" || os.Getenv(webEnvVar) != ""
}

func (a *webAdapter) Retrieve(_ context.Context, query string, _ int) ([]types.RetrievalResult, error) {
	return []types.RetrievalResult{
		{
			Title:    "Web Search Fallback",
			URL:      "https://perplexity.ai",
			Content:  "Perplexity search for: " + query,
			Score:    1.0,
			Provider: a.ProviderName(),
			Metadata: map[string]any{
				"fallback": true,
				"query":    query,
			},
		},
	}, nil
}

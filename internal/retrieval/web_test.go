package retrieval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebAdapterAvailability(t *testing.T) {
	t.Setenv(webEnvVar, "")

	a := &webAdapter{}
	assert.False(t, a.Available())

	a.apiKey = "sk-test"
	assert.True(t, a.Available())

	// The environment is consulted on every call when no key is configured.
	a.apiKey = ""
	t.Setenv(webEnvVar, "sk-env")
	assert.True(t, a.Available())
}

func TestWebAdapterPlaceholder(t *testing.T) {
	a := &webAdapter{apiKey: "sk-test"}

	results, err := a.Retrieve(context.Background(), "dark energy", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, "Web Search Fallback", got.Title)
	assert.Equal(t, "https://perplexity.ai", got.URL)
	assert.Contains(t, got.Content, "dark energy")
	assert.Equal(t, ProviderWeb.DisplayName(), got.Provider)
	assert.Equal(t, true, got.Metadata["fallback"])
	assert.Equal(t, "dark energy", got.Metadata["query"])
}

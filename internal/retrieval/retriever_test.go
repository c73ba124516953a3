package retrieval

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/ragcore/pkg/types"
)

// mockAdapter scripts one provider's behavior for facade tests.
type mockAdapter struct {
	provider  Provider
	available bool
	results   []types.RetrievalResult
	err       error

	retrieveCalls  int
	availableCalls int
}

func (m *mockAdapter) ProviderName() string { return m.provider.DisplayName() }

func (m *mockAdapter) Available() bool {
	m.availableCalls++
	return m.available
}

func (m *mockAdapter) Retrieve(_ context.Context, _ string, _ int) ([]types.RetrievalResult, error) {
	m.retrieveCalls++
	return m.results, m.err
}

func result(title string) types.RetrievalResult {
	return types.RetrievalResult{Title: title, Score: 1.0}
}

// testRetriever wires mocks for all four providers; per-test overrides
// replace individual entries.
func testRetriever(warn *bytes.Buffer) (*Retriever, map[Provider]*mockAdapter) {
	mocks := map[Provider]*mockAdapter{}
	adapters := map[Provider]Adapter{}
	for _, p := range Providers {
		m := &mockAdapter{provider: p, available: true}
		mocks[p] = m
		adapters[p] = m
	}
	return &Retriever{adapters: adapters, maxResults: defaultMaxResults, warn: warn}, mocks
}

func TestRetrieveUnknownProvider(t *testing.T) {
	var warn bytes.Buffer
	r, mocks := testRetriever(&warn)

	got := r.Retrieve(context.Background(), "q", "bing", 0)
	assert.Nil(t, got)
	assert.Contains(t, warn.String(), "unknown provider")
	for _, m := range mocks {
		assert.Zero(t, m.retrieveCalls)
	}
}

func TestRetrieveUnavailableProvider(t *testing.T) {
	var warn bytes.Buffer
	r, mocks := testRetriever(&warn)
	mocks[ProviderWeb].available = false

	got := r.Retrieve(context.Background(), "q", "web", 0)
	assert.Nil(t, got)
	assert.Contains(t, warn.String(), "not available")
	assert.Zero(t, mocks[ProviderWeb].retrieveCalls)
}

func TestRetrieveAdapterErrorDegrades(t *testing.T) {
	var warn bytes.Buffer
	r, mocks := testRetriever(&warn)
	mocks[ProviderArxiv].err = errors.New("connection refused")

	got := r.Retrieve(context.Background(), "q", "arxiv", 0)
	assert.Nil(t, got)
	assert.Contains(t, warn.String(), "retrieval failed")
	assert.Contains(t, warn.String(), "connection refused")
}

func TestRetrieveChecksAvailabilityPerCall(t *testing.T) {
	var warn bytes.Buffer
	r, mocks := testRetriever(&warn)
	web := mocks[ProviderWeb]
	web.results = []types.RetrievalResult{result("hit")}

	web.available = false
	assert.Nil(t, r.Retrieve(context.Background(), "q", "web", 0))

	// A credential appearing between calls flips the outcome.
	web.available = true
	got := r.Retrieve(context.Background(), "q", "web", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "hit", got[0].Title)
	assert.Equal(t, 2, web.availableCalls)
}

func TestFallbackPreferredWins(t *testing.T) {
	var warn bytes.Buffer
	r, mocks := testRetriever(&warn)
	mocks[ProviderCorpus].results = []types.RetrievalResult{result("corpus hit")}
	mocks[ProviderWeb].results = []types.RetrievalResult{result("web hit")}

	got := r.RetrieveWithFallback(context.Background(), "q", "corpus", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "corpus hit", got[0].Title)
	assert.Zero(t, mocks[ProviderWeb].retrieveCalls)
	assert.NotContains(t, warn.String(), "fallback")
}

func TestFallbackDeclarationOrder(t *testing.T) {
	var warn bytes.Buffer
	r, mocks := testRetriever(&warn)
	// Preferred corpus yields nothing; web and domain both could serve, and
	// web precedes domain in declaration order.
	mocks[ProviderWeb].results = []types.RetrievalResult{result("web hit")}
	mocks[ProviderDomain].results = []types.RetrievalResult{result("domain hit")}

	got := r.RetrieveWithFallback(context.Background(), "q", "corpus", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "web hit", got[0].Title)
	assert.Zero(t, mocks[ProviderDomain].retrieveCalls)
	assert.Contains(t, warn.String(), "using fallback provider: Perplexity (web)")
}

func TestFallbackSkipsUnavailableAndEmpty(t *testing.T) {
	var warn bytes.Buffer
	r, mocks := testRetriever(&warn)
	mocks[ProviderWeb].available = false
	mocks[ProviderDomain].results = nil // available but empty
	mocks[ProviderArxiv].results = []types.RetrievalResult{result("arxiv hit")}

	got := r.RetrieveWithFallback(context.Background(), "q", "corpus", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "arxiv hit", got[0].Title)
	assert.Zero(t, mocks[ProviderWeb].retrieveCalls)
	assert.Equal(t, 1, mocks[ProviderDomain].retrieveCalls)
}

func TestFallbackAllEmpty(t *testing.T) {
	var warn bytes.Buffer
	r, _ := testRetriever(&warn)

	got := r.RetrieveWithFallback(context.Background(), "q", "web", 0)
	assert.Nil(t, got)
	assert.Contains(t, warn.String(), "all providers failed or unavailable")
}

func TestFallbackUnknownPreferred(t *testing.T) {
	var warn bytes.Buffer
	r, mocks := testRetriever(&warn)
	mocks[ProviderDomain].results = []types.RetrievalResult{result("domain hit")}

	got := r.RetrieveWithFallback(context.Background(), "q", "nope", 0)
	assert.Nil(t, got)
	assert.Contains(t, warn.String(), "unknown provider")
}

func TestAvailableProviders(t *testing.T) {
	var warn bytes.Buffer
	r, mocks := testRetriever(&warn)
	mocks[ProviderWeb].available = false
	mocks[ProviderCorpus].available = false

	got := r.AvailableProviders()
	assert.Equal(t, []Provider{ProviderDomain, ProviderArxiv}, got)
}

func TestProviderInfoUnknown(t *testing.T) {
	var warn bytes.Buffer
	r, _ := testRetriever(&warn)

	_, err := r.ProviderInfo("bing")
	require.Error(t, err)
}

func TestAllProviderInfo(t *testing.T) {
	var warn bytes.Buffer
	r, mocks := testRetriever(&warn)
	mocks[ProviderArxiv].available = false

	infos := r.AllProviderInfo()
	require.Len(t, infos, len(Providers))
	for i, p := range Providers {
		assert.Equal(t, p, infos[i].Provider)
		assert.Equal(t, p.DisplayName(), infos[i].Name)
	}
	assert.False(t, infos[3].Available)
}

func TestNewRetrieverWiresAllProviders(t *testing.T) {
	r := NewRetriever(types.RetrievalConfig{}, &bytes.Buffer{})
	require.Len(t, r.adapters, len(Providers))
	for _, p := range Providers {
		assert.NotNil(t, r.adapters[p], "missing adapter for %s", p)
	}
	assert.Equal(t, defaultMaxResults, r.maxResults)
}

func TestProviderInfoCorpusStats(t *testing.T) {
	cfg := types.RetrievalConfig{
		Corpus: types.CorpusConfig{CorpusDir: "/data/corpus", IndexDir: t.TempDir()},
	}
	r := NewRetriever(cfg, &bytes.Buffer{})

	info, err := r.ProviderInfo("corpus")
	require.NoError(t, err)
	require.NotNil(t, info.CorpusStats)
	// Stats before any retrieval must not trigger an index build.
	assert.Equal(t, 0, info.CorpusStats.Documents)
	assert.Equal(t, "/data/corpus", info.CorpusStats.CorpusPath)
}

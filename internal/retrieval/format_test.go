package retrieval

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/ragcore/pkg/types"
)

func TestFormatResults(t *testing.T) {
	results := []types.RetrievalResult{
		{
			Title:    "Constraints on Inflation",
			URL:      "http://arxiv.org/abs/2301.00001v2",
			DOI:      "10.48550/arXiv.2301.00001v2",
			Content:  strings.Repeat("x", 250),
			Score:    1.0,
			Provider: "arXiv (academic papers)",
			Metadata: map[string]any{
				"authors":    []string{"A One", "B Two", "C Three", "D Four"},
				"categories": []any{"astro-ph.CO", "gr-qc", "hep-th"},
			},
		},
		{
			Title:    "notes.md",
			Provider: "GraphRAG (local corpus)",
		},
	}

	var buf bytes.Buffer
	FormatResults(&buf, results)
	out := buf.String()

	assert.Contains(t, out, "Found 2 relevant documents:")
	assert.Contains(t, out, "1. Constraints on Inflation")
	assert.Contains(t, out, "DOI: https://doi.org/10.48550/arXiv.2301.00001v2")
	assert.Contains(t, out, "URL: http://arxiv.org/abs/2301.00001v2")
	assert.Contains(t, out, "Authors: A One, B Two, C Three et al. (4 total)")
	assert.Contains(t, out, "Categories: astro-ph.CO, gr-qc")
	assert.NotContains(t, out, "hep-th")
	assert.Contains(t, out, strings.Repeat("x", 200)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 201))
	assert.Contains(t, out, "2. notes.md")
}

func TestFormatResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatResults(&buf, nil)
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestFormatJSON(t *testing.T) {
	results := []types.RetrievalResult{{Title: "notes.md", Score: 3}}

	var buf bytes.Buffer
	require.NoError(t, FormatJSON(&buf, results))

	var got []types.RetrievalResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "notes.md", got[0].Title)
	assert.Equal(t, 3.0, got[0].Score)
}

func TestMetadataStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, metadataStrings([]string{"a", "b"}))
	assert.Equal(t, []string{"a"}, metadataStrings([]any{"a", 42}))
	assert.Nil(t, metadataStrings(nil))
	assert.Nil(t, metadataStrings("scalar"))
}

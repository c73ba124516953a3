// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieval

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/ragcore/pkg/types"
)

// FormatResults writes a numbered, human-readable listing of results to w.
func FormatResults(w io.Writer, results []types.RetrievalResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "Found %d relevant documents:\n\n", len(results))

	for i, result := range results {
		fmt.Fprintf(w, "%d. %s\n", i+1, result.Title)

		if result.DOI != "" {
			fmt.Fprintf(w, "   DOI: https://doi.org/%s\n", result.DOI)
		}
		if result.URL != "" {
			fmt.Fprintf(w, "   URL: %s\n", result.URL)
		}

		if authors := metadataStrings(result.Metadata["authors"]); len(authors) > 0 {
			shown := authors
			if len(shown) > 3 {
				shown = shown[:3]
			}
			fmt.Fprintf(w, "   Authors: %s", strings.Join(shown, ", "))
			if len(authors) > 3 {
				fmt.Fprintf(w, " et al. (%d total)", len(authors))
			}
			fmt.Fprintln(w)
		}

		if cats := metadataStrings(result.Metadata["categories"]); len(cats) > 0 {
			if len(cats) > 2 {
				cats = cats[:2]
			}
			fmt.Fprintf(w, "   Categories: %s\n", strings.Join(cats, ", "))
		}

		if result.Content != "" {
			preview := result.Content
			if len(preview) > 200 {
				preview = preview[:200] + "..."
			}
			fmt.Fprintf(w, "   Content: %s\n", preview)
		}

		fmt.Fprintf(w, "   Provider: %s\n\n", result.Provider)
	}
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(w io.Writer, results []types.RetrievalResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// metadataStrings coerces a metadata value to a string slice. Values built
// in-process are []string; values reloaded from a YAML or JSON retrieval
// file come back as []any.
func metadataStrings(v any) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

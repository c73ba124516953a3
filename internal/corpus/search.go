// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/ragcore/pkg/types"
)

// SearchHit pairs a matching document with its score and the contexts
// around the query occurrences in the content preview.
type SearchHit struct {
	Document types.IndexedDocument `json:"document"`
	Score    int                   `json:"score"`
	Matches  []string              `json:"matches"`
}

// Search scores every indexed document against query and returns the top
// maxResults hits, ordered by descending score with ties kept in document
// insertion order (prd002-local-search R1-R3).
//
// Scoring is additive over case-insensitive substring tests: a content
// preview match counts 2, each entity containing the query counts 1, a
// filename match counts 1. Zero-score documents are excluded.
//
// An empty index yields an empty result (distinct from "no matches") and
// a warning on w.
func (ix *Indexer) Search(query string, maxResults int, w io.Writer) []SearchHit {
	if len(ix.documents) == 0 {
		fmt.Fprintln(w, "warning: no documents indexed, run index first")
		return nil
	}

	if maxResults <= 0 {
		maxResults = ix.maxResults
	}
	queryLower := strings.ToLower(query)

	var hits []SearchHit
	for _, id := range ix.docOrder {
		doc, ok := ix.documents[id]
		if !ok {
			continue
		}

		score := 0
		if strings.Contains(strings.ToLower(doc.Content), queryLower) {
			score += 2
		}
		for _, entity := range doc.Entities {
			if strings.Contains(strings.ToLower(entity), queryLower) {
				score++
			}
		}
		if strings.Contains(strings.ToLower(doc.Filename), queryLower) {
			score++
		}

		if score > 0 {
			hits = append(hits, SearchHit{
				Document: doc,
				Score:    score,
				Matches:  matchContexts(doc.Content, query),
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}
	return hits
}

// matchContexts finds up to 3 occurrences of query in content and expands
// each to 100 characters of surrounding context on both sides, clipped to
// the content bounds (R4.2).
func matchContexts(content, query string) []string {
	contentLower := strings.ToLower(content)
	queryLower := strings.ToLower(query)

	var matches []string
	start := 0
	for len(matches) < 3 && start <= len(content) {
		pos := strings.Index(contentLower[start:], queryLower)
		if pos < 0 {
			break
		}
		pos += start

		ctxStart := max(0, pos-100)
		ctxEnd := min(len(content), pos+len(query)+100)
		matches = append(matches, strings.TrimSpace(content[ctxStart:ctxEnd]))

		start = pos + 1
	}
	return matches
}

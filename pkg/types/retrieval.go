// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the ragcore retrieval
// pipeline.
// Implements: prd004-providers (RetrievalResult, R1.1);
//
//	prd001-corpus-index (IndexedDocument, Relationship);
//	prd003-arxiv (ArxivPaper).
//
// See docs/ARCHITECTURE.md § Data Structures.
package types

// RetrievalResult is the canonical output unit shared by every retrieval
// provider. Per prd004-providers R1.1, adapters emit only this shape;
// provider-specific fields (authors, categories, arXiv id, published date,
// fallback flag) live in Metadata.
//
// A RetrievalResult is constructed fresh per retrieval call and owned by
// the caller; it is never persisted.
type RetrievalResult struct {
	// Title is the document or paper title.
	Title string `json:"title" yaml:"title"`

	// URL locates the document (https:// for remote sources, file:// for
	// local corpus hits).
	URL string `json:"url" yaml:"url"`

	// DOI is the digital object identifier when one is known or derivable.
	// Empty means absent.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Content is the retrieved text: an abstract, a content preview, or a
	// context blurb depending on the provider.
	Content string `json:"content" yaml:"content"`

	// Score is the provider-assigned relevance score. Providers without a
	// native score use 1.0; the zero value means unscored.
	Score float64 `json:"score" yaml:"score"`

	// Provider is the human-readable name of the provider that produced
	// this result.
	Provider string `json:"provider" yaml:"provider"`

	// Metadata absorbs provider-specific fields. Never nil after
	// construction through an adapter.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Relationship is a co-occurrence edge between two entities extracted from
// one document. Relationships are derived during indexing, never created
// independently; the source/target order follows the document's entity
// list order. Per prd001-corpus-index R3.1-R3.3.
type Relationship struct {
	// Source is the first entity of the pair (prefixed form, e.g.
	// "concept:cosmology").
	Source string `json:"source" yaml:"source"`

	// Target is the second entity of the pair.
	Target string `json:"target" yaml:"target"`

	// Type is always "co_occurs_with".
	Type string `json:"type" yaml:"type"`

	// Strength is always 1.0 in the current extraction.
	Strength float64 `json:"strength" yaml:"strength"`
}

// IndexedDocument is one corpus file's entry in the index. Created during
// a corpus scan and overwritten wholesale on reindex; the ID is stable
// across rebuilds as long as the path is unchanged.
// Per prd001-corpus-index R1.2, R2.1-R2.5.
type IndexedDocument struct {
	// ID is a fingerprint of the absolute file path (md5, first 16 hex chars).
	ID string `json:"id" yaml:"id"`

	// Path is the file's path as seen by the scan.
	Path string `json:"path" yaml:"path"`

	// Filename is the base name of the file.
	Filename string `json:"filename" yaml:"filename"`

	// Content is the first 1000 characters of the file, kept for preview
	// and match-context extraction. The full content is not retained.
	Content string `json:"content" yaml:"content"`

	// Entities are the typed tokens extracted from the full content,
	// deduplicated within this document. Prefixes: doi:, arxiv:, author:,
	// concept:.
	Entities []string `json:"entities" yaml:"entities"`

	// Relationships are the co-occurrence edges found in this document.
	Relationships []Relationship `json:"relationships" yaml:"relationships"`

	// Size is the full content length in bytes.
	Size int `json:"size" yaml:"size"`

	// Type is the file extension, including the dot (e.g. ".md").
	Type string `json:"type" yaml:"type"`
}

// CorpusStats summarizes the indexed corpus. Per prd001-corpus-index R5.3.
type CorpusStats struct {
	Documents     int    `json:"documents" yaml:"documents"`
	Entities      int    `json:"entities" yaml:"entities"`
	Relationships int    `json:"relationships" yaml:"relationships"`
	CorpusPath    string `json:"corpus_path" yaml:"corpus_path"`
}

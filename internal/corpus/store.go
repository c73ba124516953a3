// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus indexes a local directory of text-like files and answers
// keyword searches over the result. The index is held in memory by a
// single Indexer and persisted as three JSON files (documents, entities,
// relationships) that are treated as a rebuildable cache, never a source
// of truth.
// Implements: prd001-corpus-index (R1-R5), prd002-local-search (R1-R4);
//
//	docs/ARCHITECTURE.md § Corpus Index.
package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdiddy/ragcore/pkg/types"
)

const (
	documentsFile     = "documents.json"
	entitiesFile      = "entities.json"
	relationshipsFile = "relationships.json"

	defaultMaxResults = 10
)

// Indexer owns the in-memory corpus index. It is a single-writer
// structure: concurrent IndexCorpus calls from multiple goroutines are not
// coordinated, and the last writer's files win on disk. Hosts that share
// an Indexer across goroutines must serialize rebuilds themselves.
type Indexer struct {
	corpusDir  string
	indexDir   string
	maxResults int

	documents     map[string]types.IndexedDocument
	docOrder      []string            // iteration order; scan order after a rebuild
	entities      map[string][]string // entity -> ids of containing documents
	relationships []types.Relationship
}

// NewIndexer creates an Indexer rooted at cfg.CorpusDir and loads any
// existing index from cfg.IndexDir. A missing or unreadable index file is
// reported on w and degrades to an empty index; only a failure to create
// the index directory is an error (R1.2).
func NewIndexer(cfg types.CorpusConfig, w io.Writer) (*Indexer, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	ix := &Indexer{
		corpusDir:  cfg.CorpusDir,
		indexDir:   cfg.IndexDir,
		maxResults: maxResults,
		documents:  map[string]types.IndexedDocument{},
		entities:   map[string][]string{},
	}

	loadJSON(filepath.Join(cfg.IndexDir, documentsFile), &ix.documents, w)
	loadJSON(filepath.Join(cfg.IndexDir, entitiesFile), &ix.entities, w)
	loadJSON(filepath.Join(cfg.IndexDir, relationshipsFile), &ix.relationships, w)

	// JSON objects carry no order; derive a stable iteration order for a
	// reloaded index from the sorted ids.
	for id := range ix.documents {
		ix.docOrder = append(ix.docOrder, id)
	}
	sort.Strings(ix.docOrder)

	return ix, nil
}

// loadJSON reads path into v. A missing file is silent; any other failure
// is reported on w and leaves v untouched, so the caller starts from the
// empty default.
func loadJSON(path string, v any, w io.Writer) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(w, "warning: failed to load %s: %v\n", path, err)
		}
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		fmt.Fprintf(w, "warning: failed to load %s: %v\n", path, err)
	}
}

// saveJSON writes v to path as indented JSON. A failure is reported on w
// and otherwise dropped; the in-memory index stays authoritative until the
// next rebuild.
func saveJSON(path string, v any, w io.Writer) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "warning: failed to save %s: %v\n", path, err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(w, "warning: failed to save %s: %v\n", path, err)
	}
}

// Stats reports the current index counts (R5.3).
func (ix *Indexer) Stats() types.CorpusStats {
	return types.CorpusStats{
		Documents:     len(ix.documents),
		Entities:      len(ix.entities),
		Relationships: len(ix.relationships),
		CorpusPath:    ix.corpusDir,
	}
}

// EntityInfo describes one entity's footprint in the index (R5.2).
type EntityInfo struct {
	Entity        string                  `json:"entity"`
	Documents     []types.IndexedDocument `json:"documents"`
	Relationships []types.Relationship    `json:"relationships"`
}

// EntityInfo returns the documents containing entity and the relationships
// that touch it. An unknown entity yields empty slices, not an error.
func (ix *Indexer) EntityInfo(entity string) EntityInfo {
	info := EntityInfo{Entity: entity}

	for _, id := range ix.entities[entity] {
		if doc, ok := ix.documents[id]; ok {
			info.Documents = append(info.Documents, doc)
		}
	}

	for _, rel := range ix.relationships {
		if rel.Source == entity || rel.Target == entity {
			info.Relationships = append(info.Relationships, rel)
		}
	}

	return info
}

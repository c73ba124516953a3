// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/ragcore/pkg/types"
)

// corpusExtensions are the file types included in a scan (R1.3).
var corpusExtensions = map[string]bool{
	".jsonl": true,
	".md":    true,
	".tex":   true,
	".txt":   true,
}

// maxFileSize bounds the files a scan will read. Declared as a var so
// tests can lower it.
var maxFileSize int64 = 10 * 1024 * 1024

// Index status values returned in IndexSummary.Status.
const (
	StatusSkipped = "skipped"
	StatusSuccess = "success"
)

// IndexSummary holds the outcome of an IndexCorpus run (R4.1, R4.4).
type IndexSummary struct {
	// Status is StatusSkipped when an in-memory index already existed and
	// no rebuild was forced, StatusSuccess otherwise.
	Status string `json:"status"`

	Documents     int `json:"documents"`
	Entities      int `json:"entities"`
	Relationships int `json:"relationships"`

	// Failed counts files that could not be read. Failures never abort
	// the run.
	Failed int `json:"failed,omitempty"`
}

// IndexCorpus scans the corpus directory and rebuilds the index. When an
// index is already in memory and forceRebuild is false it returns
// immediately with StatusSkipped without touching the disk; indexing is
// expensive and callers opt in to a rebuild (R4.1).
//
// A rebuild replaces documents, entity index, and relationships wholesale
// in memory and then persists all three JSON files. Per-file read failures
// and file write failures are reported on w and never abort the run.
func (ix *Indexer) IndexCorpus(ctx context.Context, forceRebuild bool, w io.Writer) (IndexSummary, error) {
	if !forceRebuild && len(ix.documents) > 0 {
		fmt.Fprintln(w, "index already exists, skipping rebuild")
		return IndexSummary{
			Status:        StatusSkipped,
			Documents:     len(ix.documents),
			Entities:      len(ix.entities),
			Relationships: len(ix.relationships),
		}, nil
	}

	fmt.Fprintf(w, "indexing corpus at %s\n", ix.corpusDir)

	files, err := ix.findCorpusFiles()
	if err != nil {
		// A missing or unreadable corpus root yields an empty index, not
		// a failed run: the index stays a best-effort cache.
		fmt.Fprintf(w, "warning: scanning %s: %v\n", ix.corpusDir, err)
	}
	fmt.Fprintf(w, "found %d files to process\n", len(files))

	newDocs := make(map[string]types.IndexedDocument, len(files))
	newOrder := make([]string, 0, len(files))
	newEntities := map[string][]string{}
	var newRels []types.Relationship
	failed := 0

	for _, path := range files {
		select {
		case <-ctx.Done():
			return IndexSummary{}, ctx.Err()
		default:
		}

		doc, err := ix.processDocument(path)
		if err != nil {
			fmt.Fprintf(w, "warning: failed to read %s: %v\n", path, err)
			failed++
			continue
		}

		newDocs[doc.ID] = doc
		newOrder = append(newOrder, doc.ID)

		for _, entity := range doc.Entities {
			newEntities[entity] = append(newEntities[entity], doc.ID)
		}
		newRels = append(newRels, doc.Relationships...)
	}

	// Replace the in-memory index wholesale.
	ix.documents = newDocs
	ix.docOrder = newOrder
	ix.entities = newEntities
	ix.relationships = newRels

	saveJSON(filepath.Join(ix.indexDir, documentsFile), ix.documents, w)
	saveJSON(filepath.Join(ix.indexDir, entitiesFile), ix.entities, w)
	saveJSON(filepath.Join(ix.indexDir, relationshipsFile), ix.relationships, w)

	fmt.Fprintf(w, "indexed %d documents, %d entities, %d relationships\n",
		len(newDocs), len(newEntities), len(newRels))

	return IndexSummary{
		Status:        StatusSuccess,
		Documents:     len(newDocs),
		Entities:      len(newEntities),
		Relationships: len(newRels),
		Failed:        failed,
	}, nil
}

// findCorpusFiles enumerates files under the corpus root with a matching
// extension, excluding files of maxFileSize or more and any path whose
// components below the root start with a dot (R1.3-R1.5).
func (ix *Indexer) findCorpusFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(ix.corpusDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(ix.corpusDir, path)
		if relErr == nil && hasHiddenComponent(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !corpusExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil || info.Size() >= maxFileSize {
			return nil
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

func hasHiddenComponent(rel string) bool {
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

// processDocument reads one corpus file and builds its index entry. The id
// is a fingerprint of the absolute path, stable across rebuilds for an
// unchanged path (R2.1).
func (ix *Indexer) processDocument(path string) (types.IndexedDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.IndexedDocument{}, err
	}
	content := string(data)

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	id := fmt.Sprintf("%x", md5.Sum([]byte(absPath)))[:16]

	entities := extractEntities(content)
	relationships := extractRelationships(content, entities)

	return types.IndexedDocument{
		ID:            id,
		Path:          path,
		Filename:      filepath.Base(path),
		Content:       preview(content, 1000),
		Entities:      entities,
		Relationships: relationships,
		Size:          len(content),
		Type:          filepath.Ext(path),
	}, nil
}

// preview returns the first n characters of s (character, not byte, count).
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

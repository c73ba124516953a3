// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieval

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ragcore/pkg/types"
)

// RetrievalFile is the on-disk representation of a retrieval call and its
// results. A researcher can save a retrieval to a file and reload it later
// without re-querying providers.
type RetrievalFile struct {
	Query    string                  `yaml:"query"`
	Provider string                  `yaml:"provider"`
	Fallback bool                    `yaml:"fallback"`
	Results  []types.RetrievalResult `yaml:"results"`
	Summary  RetrievalSummary        `yaml:"summary"`
}

// RetrievalSummary stores result statistics and a timestamp.
type RetrievalSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteRetrievalFile saves a retrieval call and its results to a YAML file.
func WriteRetrievalFile(path, query, provider string, fallback bool, results []types.RetrievalResult) error {
	rf := RetrievalFile{
		Query:    query,
		Provider: provider,
		Fallback: fallback,
		Results:  results,
		Summary: RetrievalSummary{
			Total:     len(results),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling retrieval file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRetrievalFile loads a previously saved retrieval file from disk.
func ReadRetrievalFile(path string) (*RetrievalFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading retrieval file: %w", err)
	}
	var rf RetrievalFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing retrieval file: %w", err)
	}
	return &rf, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"regexp"
	"strings"

	"github.com/pdiddy/ragcore/pkg/types"
)

// Entity prefixes. An entity is a tagged string: prefix + value.
const (
	PrefixDOI     = "doi:"
	PrefixArxiv   = "arxiv:"
	PrefixAuthor  = "author:"
	PrefixConcept = "concept:"
)

const relCoOccurs = "co_occurs_with"

// maxAuthorEntities caps author-like matches per document; the pattern is
// loose and long documents would otherwise flood the entity set.
const maxAuthorEntities = 10

var (
	doiPattern    = regexp.MustCompile(`10\.\d{4,9}/[-._;()/:A-Za-z0-9]+`)
	arxivPattern  = regexp.MustCompile(`\d{4}\.\d{4,5}(?:v\d+)?`)
	authorPattern = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)

	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// conceptTerms is the fixed domain vocabulary matched case-insensitively
// as substrings (R2.4).
var conceptTerms = []string{
	"cosmology", "CMB", "Planck", "CAMB", "CLASS", "CLASSY",
	"dark matter", "dark energy", "baryon acoustic oscillations",
	"redshift", "luminosity distance", "angular diameter distance",
	"power spectrum", "correlation function", "galaxy clustering",
	"weak lensing", "strong lensing", "gravitational waves",
	"inflation", "reionization", "baryogenesis",
}

// extractEntities pulls typed entities out of text: DOIs, arXiv ids,
// author-like names (capped at maxAuthorEntities), and domain concept
// terms. The result is deduplicated within the document, keeping first
// occurrence order (R2.1-R2.5).
func extractEntities(text string) []string {
	var entities []string

	for _, doi := range doiPattern.FindAllString(text, -1) {
		entities = append(entities, PrefixDOI+doi)
	}

	for _, id := range arxivPattern.FindAllString(text, -1) {
		entities = append(entities, PrefixArxiv+id)
	}

	for _, author := range authorPattern.FindAllString(text, maxAuthorEntities) {
		entities = append(entities, PrefixAuthor+author)
	}

	lower := strings.ToLower(text)
	for _, term := range conceptTerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			entities = append(entities, PrefixConcept+term)
		}
	}

	return dedupe(entities)
}

func dedupe(entities []string) []string {
	seen := make(map[string]struct{}, len(entities))
	out := entities[:0]
	for _, e := range entities {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// entityValue strips the type prefix, leaving the bare term.
func entityValue(entity string) string {
	if _, value, ok := strings.Cut(entity, ":"); ok {
		return value
	}
	return entity
}

// extractRelationships records a co-occurrence relationship for every
// unordered pair of entities whose bare values appear together in one
// sentence or one 100-character window of text. This is an approximate
// proximity heuristic, quadratic in the entity count; keep the OR of the
// two tests as-is (R3.1-R3.3).
func extractRelationships(text string, entities []string) []types.Relationship {
	if len(entities) < 2 {
		return nil
	}

	lower := strings.ToLower(text)
	sentences := sentencePattern.Split(lower, -1)

	var rels []types.Relationship
	for i, e1 := range entities {
		for _, e2 := range entities[i+1:] {
			if entitiesCoOccur(lower, sentences, entityValue(e1), entityValue(e2)) {
				rels = append(rels, types.Relationship{
					Source:   e1,
					Target:   e2,
					Type:     relCoOccurs,
					Strength: 1.0,
				})
			}
		}
	}
	return rels
}

// entitiesCoOccur reports whether both terms appear in the same sentence
// or within any 100-character window. lowerText and sentences are already
// lowercased; terms are lowercased here.
func entitiesCoOccur(lowerText string, sentences []string, term1, term2 string) bool {
	t1 := strings.ToLower(term1)
	t2 := strings.ToLower(term2)

	for _, sentence := range sentences {
		if strings.Contains(sentence, t1) && strings.Contains(sentence, t2) {
			return true
		}
	}

	// Sliding window pass. Texts of 100 characters or fewer get no window
	// pass at all; the sentence test above already covered them.
	for i := 0; i < len(lowerText)-100; i++ {
		chunk := lowerText[i : i+100]
		if strings.Contains(chunk, t1) && strings.Contains(chunk, t2) {
			return true
		}
	}

	return false
}

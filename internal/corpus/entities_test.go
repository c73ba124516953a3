package corpus

import (
	"slices"
	"strings"
	"testing"
)

func TestExtractEntitiesPatterns(t *testing.T) {
	text := `This paper discusses cosmology and CMB analysis using Planck data.
The authors Alice Smith and Bob Jones found H0 = 67.4 km/s/Mpc.
DOI: 10.48550/arXiv.2012.12345
arXiv:2012.12345`

	entities := extractEntities(text)

	want := []string{
		"doi:10.48550/arXiv.2012.12345",
		"arxiv:2012.12345",
		"author:Alice Smith",
		"author:Bob Jones",
		"concept:cosmology",
		"concept:CMB",
		"concept:Planck",
	}
	for _, e := range want {
		if !slices.Contains(entities, e) {
			t.Errorf("entities missing %q; got %v", e, entities)
		}
	}
}

func TestExtractEntitiesDedup(t *testing.T) {
	// The same concept term repeated many times collapses to one entity.
	text := strings.Repeat("cosmology is the study of cosmology. ", 5)

	entities := extractEntities(text)

	count := 0
	for _, e := range entities {
		if e == "concept:cosmology" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("concept:cosmology appears %d times, want exactly 1", count)
	}
}

func TestExtractEntitiesAuthorCap(t *testing.T) {
	var b strings.Builder
	names := []string{
		"Alice Anders", "Bruno Baker", "Carla Chen", "Dmitri Dawson",
		"Elena Evans", "Felix Fischer", "Greta Gomez", "Hugo Haines",
		"Irene Ito", "Jonas Jung", "Klara Kim", "Liam Lopez",
	}
	for _, n := range names {
		b.WriteString(n + " wrote a chapter. ")
	}

	entities := extractEntities(b.String())

	authors := 0
	for _, e := range entities {
		if strings.HasPrefix(e, PrefixAuthor) {
			authors++
		}
	}
	if authors != 10 {
		t.Errorf("author entities = %d, want 10 (capped)", authors)
	}
}

func TestExtractEntitiesNoMatches(t *testing.T) {
	if got := extractEntities("nothing of interest here"); len(got) != 0 {
		t.Errorf("entities = %v, want none", got)
	}
}

func TestEntitiesCoOccur(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		term1 string
		term2 string
		want  bool
	}{
		{
			name:  "same sentence",
			text:  "Inflation and reionization are discussed together here. Unrelated tail.",
			term1: "inflation",
			term2: "reionization",
			want:  true,
		},
		{
			name: "different sentences within 100 chars",
			text: "Inflation is covered first. Then reionization follows shortly after." +
				strings.Repeat(" padding text to push total length well past one hundred characters.", 3),
			term1: "inflation",
			term2: "reionization",
			want:  true,
		},
		{
			name: "far apart and in separate sentences",
			text: "Inflation opens the paper." + strings.Repeat(" Filler sentence without keywords.", 20) +
				" Reionization closes the paper.",
			term1: "inflation",
			term2: "reionization",
			want:  false,
		},
		{
			name:  "short text relies on sentence test only",
			text:  "inflation, reionization",
			term1: "inflation",
			term2: "reionization",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lower := strings.ToLower(tt.text)
			sentences := sentencePattern.Split(lower, -1)
			if got := entitiesCoOccur(lower, sentences, tt.term1, tt.term2); got != tt.want {
				t.Errorf("entitiesCoOccur() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractRelationships(t *testing.T) {
	text := "Inflation and reionization are discussed together."
	entities := extractEntities(text)

	rels := extractRelationships(text, entities)
	if len(rels) != 1 {
		t.Fatalf("relationships = %d, want 1 (%v)", len(rels), rels)
	}

	rel := rels[0]
	if rel.Source != "concept:inflation" || rel.Target != "concept:reionization" {
		t.Errorf("pair = %s -> %s, want entity-list order", rel.Source, rel.Target)
	}
	if rel.Type != "co_occurs_with" {
		t.Errorf("type = %q, want co_occurs_with", rel.Type)
	}
	if rel.Strength != 1.0 {
		t.Errorf("strength = %v, want 1.0", rel.Strength)
	}
}

func TestExtractRelationshipsSingleEntity(t *testing.T) {
	text := "Only inflation appears."
	if rels := extractRelationships(text, extractEntities(text)); len(rels) != 0 {
		t.Errorf("relationships = %v, want none for a single entity", rels)
	}
}

func TestEntityValue(t *testing.T) {
	if got := entityValue("doi:10.1234/abc"); got != "10.1234/abc" {
		t.Errorf("entityValue = %q", got)
	}
	if got := entityValue("noprefix"); got != "noprefix" {
		t.Errorf("entityValue = %q", got)
	}
}

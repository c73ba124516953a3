// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ArxivPaper is one entry parsed from the arXiv Atom feed. It exists only
// for the duration of one search call and is never persisted.
// Per prd003-arxiv R2.1-R2.6.
type ArxivPaper struct {
	// Title is the paper title, whitespace-trimmed.
	Title string `json:"title" yaml:"title"`

	// Summary is the abstract, whitespace-trimmed.
	Summary string `json:"summary" yaml:"summary"`

	// Published and Updated are ISO 8601 timestamps as returned by the feed.
	Published string `json:"published" yaml:"published"`
	Updated   string `json:"updated" yaml:"updated"`

	// Authors lists author names in feed order.
	Authors []string `json:"authors" yaml:"authors"`

	// ArxivID is the identifier recovered from the abstract-page link
	// (e.g. "2301.00001" or "2301.00001v2"). Empty when the link carried
	// no parseable id.
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`

	// PDFURL is the href of the application/pdf link, if present.
	PDFURL string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`

	// AbstractURL is the href of the text/html link, if present.
	AbstractURL string `json:"abstract_url,omitempty" yaml:"abstract_url,omitempty"`

	// DOI is "10.48550/arXiv.<ArxivID>", synthesized only when ArxivID was
	// recovered. Empty means absent, never guessed.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Categories lists category terms in feed order.
	Categories []string `json:"categories" yaml:"categories"`
}

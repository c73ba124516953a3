// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/ragcore/pkg/types"
)

// FormatPapers writes a numbered, human-readable listing of papers to w.
func FormatPapers(w io.Writer, papers []types.ArxivPaper) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "Found %d relevant papers from arXiv:\n\n", len(papers))

	for i, paper := range papers {
		fmt.Fprintf(w, "%d. %s\n", i+1, paper.Title)

		if len(paper.Authors) > 0 {
			shown := paper.Authors
			if len(shown) > 3 {
				shown = shown[:3]
			}
			fmt.Fprintf(w, "   Authors: %s", strings.Join(shown, ", "))
			if len(paper.Authors) > 3 {
				fmt.Fprintf(w, " et al. (%d total)", len(paper.Authors))
			}
			fmt.Fprintln(w)
		}

		if paper.ArxivID != "" {
			fmt.Fprintf(w, "   arXiv ID: %s\n", paper.ArxivID)
		}
		if paper.DOI != "" {
			fmt.Fprintf(w, "   DOI: https://doi.org/%s\n", paper.DOI)
		}
		if len(paper.Categories) > 0 {
			cats := paper.Categories
			if len(cats) > 2 {
				cats = cats[:2]
			}
			fmt.Fprintf(w, "   Categories: %s\n", strings.Join(cats, ", "))
		}
		if paper.AbstractURL != "" {
			fmt.Fprintf(w, "   URL: %s\n", paper.AbstractURL)
		}

		summary := paper.Summary
		if len(summary) > 200 {
			summary = summary[:200] + "..."
		}
		fmt.Fprintf(w, "   Abstract: %s\n\n", summary)
	}
}

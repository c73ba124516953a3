// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv Atom API for academic papers.
// Implements: prd003-arxiv (R1-R5); docs/ARCHITECTURE.md § arXiv Client.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/ragcore/internal/httputil"
	"github.com/pdiddy/ragcore/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "http://export.arxiv.org/api/query"

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxResults = 10
)

// absIDPattern recovers the arXiv id from an abstract-page link
// (e.g. "http://arxiv.org/abs/2301.00001v2" -> "2301.00001v2").
var absIDPattern = regexp.MustCompile(`abs/(\d+\.\d+(?:v\d+)?)`)

// categoryCodes maps human category labels to arXiv category codes.
// Unrecognized labels pass through unchanged as a raw category filter (R3.2).
var categoryCodes = map[string]string{
	"cosmology":            "astro-ph.CO",
	"astrophysics":         "astro-ph",
	"physics":              "physics",
	"general relativity":   "gr-qc",
	"particle physics":     "hep-ph",
	"quantum field theory": "hep-th",
}

// Client queries the arXiv API. Every request is bounded by the HTTP
// client's timeout; the surrounding context can cancel earlier.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	MaxResults int
}

// NewClient builds a Client from cfg, applying the 30 s timeout and
// 10-result defaults (R1.3, R5.1).
func NewClient(cfg types.ArxivConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  cfg.UserAgent,
		MaxResults: maxResults,
	}
}

// Search queries arXiv and returns papers in the order the API returned
// them, sorted by relevance descending on the server side (R1.1).
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]types.ArxivPaper, error) {
	if maxResults <= 0 {
		maxResults = c.MaxResults
	}

	params := url.Values{
		"search_query": {query},
		"start":        {"0"},
		"max_results":  {strconv.Itoa(maxResults)},
		"sortBy":       {"relevance"},
		"sortOrder":    {"descending"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	papers := make([]types.ArxivPaper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		papers = append(papers, parseEntry(entry))
	}
	return papers, nil
}

// SearchByCategory searches within one arXiv category, resolving human
// labels like "cosmology" to category codes (R3.1, R3.2).
func (c *Client) SearchByCategory(ctx context.Context, category string, maxResults int) ([]types.ArxivPaper, error) {
	code, ok := categoryCodes[strings.ToLower(category)]
	if !ok {
		code = category
	}
	return c.Search(ctx, "cat:"+code, maxResults)
}

// RecentPapers searches one category for papers submitted within the last
// days days, using day-granularity boundaries and letting the API filter
// (R3.3, R3.4).
func (c *Client) RecentPapers(ctx context.Context, category string, days, maxResults int) ([]types.ArxivPaper, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	query := fmt.Sprintf("cat:%s AND submittedDate:[%s0000 TO %s2359]",
		category, start.Format("20060102"), end.Format("20060102"))

	return c.Search(ctx, query, maxResults)
}

// arXiv Atom feed XML structures. The feed is namespaced; every tag is
// qualified with the Atom namespace (R2.1).
type atomFeed struct {
	Entries []atomEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

type atomEntry struct {
	Title      string         `xml:"http://www.w3.org/2005/Atom title"`
	Summary    string         `xml:"http://www.w3.org/2005/Atom summary"`
	Published  string         `xml:"http://www.w3.org/2005/Atom published"`
	Updated    string         `xml:"http://www.w3.org/2005/Atom updated"`
	Authors    []atomAuthor   `xml:"http://www.w3.org/2005/Atom author"`
	Links      []atomLink     `xml:"http://www.w3.org/2005/Atom link"`
	Categories []atomCategory `xml:"http://www.w3.org/2005/Atom category"`
}

type atomAuthor struct {
	Name string `xml:"http://www.w3.org/2005/Atom name"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// parseEntry converts one feed entry into an ArxivPaper. The arXiv id is
// recovered from the abstract-page (text/html) link, never the PDF link;
// the DOI is synthesized only when an id was recovered (R2.2-R2.6).
func parseEntry(entry atomEntry) types.ArxivPaper {
	paper := types.ArxivPaper{
		Title:     strings.TrimSpace(entry.Title),
		Summary:   strings.TrimSpace(entry.Summary),
		Published: entry.Published,
		Updated:   entry.Updated,
	}

	for _, a := range entry.Authors {
		paper.Authors = append(paper.Authors, a.Name)
	}

	for _, link := range entry.Links {
		switch link.Type {
		case "application/pdf":
			paper.PDFURL = link.Href
		case "text/html":
			paper.AbstractURL = link.Href
		}
	}

	if paper.AbstractURL != "" {
		if m := absIDPattern.FindStringSubmatch(paper.AbstractURL); m != nil {
			paper.ArxivID = m[1]
		}
	}
	if paper.ArxivID != "" {
		paper.DOI = "10.48550/arXiv." + paper.ArxivID
	}

	for _, cat := range entry.Categories {
		if cat.Term != "" {
			paper.Categories = append(paper.Categories, cat.Term)
		}
	}

	return paper
}

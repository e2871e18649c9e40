// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch populates bibliographic entries from the Crossref REST
// API, one request per DOI. Lookups are paced to respect the API's rate
// expectations; a failed DOI is logged and skipped so a batch always
// yields the entries that could be resolved.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/kemu-chem/bibcite/internal/httputil"
	"github.com/kemu-chem/bibcite/pkg/types"
)

// crossrefBase is the Crossref works endpoint. Declared as a var so tests
// can substitute an httptest server.
var crossrefBase = "https://api.crossref.org/works"

// Client fetches bibliographic metadata from Crossref.
type Client struct {
	HTTP *http.Client

	// Email is sent as the mailto query parameter for polite-pool access.
	Email string

	// Limiter paces consecutive lookups; nil disables pacing.
	Limiter *rate.Limiter

	// UserAgent is sent with every request.
	UserAgent string

	// MaxRetries bounds 429 retries per request; 0 uses the httputil
	// default.
	MaxRetries int
}

// NewClient builds a client from cfg. The default pace is one request per
// second.
func NewClient(cfg types.FetchConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = "bibcite/0.1"
	}
	return &Client{
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		Email:      cfg.Email,
		Limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		UserAgent:  ua,
		MaxRetries: cfg.MaxRetries,
	}
}

// CleanDOI strips doi.org URL prefixes and surrounding whitespace from a
// raw DOI line.
func CleanDOI(raw string) string {
	doi := strings.TrimSpace(raw)
	if i := strings.Index(doi, "doi.org/"); i >= 0 {
		doi = doi[i+len("doi.org/"):]
	}
	return strings.TrimSpace(doi)
}

// FetchAll resolves each DOI in order. A failed lookup is reported on
// stderr and skipped, so the returned slice may be shorter than the
// input. Cancelling the context stops the batch and returns what was
// resolved so far.
func (c *Client) FetchAll(ctx context.Context, dois []string) []types.Entry {
	var entries []types.Entry
	for _, raw := range dois {
		doi := CleanDOI(raw)
		if doi == "" {
			continue
		}
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return entries
			}
		}
		e, err := c.Fetch(ctx, doi)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", doi, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// Fetch retrieves the metadata for one DOI.
func (c *Client) Fetch(ctx context.Context, doi string) (types.Entry, error) {
	reqURL := crossrefBase + "/" + url.PathEscape(doi)
	if c.Email != "" {
		reqURL += "?mailto=" + url.QueryEscape(c.Email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("crossref request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crossref returned HTTP %d", resp.StatusCode)
	}

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("parsing crossref response: %w", err)
	}
	return entryFromWork(cr.Message), nil
}

// entryFromWork converts one Crossref work to the flat entry vocabulary
// the citation engine consumes.
func entryFromWork(w crossrefWork) types.Entry {
	e := types.Entry{"ENTRYTYPE": entryKind(w.Type)}

	if len(w.Title) > 0 {
		e["title"] = w.Title[0]
	}
	if len(w.ContainerTitle) > 0 {
		e["journal"] = w.ContainerTitle[0]
	}

	var authors []string
	for _, a := range w.Author {
		switch {
		case a.Family != "" && a.Given != "":
			authors = append(authors, a.Family+", "+a.Given)
		case a.Family != "":
			authors = append(authors, a.Family)
		case a.Name != "":
			// Organizational author.
			authors = append(authors, a.Name)
		}
	}
	if len(authors) > 0 {
		e["author"] = strings.Join(authors, " and ")
	}

	// Year preference: print date, then online, then deposit.
	for _, d := range []*crossrefDate{w.PublishedPrint, w.PublishedOnline, w.Created} {
		if d != nil && len(d.DateParts) > 0 && len(d.DateParts[0]) > 0 {
			e["year"] = strconv.Itoa(d.DateParts[0][0])
			break
		}
	}

	if w.Volume != "" {
		e["volume"] = w.Volume
	}
	if w.Issue != "" {
		e["number"] = w.Issue
	}
	if w.Page != "" {
		e["pages"] = w.Page
	}
	if w.DOI != "" {
		e["doi"] = w.DOI
	}
	if w.Publisher != "" {
		e["publisher"] = w.Publisher
	}
	return e
}

// entryKind maps Crossref work types onto the entry vocabulary.
func entryKind(t string) string {
	switch {
	case t == "journal-article":
		return "article"
	case t == "book-chapter":
		return "inbook"
	case t == "book":
		return "book"
	case strings.Contains(t, "proceedings"):
		return "inproceedings"
	default:
		return "misc"
	}
}

// Crossref API JSON structures.
type crossrefResponse struct {
	Message crossrefWork `json:"message"`
}

type crossrefWork struct {
	Type            string           `json:"type"`
	Title           []string         `json:"title"`
	Author          []crossrefAuthor `json:"author"`
	ContainerTitle  []string         `json:"container-title"`
	PublishedPrint  *crossrefDate    `json:"published-print"`
	PublishedOnline *crossrefDate    `json:"published-online"`
	Created         *crossrefDate    `json:"created"`
	Volume          string           `json:"volume"`
	Issue           string           `json:"issue"`
	Page            string           `json:"page"`
	DOI             string           `json:"DOI"`
	Publisher       string           `json:"publisher"`
}

type crossrefAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
	Name   string `json:"name"`
}

type crossrefDate struct {
	DateParts [][]int `json:"date-parts"`
}

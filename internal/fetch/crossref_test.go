// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/kemu-chem/bibcite/pkg/types"
)

const sampleWork = `{
  "message": {
    "type": "journal-article",
    "title": ["N-cyanoindoles"],
    "container-title": ["Tetrahedron Letters"],
    "author": [
      {"given": "Gary I.", "family": "Dmitrienko"},
      {"given": "Kurt E.", "family": "Nielsen"}
    ],
    "published-print": {"date-parts": [[1990, 5]]},
    "volume": "31",
    "issue": "26",
    "page": "3681-3684",
    "DOI": "10.1016/s0040-4039(00)97443-4",
    "publisher": "Elsevier BV"
  }
}`

const sampleOrgWork = `{
  "message": {
    "type": "report",
    "title": ["Guidelines"],
    "author": [{"name": "World Health Organization"}],
    "created": {"date-parts": [[2019]]}
  }
}`

// testClient points a Client at a stand-in works endpoint.
func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := crossrefBase
	crossrefBase = ts.URL
	t.Cleanup(func() { crossrefBase = old })

	return &Client{
		HTTP:      ts.Client(),
		Email:     "user@example.com",
		UserAgent: "bibcite-test",
	}
}

func TestFetch(t *testing.T) {
	var gotPath, gotQuery, gotUA string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(sampleWork))
	})

	e, err := c.Fetch(context.Background(), "10.1016/s0040-4039(00)97443-4")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if !strings.Contains(gotPath, "10.1016") {
		t.Errorf("request path = %q, should carry the DOI", gotPath)
	}
	if !strings.Contains(gotQuery, "mailto=user%40example.com") {
		t.Errorf("query = %q, should carry the polite-pool mailto", gotQuery)
	}
	if gotUA != "bibcite-test" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "bibcite-test")
	}

	if got, want := e.Field("ENTRYTYPE"), "article"; got != want {
		t.Errorf("ENTRYTYPE = %q, want %q", got, want)
	}
	if got, want := e.Field("author"), "Dmitrienko, Gary I. and Nielsen, Kurt E."; got != want {
		t.Errorf("author = %q, want %q", got, want)
	}
	if got, want := e.Field("year"), "1990"; got != want {
		t.Errorf("year = %q, want %q", got, want)
	}
	if got, want := e.Field("journal"), "Tetrahedron Letters"; got != want {
		t.Errorf("journal = %q, want %q", got, want)
	}
	if got, want := e.Field("pages"), "3681-3684"; got != want {
		t.Errorf("pages = %q, want %q", got, want)
	}
}

func TestFetchOrganizationalAuthor(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleOrgWork))
	})

	e, err := c.Fetch(context.Background(), "10.0000/org")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got, want := e.Field("author"), "World Health Organization"; got != want {
		t.Errorf("author = %q, want %q", got, want)
	}
	// No print or online date: the created date supplies the year.
	if got, want := e.Field("year"), "2019"; got != want {
		t.Errorf("year = %q, want %q", got, want)
	}
	if got, want := e.Field("ENTRYTYPE"), "misc"; got != want {
		t.Errorf("ENTRYTYPE = %q, want %q", got, want)
	}
}

func TestFetchHTTPError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := c.Fetch(context.Background(), "10.0000/missing")
	if err == nil {
		t.Fatal("expected an error for HTTP 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error should name the status, got %q", err)
	}
}

func TestFetchAllSkipsFailures(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "bad") {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Write([]byte(sampleWork))
	})
	c.Limiter = rate.NewLimiter(rate.Inf, 1)

	entries := c.FetchAll(context.Background(), []string{
		"10.0000/good-one",
		"10.0000/bad-one",
		"  https://doi.org/10.0000/good-two  ",
		"",
	})

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2 (the bad DOI is skipped)", len(entries))
	}
}

func TestFetchAllStopsOnCancel(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleWork))
	})
	// A limiter far slower than the test timeout forces the wait to block.
	c.Limiter = rate.NewLimiter(rate.Every(time.Hour), 1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	entries := c.FetchAll(ctx, []string{"10.0000/a", "10.0000/b"})
	if len(entries) > 1 {
		t.Errorf("len(entries) = %d, want at most 1 after cancellation", len(entries))
	}
}

func TestCleanDOI(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"10.1016/s0040-4039(00)97443-4", "10.1016/s0040-4039(00)97443-4"},
		{"https://doi.org/10.1016/x", "10.1016/x"},
		{"http://dx.doi.org/10.1016/x", "10.1016/x"},
		{"  10.1016/x \n", "10.1016/x"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanDOI(tt.raw); got != tt.want {
			t.Errorf("CleanDOI(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(types.FetchConfig{})
	if c.Limiter == nil {
		t.Fatal("limiter should default on")
	}
	if c.UserAgent == "" {
		t.Error("user agent should have a default")
	}
}

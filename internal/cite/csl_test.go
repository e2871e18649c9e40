// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kemu-chem/bibcite/pkg/types"
)

func TestToCSLItemArticle(t *testing.T) {
	e := types.Entry{
		"ENTRYTYPE": "article",
		"ID":        "dmitrienko1990",
		"author":    "Dmitrienko, Gary I. and Nielsen, Kurt E.",
		"title":     "N-cyanoindoles",
		"journal":   "Tetrahedron Letters",
		"year":      "1990",
		"volume":    "31",
		"number":    "26",
		"pages":     "3681--3684",
		"doi":       "10.1016/s0040-4039(00)97443-4",
	}

	item := toCSLItem(e, 0)

	if item.ID != "dmitrienko1990" {
		t.Errorf("ID = %q, want %q", item.ID, "dmitrienko1990")
	}
	if item.Type != "article-journal" {
		t.Errorf("Type = %q, want %q", item.Type, "article-journal")
	}
	if item.ContainerTitle != "Tetrahedron Letters" {
		t.Errorf("ContainerTitle = %q, want %q", item.ContainerTitle, "Tetrahedron Letters")
	}
	if item.Page != "3681-3684" {
		t.Errorf("Page = %q, want %q (CSL pages use an ASCII hyphen)", item.Page, "3681-3684")
	}
	if len(item.Author) != 2 {
		t.Fatalf("len(Author) = %d, want 2", len(item.Author))
	}
	if item.Author[0].Family != "Dmitrienko" || item.Author[0].Given != "Gary I." {
		t.Errorf("Author[0] = %+v", item.Author[0])
	}
	if item.Issued == nil || item.Issued.DateParts[0][0] != 1990 {
		t.Errorf("Issued year should be 1990")
	}
}

func TestToCSLItemBook(t *testing.T) {
	e := types.Entry{
		"ENTRYTYPE": "book",
		"ID":        "clayden2012",
		"author":    "Clayden, Jonathan",
		"title":     "Organic Chemistry",
		"year":      "2012",
		"publisher": "Oxford University Press",
		"address":   "Oxford",
		"isbn":      "978-0-19-927029-3",
	}

	item := toCSLItem(e, 0)

	if item.Type != "book" {
		t.Errorf("Type = %q, want %q", item.Type, "book")
	}
	if item.Publisher != "Oxford University Press" {
		t.Errorf("Publisher = %q", item.Publisher)
	}
	if item.PublisherPlace != "Oxford" {
		t.Errorf("PublisherPlace = %q, want %q", item.PublisherPlace, "Oxford")
	}
	if item.ISBN != "978-0-19-927029-3" {
		t.Errorf("ISBN = %q", item.ISBN)
	}
}

func TestToCSLItemFallbacks(t *testing.T) {
	// No citekey: a positional id. Organizational author: literal name.
	// Non-numeric year: no issued date.
	e := types.Entry{
		"ENTRYTYPE": "techreport",
		"author":    "World Health Organization",
		"title":     "Guidelines",
		"year":      "n.d.",
	}

	item := toCSLItem(e, 2)

	if item.ID != "ref3" {
		t.Errorf("ID = %q, want %q", item.ID, "ref3")
	}
	if item.Type != "report" {
		t.Errorf("Type = %q, want %q", item.Type, "report")
	}
	if item.Issued != nil {
		t.Errorf("Issued should be nil for a non-numeric year, got %+v", item.Issued)
	}
	if len(item.Author) != 1 {
		t.Fatalf("len(Author) = %d, want 1", len(item.Author))
	}
}

func TestCSLType(t *testing.T) {
	tests := []struct {
		kind, want string
	}{
		{"article", "article-journal"},
		{"book", "book"},
		{"inbook", "chapter"},
		{"inproceedings", "paper-conference"},
		{"phdthesis", "thesis"},
		{"mastersthesis", "thesis"},
		{"techreport", "report"},
		{"misc", "document"},
	}
	for _, tt := range tests {
		if got := cslType(tt.kind); got != tt.want {
			t.Errorf("cslType(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestWriteCSL(t *testing.T) {
	entries := []types.Entry{
		{"ENTRYTYPE": "article", "ID": "smith2001", "author": "Smith, A.", "title": "On Things", "journal": "J. Stuff", "year": "2001"},
	}

	var buf bytes.Buffer
	if err := WriteCSL(entries, &buf); err != nil {
		t.Fatalf("WriteCSL: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"id: smith2001", "type: article-journal", "container-title: J. Stuff", "family: Smith"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

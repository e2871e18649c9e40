// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strings"

	"github.com/kemu-chem/bibcite/pkg/types"
)

// Entry kinds dispatched by the style templates. Anything else falls into
// the generic branch.
const (
	KindArticle = "article"
	KindBook    = "book"
)

// Fields is the canonical field set every style template consumes. All
// members are normalized strings; an absent field is the empty string,
// never an error. Pages carry an en-dash range separator; styles whose
// convention requires an ASCII hyphen reverse it at template level.
type Fields struct {
	Authors   []Author
	Title     string
	Journal   string
	Year      string
	Volume    string
	Issue     string
	Pages     string
	DOI       string
	Publisher string
	Address   string
	ISBN      string
	Edition   string
	Kind      string
}

// ExtractFields maps a raw entry record onto the canonical field set.
// Free-text fields pass through Normalize; structured fields (year,
// volume, issue, doi) are taken verbatim.
func ExtractFields(e types.Entry) Fields {
	kind := strings.ToLower(e.Field("ENTRYTYPE"))
	if kind == "" {
		kind = KindArticle
	}
	return Fields{
		Authors:   ParseAuthors(e.Field("author")),
		Title:     Normalize(e.Field("title")),
		Journal:   Normalize(e.Field("journal")),
		Year:      e.Field("year"),
		Volume:    e.Field("volume"),
		Issue:     e.Field("number"),
		Pages:     strings.ReplaceAll(e.Field("pages"), "--", "–"),
		DOI:       e.Field("doi"),
		Publisher: Normalize(e.Field("publisher")),
		Address:   Normalize(e.Field("address")),
		ISBN:      e.Field("isbn"),
		Edition:   e.Field("edition"),
		Kind:      kind,
	}
}

// volIssue renders "Volume(Issue)", or just the volume when there is no
// issue number.
func (f Fields) volIssue() string {
	if f.Issue != "" {
		return f.Volume + "(" + f.Issue + ")"
	}
	return f.Volume
}

// asciiPages reverses the display en-dash for styles that require a plain
// hyphen in page ranges.
func asciiPages(pages string) string {
	return strings.ReplaceAll(pages, "–", "-")
}

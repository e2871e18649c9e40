// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ris parses RIS reference files into flat entry records using
// the same field vocabulary as the BibTeX parser, so either source feeds
// the citation engine unchanged.
package ris

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kemu-chem/bibcite/pkg/types"
)

// typeMap translates RIS reference types to BibTeX-style entry types.
// Unlisted types default to article.
var typeMap = map[string]string{
	"JOUR": "article",
	"BOOK": "book",
	"CHAP": "inbook",
	"CONF": "inproceedings",
	"THES": "phdthesis",
	"RPRT": "techreport",
	"UNPB": "unpublished",
}

// tagRe matches one RIS tag line: a two-character tag, two spaces, a
// hyphen, and the value.
var tagRe = regexp.MustCompile(`^([A-Z][A-Z0-9])  - ?(.*)$`)

// Parse scans src and returns one Entry per RIS record. Records start at
// a TY tag and end at ER; an unterminated trailing record is kept.
// Input with content but no parseable records is a malformed-input error.
func Parse(src string) ([]types.Entry, error) {
	var entries []types.Entry
	rec := newRecord()

	for _, line := range strings.Split(src, "\n") {
		m := tagRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		tag, value := m[1], strings.TrimSpace(m[2])

		if tag == "ER" {
			if e := rec.entry(); e != nil {
				entries = append(entries, e)
			}
			rec = newRecord()
			continue
		}
		rec.set(tag, value)
	}
	if e := rec.entry(); e != nil {
		entries = append(entries, e)
	}

	if len(entries) == 0 && strings.TrimSpace(src) != "" {
		return nil, fmt.Errorf("ris: no records found in input")
	}
	return entries, nil
}

// record accumulates the tags of one reference until ER.
type record struct {
	fields  types.Entry
	authors []string
	start   string
	end     string
	seen    bool
}

func newRecord() *record {
	return &record{fields: types.Entry{}}
}

// set stores one tag. Repeatable author tags accumulate; for the title
// and journal aliases the first non-empty value wins.
func (r *record) set(tag, value string) {
	r.seen = true
	if value == "" {
		return
	}
	switch tag {
	case "TY":
		kind, ok := typeMap[value]
		if !ok {
			kind = "article"
		}
		r.fields["ENTRYTYPE"] = kind
	case "ID":
		r.fields["ID"] = value
	case "AU", "A1", "A2":
		r.authors = append(r.authors, value)
	case "TI", "T1":
		r.setFirst("title", value)
	case "JO", "JF", "T2":
		r.setFirst("journal", value)
	case "PY", "Y1":
		// Dates may arrive as "1990/05//"; the year is the first part.
		r.setFirst("year", strings.SplitN(value, "/", 2)[0])
	case "VL":
		r.setFirst("volume", value)
	case "IS":
		r.setFirst("number", value)
	case "SP":
		r.start = value
	case "EP":
		r.end = value
	case "DO":
		r.setFirst("doi", value)
	case "PB":
		r.setFirst("publisher", value)
	case "CY":
		r.setFirst("address", value)
	case "SN":
		r.setFirst("isbn", value)
	case "ET":
		r.setFirst("edition", value)
	}
}

func (r *record) setFirst(key, value string) {
	if r.fields[key] == "" {
		r.fields[key] = value
	}
}

// entry finalizes the record, or returns nil when nothing was collected.
func (r *record) entry() types.Entry {
	if !r.seen {
		return nil
	}
	if len(r.authors) > 0 {
		r.fields["author"] = strings.Join(r.authors, " and ")
	}
	switch {
	case r.start != "" && r.end != "":
		r.fields["pages"] = r.start + "--" + r.end
	case r.start != "":
		r.fields["pages"] = r.start
	}
	if r.fields["ENTRYTYPE"] == "" {
		r.fields["ENTRYTYPE"] = "article"
	}
	return r.fields
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Author is a single byline split into family and given parts. Given may
// be empty for organizational authors ("World Health Organization").
type Author struct {
	Family string
	Given  string
}

var authorSepRe = regexp.MustCompile(`(?i)\s+and\s+`)

// ParseAuthors splits a raw author-list string on the separator word
// "and". A segment with a comma is "Family, Given"; otherwise the last
// token is the family name and everything before it the given names. A
// single-token segment becomes a bare family name. ParseAuthors never
// fails; empty input yields a nil slice.
func ParseAuthors(raw string) []Author {
	raw = Normalize(raw)
	if raw == "" {
		return nil
	}
	var authors []Author
	for _, part := range authorSepRe.Split(raw, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i := strings.Index(part, ","); i >= 0 {
			authors = append(authors, Author{
				Family: strings.TrimSpace(part[:i]),
				Given:  strings.TrimSpace(part[i+1:]),
			})
			continue
		}
		tokens := strings.Fields(part)
		if len(tokens) == 1 {
			authors = append(authors, Author{Family: tokens[0]})
			continue
		}
		authors = append(authors, Author{
			Family: tokens[len(tokens)-1],
			Given:  strings.Join(tokens[:len(tokens)-1], " "),
		})
	}
	return authors
}

// Initials renders the given-name tokens as initials: the first rune of
// each token followed by mark, joined with sep. Harvard's dense form is
// Initials(given, "", "."); Vancouver's bare form is Initials(given, "", "").
// Empty given yields "".
func Initials(given, sep, mark string) string {
	var parts []string
	for _, tok := range strings.Fields(given) {
		r, _ := utf8.DecodeRuneInString(tok)
		parts = append(parts, string(r)+mark)
	}
	return strings.Join(parts, sep)
}

// truncateFormat is the skeleton shared by every author-list grammar:
// truncate to the first max authors, format each, and optionally swap the
// first and last formatted strings. The swap happens after formatting, so
// an organizational author moves verbatim. The second return reports
// whether the list was truncated.
func truncateFormat(authors []Author, max int, reverse bool, format func(Author) string) ([]string, bool) {
	truncated := len(authors) > max
	if truncated {
		authors = authors[:max]
	}
	fmtd := make([]string, len(authors))
	for i, a := range authors {
		fmtd[i] = format(a)
	}
	if reverse && len(fmtd) >= 2 {
		fmtd[0], fmtd[len(fmtd)-1] = fmtd[len(fmtd)-1], fmtd[0]
	}
	return fmtd, truncated
}

// Per-style name conventions. An empty given name always renders as the
// bare family name with no dangling punctuation.

func familyInitialsName(a Author) string { // Family, G. I.
	if init := Initials(a.Given, " ", "."); init != "" {
		return a.Family + ", " + init
	}
	return a.Family
}

func vancouverName(a Author) string { // Family GI
	if init := Initials(a.Given, "", ""); init != "" {
		return a.Family + " " + init
	}
	return a.Family
}

func ieeeName(a Author) string { // G. I. Family
	if init := Initials(a.Given, " ", "."); init != "" {
		return init + " " + a.Family
	}
	return a.Family
}

func iso690Name(a Author) string { // FAMILY, Given
	fam := strings.ToUpper(a.Family)
	if a.Given != "" {
		return fam + ", " + a.Given
	}
	return fam
}

func harvardName(a Author) string { // Family, G.I.
	if init := Initials(a.Given, "", "."); init != "" {
		return a.Family + ", " + init
	}
	return a.Family
}

// acsAuthors joins as "Family, G. I.; Family, G. I."; overflow appends
// "; et al.". Default cap 10.
func acsAuthors(authors []Author, max int, reverse bool) string {
	if max <= 0 {
		max = 10
	}
	if len(authors) == 0 {
		return ""
	}
	fmtd, truncated := truncateFormat(authors, max, reverse, familyInitialsName)
	if truncated {
		return strings.Join(fmtd, "; ") + "; et al."
	}
	return strings.Join(fmtd, "; ")
}

// apaAuthors joins as "Family, G. I., & Family, G. I."; overflow lists the
// first six, an ellipsis, then the last truncated name. Default cap 7.
func apaAuthors(authors []Author, max int, reverse bool) string {
	if max <= 0 {
		max = 7
	}
	if len(authors) == 0 {
		return ""
	}
	fmtd, truncated := truncateFormat(authors, max, reverse, familyInitialsName)
	switch {
	case truncated:
		head := fmtd
		if len(head) > 6 {
			head = head[:6]
		}
		return strings.Join(head, ", ") + ", ... " + fmtd[len(fmtd)-1]
	case len(fmtd) == 1:
		return fmtd[0]
	case len(fmtd) == 2:
		return fmtd[0] + " & " + fmtd[1]
	default:
		return strings.Join(fmtd[:len(fmtd)-1], ", ") + ", & " + fmtd[len(fmtd)-1]
	}
}

// vancouverAuthors joins as "Family GI, Family GI"; overflow appends
// ", et al.". Default cap 6.
func vancouverAuthors(authors []Author, max int, reverse bool) string {
	if max <= 0 {
		max = 6
	}
	if len(authors) == 0 {
		return ""
	}
	fmtd, truncated := truncateFormat(authors, max, reverse, vancouverName)
	if truncated {
		return strings.Join(fmtd, ", ") + ", et al."
	}
	return strings.Join(fmtd, ", ")
}

// natureAuthors joins as "Family, G. I. & Family, G. I."; overflow appends
// " et al." with no conjunction. Default cap 5.
func natureAuthors(authors []Author, max int, reverse bool) string {
	if max <= 0 {
		max = 5
	}
	if len(authors) == 0 {
		return ""
	}
	fmtd, truncated := truncateFormat(authors, max, reverse, familyInitialsName)
	switch {
	case truncated:
		return strings.Join(fmtd, ", ") + " et al."
	case len(fmtd) == 1:
		return fmtd[0]
	case len(fmtd) == 2:
		return fmtd[0] + " & " + fmtd[1]
	default:
		return strings.Join(fmtd[:len(fmtd)-1], ", ") + " & " + fmtd[len(fmtd)-1]
	}
}

// ieeeAuthors joins as "G. I. Family, G. I. Family, and G. I. Family";
// overflow appends ", et al.". Default cap 6.
func ieeeAuthors(authors []Author, max int, reverse bool) string {
	if max <= 0 {
		max = 6
	}
	if len(authors) == 0 {
		return ""
	}
	fmtd, truncated := truncateFormat(authors, max, reverse, ieeeName)
	switch {
	case truncated:
		return strings.Join(fmtd, ", ") + ", et al."
	case len(fmtd) == 1:
		return fmtd[0]
	case len(fmtd) == 2:
		return fmtd[0] + " and " + fmtd[1]
	default:
		return strings.Join(fmtd[:len(fmtd)-1], ", ") + ", and " + fmtd[len(fmtd)-1]
	}
}

// iso690Authors joins as "FAMILY, Given, FAMILY, Given"; overflow appends
// ", et al.". Default cap 3.
func iso690Authors(authors []Author, max int, reverse bool) string {
	if max <= 0 {
		max = 3
	}
	if len(authors) == 0 {
		return ""
	}
	fmtd, truncated := truncateFormat(authors, max, reverse, iso690Name)
	if truncated {
		return strings.Join(fmtd, ", ") + ", et al."
	}
	return strings.Join(fmtd, ", ")
}

// harvardAuthors joins as "Family, G.I., Family, G.I. and Family, G.I.";
// overflow appends " et al.". Default cap 3.
func harvardAuthors(authors []Author, max int, reverse bool) string {
	if max <= 0 {
		max = 3
	}
	if len(authors) == 0 {
		return ""
	}
	fmtd, truncated := truncateFormat(authors, max, reverse, harvardName)
	switch {
	case truncated:
		return strings.Join(fmtd, ", ") + " et al."
	case len(fmtd) == 1:
		return fmtd[0]
	case len(fmtd) == 2:
		return fmtd[0] + " and " + fmtd[1]
	default:
		return strings.Join(fmtd[:len(fmtd)-1], ", ") + " and " + fmtd[len(fmtd)-1]
	}
}

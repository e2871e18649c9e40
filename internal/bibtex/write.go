// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kemu-chem/bibcite/pkg/types"
)

// fieldOrder is the conventional field order for emitted records. Fields
// outside this list are appended alphabetically after it.
var fieldOrder = []string{
	"title", "author", "journal", "booktitle", "year", "volume",
	"number", "pages", "publisher", "address", "edition", "doi",
	"isbn", "url",
}

// Format renders entries as BibTeX source. Entries without a citekey get
// a positional one ("ref1", "ref2", ...).
func Format(entries []types.Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		formatEntry(&b, e, i)
	}
	return b.String()
}

func formatEntry(b *strings.Builder, e types.Entry, i int) {
	kind := e.Field("ENTRYTYPE")
	if kind == "" {
		kind = "article"
	}
	key := e.Citekey()
	if key == "" {
		key = fmt.Sprintf("ref%d", i+1)
	}
	fmt.Fprintf(b, "@%s{%s,\n", kind, key)

	var lines []string
	seen := map[string]bool{"ENTRYTYPE": true, "ID": true}
	for _, name := range fieldOrder {
		if v := e.Field(name); v != "" {
			lines = append(lines, fmt.Sprintf("  %s = {%s}", name, v))
			seen[name] = true
		}
	}
	var rest []string
	for name, v := range e {
		if !seen[name] && v != "" {
			rest = append(rest, name)
		}
	}
	// Deterministic output for the stragglers.
	sort.Strings(rest)
	for _, name := range rest {
		lines = append(lines, fmt.Sprintf("  %s = {%s}", name, e[name]))
	}

	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n}\n")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtex parses BibTeX source into flat entry records and formats
// entry records back into BibTeX source. The parser is deliberately
// permissive about what it finds between records (BibTeX treats that text
// as commentary) but strict inside them: a malformed record aborts the
// whole parse with a single descriptive error.
package bibtex

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kemu-chem/bibcite/pkg/types"
)

// commonStrings are the month abbreviations most .bib files rely on
// without defining them. @string definitions in the source extend and
// override this table.
var commonStrings = map[string]string{
	"jan": "January", "feb": "February", "mar": "March",
	"apr": "April", "may": "May", "jun": "June",
	"jul": "July", "aug": "August", "sep": "September",
	"oct": "October", "nov": "November", "dec": "December",
}

// Parse scans src and returns one Entry per @-record, in source order.
// @comment and @preamble blocks are skipped; @string constants are
// substituted for bare words in later field values. Field names are
// lowercased; "ENTRYTYPE" holds the record type and "ID" the citekey.
func Parse(src string) ([]types.Entry, error) {
	p := &parser{src: src, line: 1}

	strs := make(map[string]string, len(commonStrings))
	for k, v := range commonStrings {
		strs[k] = v
	}

	var entries []types.Entry
	for {
		if !p.seekAt() {
			return entries, nil
		}
		kind := strings.ToLower(p.ident())
		if kind == "" {
			return nil, fmt.Errorf("bibtex: line %d: expected entry type after @", p.line)
		}
		switch kind {
		case "comment", "preamble":
			if err := p.skipGroup(); err != nil {
				return nil, err
			}
		case "string":
			if err := p.parseString(strs); err != nil {
				return nil, err
			}
		default:
			e, err := p.parseEntry(kind, strs)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
	}
}

type parser struct {
	src  string
	pos  int
	line int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) next() byte {
	c := p.peek()
	if c != 0 {
		p.pos++
		if c == '\n' {
			p.line++
		}
	}
	return c
}

func (p *parser) skipWS() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.next()
	}
}

// seekAt advances to the next '@' and consumes it. Text outside records
// is commentary and is skipped silently.
func (p *parser) seekAt() bool {
	for p.pos < len(p.src) {
		if p.next() == '@' {
			return true
		}
	}
	return false
}

// ident reads a bare identifier (entry types, field names, citekeys
// exclude whitespace and the structural delimiters).
func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '{' || c == '(' || c == '}' || c == ')' || c == ',' || c == '=' || c == '#' || c == '"' || unicode.IsSpace(rune(c)) {
			break
		}
		p.next()
	}
	return strings.TrimSpace(p.src[start:p.pos])
}

// open consumes the record's opening delimiter and returns its closer.
func (p *parser) open() (byte, error) {
	p.skipWS()
	switch p.next() {
	case '{':
		return '}', nil
	case '(':
		return ')', nil
	default:
		return 0, fmt.Errorf("bibtex: line %d: expected { or ( after entry type", p.line)
	}
}

// skipGroup consumes a brace- or paren-balanced group.
func (p *parser) skipGroup() error {
	closer, err := p.open()
	if err != nil {
		return err
	}
	opener := byte('{')
	if closer == ')' {
		opener = '('
	}
	depth := 1
	for p.pos < len(p.src) {
		switch p.next() {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
	return fmt.Errorf("bibtex: unterminated block at end of input")
}

// parseString reads one @string{name = value} definition into strs.
func (p *parser) parseString(strs map[string]string) error {
	closer, err := p.open()
	if err != nil {
		return err
	}
	p.skipWS()
	name := strings.ToLower(p.ident())
	if name == "" {
		return fmt.Errorf("bibtex: line %d: @string without a name", p.line)
	}
	p.skipWS()
	if p.next() != '=' {
		return fmt.Errorf("bibtex: line %d: expected = in @string", p.line)
	}
	val, err := p.value(strs)
	if err != nil {
		return err
	}
	strs[name] = val
	p.skipWS()
	if p.next() != closer {
		return fmt.Errorf("bibtex: line %d: unterminated @string", p.line)
	}
	return nil
}

// parseEntry reads one record body: the citekey, then comma-separated
// field = value pairs until the closing delimiter.
func (p *parser) parseEntry(kind string, strs map[string]string) (types.Entry, error) {
	closer, err := p.open()
	if err != nil {
		return nil, err
	}

	p.skipWS()
	key := p.ident()
	entry := types.Entry{"ENTRYTYPE": kind, "ID": key}

	for {
		p.skipWS()
		switch p.peek() {
		case ',':
			p.next()
			continue
		case closer:
			p.next()
			return entry, nil
		case 0:
			return nil, fmt.Errorf("bibtex: unterminated entry %q at end of input", key)
		}

		name := strings.ToLower(p.ident())
		if name == "" {
			return nil, fmt.Errorf("bibtex: line %d: expected field name in entry %q", p.line, key)
		}
		p.skipWS()
		if p.next() != '=' {
			return nil, fmt.Errorf("bibtex: line %d: expected = after field %q", p.line, name)
		}
		val, err := p.value(strs)
		if err != nil {
			return nil, err
		}
		entry[name] = val
	}
}

// value reads one field value: a braced group, a quoted string, a number,
// or a string-constant name, possibly concatenated with #. Interior
// whitespace runs collapse to single spaces.
func (p *parser) value(strs map[string]string) (string, error) {
	var b strings.Builder
	for {
		p.skipWS()
		switch c := p.peek(); {
		case c == '{':
			part, err := p.braced()
			if err != nil {
				return "", err
			}
			b.WriteString(part)
		case c == '"':
			part, err := p.quoted()
			if err != nil {
				return "", err
			}
			b.WriteString(part)
		default:
			word := p.ident()
			if word == "" {
				return "", fmt.Errorf("bibtex: line %d: expected a field value", p.line)
			}
			if sub, ok := strs[strings.ToLower(word)]; ok {
				b.WriteString(sub)
			} else {
				b.WriteString(word)
			}
		}
		p.skipWS()
		if p.peek() != '#' {
			break
		}
		p.next()
	}
	return collapseSpace(b.String()), nil
}

// braced reads a {...} group with nesting, keeping interior braces.
func (p *parser) braced() (string, error) {
	p.next() // consume {
	start := p.pos
	depth := 1
	for p.pos < len(p.src) {
		switch p.next() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return p.src[start : p.pos-1], nil
			}
		}
	}
	return "", fmt.Errorf("bibtex: unterminated braced value at end of input")
}

// quoted reads a "..." value; braces inside protect quote characters.
func (p *parser) quoted() (string, error) {
	p.next() // consume "
	start := p.pos
	depth := 0
	for p.pos < len(p.src) {
		switch p.next() {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth == 0 {
				return p.src[start : p.pos-1], nil
			}
		}
	}
	return "", fmt.Errorf("bibtex: unterminated quoted value at end of input")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite is the style-driven citation formatting engine: author-name
// and author-list formatting, per-style entry templates, and the dual
// plain/marked-up rendering discipline. Every template builds one sequence
// of tagged segments and projects it into both encodings, so the two
// outputs cannot drift apart.
package cite

import (
	"strings"

	"github.com/kemu-chem/bibcite/internal/markup"
)

// Emphasis marks how a segment is typeset in marked-up output.
type Emphasis int

const (
	EmphNone Emphasis = iota
	EmphItalic
	EmphBold
	EmphSuper
)

// Segment is one run of citation text with uniform emphasis.
type Segment struct {
	Text string
	Emph Emphasis
}

// Rendered holds the two sibling encodings of one citation. Stripping the
// markup control sequences from Markup yields exactly Plain.
type Rendered struct {
	Plain  string
	Markup string
}

// segments accumulates the tagged runs of one citation. Empty runs are
// dropped at insertion so presence conditionals stay in the templates.
type segments []Segment

func (s *segments) add(text string) {
	if text != "" {
		*s = append(*s, Segment{Text: text})
	}
}

func (s *segments) italic(text string) {
	if text != "" {
		*s = append(*s, Segment{Text: text, Emph: EmphItalic})
	}
}

func (s *segments) bold(text string) {
	if text != "" {
		*s = append(*s, Segment{Text: text, Emph: EmphBold})
	}
}

func (s *segments) super(text string) {
	if text != "" {
		*s = append(*s, Segment{Text: text, Emph: EmphSuper})
	}
}

// trim removes leading whitespace from the first run and trailing
// whitespace from the last, dropping runs emptied by the trim. Citations
// with an empty author segment would otherwise start with a stray space.
func (s segments) trim() segments {
	out := make(segments, 0, len(s))
	out = append(out, s...)
	for len(out) > 0 {
		out[0].Text = strings.TrimLeft(out[0].Text, " \t")
		if out[0].Text != "" {
			break
		}
		out = out[1:]
	}
	for len(out) > 0 {
		last := len(out) - 1
		out[last].Text = strings.TrimRight(out[last].Text, " \t")
		if out[last].Text != "" {
			break
		}
		out = out[:last]
	}
	return out
}

// plain concatenates the runs with no markup.
func (s segments) plain() string {
	var b strings.Builder
	for _, seg := range s {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// markup projects the runs through b: emphasized runs are wrapped in the
// builder's corresponding command, all others pass through Escape.
func (s segments) markup(b markup.Builder) string {
	var out strings.Builder
	for _, seg := range s {
		switch seg.Emph {
		case EmphItalic:
			out.WriteString(b.Italic(seg.Text))
		case EmphBold:
			out.WriteString(b.Bold(seg.Text))
		case EmphSuper:
			out.WriteString(b.Superscript(seg.Text))
		default:
			out.WriteString(b.Escape(seg.Text))
		}
	}
	return out.String()
}

// rtf is the rich-encoding builder every template renders through; HTML
// output is derived from it by the markup transcoder.
var rtf markup.RTF

// render trims the segment list and projects it into both encodings.
func (s segments) render() Rendered {
	t := s.trim()
	return Rendered{Plain: t.plain(), Markup: t.markup(rtf)}
}

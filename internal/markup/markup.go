// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup renders citation fragments in two encodings: RTF for
// pasting into word processors and HTML for browser display. Both builders
// offer the same primitives so the citation templates stay
// encoding-agnostic, and a transcoder converts RTF output to HTML.
package markup

// Builder produces fragments of one markup dialect. Implementations must
// guarantee that stripping the dialect's control sequences from
// Italic(Escape(x)) (and the other wraps) yields x again, for any x that
// contains none of the dialect's control characters before escaping.
type Builder interface {
	// Escape encodes the dialect's control characters in text.
	Escape(text string) string

	// Italic, Bold and Superscript escape text and wrap it in the
	// corresponding emphasis command.
	Italic(text string) string
	Bold(text string) string
	Superscript(text string) string

	// ParagraphBreak separates consecutive citations in a document.
	ParagraphBreak() string

	// DocumentWrap surrounds body with the dialect's document
	// preamble and postamble, if it has any.
	DocumentWrap(body string) string
}

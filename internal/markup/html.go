// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import "html"

// HTML builds fragments with plain display tags. Unlike RTF, runes above
// 0x7F pass through unescaped; browsers take UTF-8 directly.
type HTML struct{}

// Escape encodes the HTML special characters.
func (HTML) Escape(text string) string { return html.EscapeString(text) }

// Italic wraps text in <i> tags.
func (h HTML) Italic(text string) string { return "<i>" + h.Escape(text) + "</i>" }

// Bold wraps text in <b> tags.
func (h HTML) Bold(text string) string { return "<b>" + h.Escape(text) + "</b>" }

// Superscript wraps text in <sup> tags.
func (h HTML) Superscript(text string) string { return "<sup>" + h.Escape(text) + "</sup>" }

// ParagraphBreak returns a line-break tag.
func (HTML) ParagraphBreak() string { return "<br>" }

// DocumentWrap returns body unchanged; display markup needs no preamble.
func (HTML) DocumentWrap(body string) string { return body }

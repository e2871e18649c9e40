// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"fmt"
	"strings"
)

// rtfHeader is the fixed document preamble: ANSI code page 1252, Times New
// Roman, 12 pt. The \uc1 keyword tells readers to skip one fallback
// character after each \uNNNN escape.
const (
	rtfHeader = `{\rtf1\ansi\ansicpg1252\deff0{\fonttbl{\f0\fnil\fcharset0 Times New Roman;}}\viewkind4\uc1\pard\f0\fs24 `
	rtfFooter = `}`
)

// RTF builds fragments in the RTF dialect. Every rune above 0x7F is
// written as a numeric \uNNNN? escape because the target renderers do not
// accept raw high codepoints.
type RTF struct{}

// Escape encodes backslashes, braces, and non-ASCII runes.
func (RTF) Escape(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '{':
			b.WriteString(`\{`)
		case r == '}':
			b.WriteString(`\}`)
		case r > 0x7F:
			fmt.Fprintf(&b, `\u%d?`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Italic wraps text in an italic group.
func (t RTF) Italic(text string) string { return `{\i ` + t.Escape(text) + `}` }

// Bold wraps text in a bold group.
func (t RTF) Bold(text string) string { return `{\b ` + t.Escape(text) + `}` }

// Superscript wraps text in a superscript group.
func (t RTF) Superscript(text string) string { return `{\super ` + t.Escape(text) + `}` }

// ParagraphBreak returns the RTF paragraph mark.
func (RTF) ParagraphBreak() string { return `\par ` }

// DocumentWrap surrounds body with the fixed RTF preamble and postamble.
func (RTF) DocumentWrap(body string) string { return rtfHeader + body + rtfFooter }

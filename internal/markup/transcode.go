// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rtfPreambleRe  = regexp.MustCompile(`^\{\\rtf.*?\\fs24\s*`)
	rtfPostambleRe = regexp.MustCompile(`\}$`)
	rtfItalicRe    = regexp.MustCompile(`\{\\i\s+(.*?)\}`)
	rtfBoldRe      = regexp.MustCompile(`\{\\b\s+(.*?)\}`)
	rtfSuperRe     = regexp.MustCompile(`\{\\super\s+(.*?)\}`)
	rtfParRe       = regexp.MustCompile(`\\par\s*`)
	rtfUnicodeRe   = regexp.MustCompile(`\\u(\d+)\?`)
	rtfControlRe   = regexp.MustCompile(`\\[a-z]+\d*\s*`)
)

// rtfUnescaper reverses the control-character escapes written by
// RTF.Escape. Applied last, after every control word is gone.
var rtfUnescaper = strings.NewReplacer(`\\`, `\`, `\{`, "{", `\}`, "}")

// ToHTML transcodes output of the RTF builder into display HTML: the
// document preamble and postamble are stripped, each wrap command becomes
// its tag equivalent, paragraph marks become <br>, numeric escapes decode
// back to their runes, and the character escapes introduced by Escape are
// undone. Input that contains no RTF control sequences passes through
// unchanged, so the conversion is idempotent.
func ToHTML(rtf string) string {
	// The postamble brace is stripped only when the preamble matched;
	// a bare fragment may legitimately end with an emphasis group.
	text := rtf
	if loc := rtfPreambleRe.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
		text = rtfPostambleRe.ReplaceAllString(text, "")
	}

	text = rtfItalicRe.ReplaceAllString(text, "<i>$1</i>")
	text = rtfBoldRe.ReplaceAllString(text, "<b>$1</b>")
	text = rtfSuperRe.ReplaceAllString(text, "<sup>$1</sup>")
	text = rtfParRe.ReplaceAllString(text, "<br>")

	text = rtfUnicodeRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := rtfUnicodeRe.FindStringSubmatch(m)
		n, err := strconv.Atoi(sub[1])
		if err != nil {
			return m
		}
		return string(rune(n))
	})

	// Drop any remaining control words, then restore escaped characters.
	text = rtfControlRe.ReplaceAllString(text, "")
	text = rtfUnescaper.Replace(text)

	return strings.TrimSpace(text)
}

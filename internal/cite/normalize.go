// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"regexp"
	"strings"
)

// emphCommands are the inline emphasis commands whose argument replaces
// the whole command. The argument pattern excludes braces so nested
// commands resolve innermost-first under the fixpoint loop below.
var emphCommands = []*regexp.Regexp{
	regexp.MustCompile(`\\textit\{([^{}]*)\}`),
	regexp.MustCompile(`\\textbf\{([^{}]*)\}`),
	regexp.MustCompile(`\\emph\{([^{}]*)\}`),
	regexp.MustCompile(`\{\\em\s+([^{}]*)\}`),
}

var hyphenRunRe = regexp.MustCompile(`-{2,}`)

// accentReplacer maps the common TeX accent escapes to their precomposed
// characters. Applied both before brace stripping (so composed forms like
// \c{c} match) and after it (so braced arguments like \"{o} reduce to
// \"o and then resolve in the same pass).
var accentReplacer = strings.NewReplacer(
	`\'e`, "é", `\'a`, "á", `\'i`, "í", `\'o`, "ó", `\'u`, "ú",
	"\\`e", "è", "\\`a", "à",
	`\"o`, "ö", `\"u`, "ü", `\"a`, "ä",
	`\~n`, "ñ", `\c{c}`, "ç", `\ss`, "ß",
)

var braceStripper = strings.NewReplacer("{", "", "}", "")

// Normalize strips TeX-style source artifacts from a free-text field:
// inline emphasis commands are replaced by their argument, the accent
// table is applied, brace grouping is removed, non-breaking-space markers
// become plain spaces, and hyphen runs collapse to a single hyphen. It is
// a best-effort cleaner: unknown commands are left as-is. Normalize is
// idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	text := raw
	for _, re := range emphCommands {
		for {
			next := re.ReplaceAllString(text, "$1")
			if next == text {
				break
			}
			text = next
		}
	}
	text = accentReplacer.Replace(text)
	text = strings.ReplaceAll(text, `\&`, "&")
	text = braceStripper.Replace(text)
	text = accentReplacer.Replace(text)
	text = strings.ReplaceAll(text, "~", " ")
	text = hyphenRunRe.ReplaceAllString(text, "-")
	return strings.TrimSpace(text)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"strings"
	"testing"
)

func TestRTFEscape(t *testing.T) {
	var b RTF
	tests := []struct {
		in, want string
	}{
		{"plain ascii", "plain ascii"},
		{`back\slash`, `back\\slash`},
		{"brace {group}", `brace \{group\}`},
		{"en–dash", `en\u8211?dash`},
		{"Müller", `M\u252?ller`},
		{"", ""},
	}
	for _, tt := range tests {
		if got := b.Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRTFWraps(t *testing.T) {
	var b RTF
	if got, want := b.Italic("J. Org. Chem."), `{\i J. Org. Chem.}`; got != want {
		t.Errorf("Italic = %q, want %q", got, want)
	}
	if got, want := b.Bold("31"), `{\b 31}`; got != want {
		t.Errorf("Bold = %q, want %q", got, want)
	}
	if got, want := b.Superscript("3"), `{\super 3}`; got != want {
		t.Errorf("Superscript = %q, want %q", got, want)
	}
}

func TestRTFDocumentWrap(t *testing.T) {
	var b RTF
	doc := b.DocumentWrap("body text")
	if !strings.HasPrefix(doc, `{\rtf1\ansi`) {
		t.Errorf("missing preamble: %q", doc)
	}
	if !strings.HasSuffix(doc, "body text}") {
		t.Errorf("missing postamble: %q", doc)
	}
}

func TestHTMLBuilder(t *testing.T) {
	var b HTML
	if got, want := b.Escape("AT&T <sub>"), "AT&amp;T &lt;sub&gt;"; got != want {
		t.Errorf("Escape = %q, want %q", got, want)
	}
	if got, want := b.Italic("Nature"), "<i>Nature</i>"; got != want {
		t.Errorf("Italic = %q, want %q", got, want)
	}
	if got, want := b.DocumentWrap("x"), "x"; got != want {
		t.Errorf("DocumentWrap = %q, want %q", got, want)
	}
}

func TestToHTML(t *testing.T) {
	var b RTF
	tests := []struct {
		name string
		rtf  string
		want string
	}{
		{
			name: "wrapped document",
			rtf:  b.DocumentWrap(`Smith, A. {\i Nature} {\b 31}, 1\u8211?2 (1990).`),
			want: "Smith, A. <i>Nature</i> <b>31</b>, 1–2 (1990).",
		},
		{
			name: "bare fragment keeps its trailing group",
			rtf:  `see{\super 3}`,
			want: "see<sup>3</sup>",
		},
		{
			name: "paragraph marks become line breaks",
			rtf:  b.DocumentWrap(`first\par second`),
			want: "first<br>second",
		},
		{
			name: "escaped braces restored",
			rtf:  `a \{b\} c`,
			want: `a {b} c`,
		},
		{
			name: "plain text passes through",
			rtf:  "no control words here",
			want: "no control words here",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHTML(tt.rtf)
			if got != tt.want {
				t.Errorf("ToHTML = %q, want %q", got, tt.want)
			}
			// Output free of RTF control sequences converts to itself.
			if again := ToHTML(got); again != got {
				t.Errorf("ToHTML is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestToHTMLRoundTripsBuilderOutput(t *testing.T) {
	var rtf RTF
	var html HTML
	// The same fragment built through both builders must agree after
	// transcoding, for ASCII text with no HTML-special characters.
	segs := []struct{ text, kind string }{
		{"Dmitrienko, G. I. ", ""},
		{"Tetrahedron Letters", "i"},
		{" ", ""},
		{"31", "b"},
		{", 3681", ""},
	}
	var viaRTF, viaHTML strings.Builder
	for _, s := range segs {
		switch s.kind {
		case "i":
			viaRTF.WriteString(rtf.Italic(s.text))
			viaHTML.WriteString(html.Italic(s.text))
		case "b":
			viaRTF.WriteString(rtf.Bold(s.text))
			viaHTML.WriteString(html.Bold(s.text))
		default:
			viaRTF.WriteString(rtf.Escape(s.text))
			viaHTML.WriteString(html.Escape(s.text))
		}
	}
	got := ToHTML(viaRTF.String())
	want := strings.TrimSpace(viaHTML.String())
	if got != want {
		t.Errorf("transcoded RTF %q != direct HTML %q", got, want)
	}
}

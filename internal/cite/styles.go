// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"fmt"
	"sort"
	"strings"
)

// Options tunes a style template. MaxAuthors 0 means the style's own
// default cap; OmitTitle removes the title segment and its trailing
// punctuation from both encodings; ReverseAuthors swaps the first and
// last formatted author strings.
type Options struct {
	MaxAuthors     int
	OmitTitle      bool
	ReverseAuthors bool
}

// StyleFunc renders one entry's fields at position idx into the two
// sibling encodings. Style functions are pure; they may run concurrently
// over unrelated entries.
type StyleFunc func(f Fields, idx int, opts Options) Rendered

// referenceStyles is the read-only reference-style registry, initialized
// once at process start.
var referenceStyles = map[string]StyleFunc{
	"ACS":        formatACS,
	"APA (7th)":  formatAPA,
	"Harvard":    formatHarvard,
	"Vancouver":  formatVancouver,
	"Angewandte": formatAngewandte,
	"RSC":        formatRSC,
	"AoA":        formatAoA,
	"Nature":     formatNature,
	"IEEE":       formatIEEE,
	"ISO 690":    formatISO690,
}

// ReferenceStyle looks up a reference style by key. An unknown key is a
// caller error; there is no fallback style.
func ReferenceStyle(key string) (StyleFunc, error) {
	fn, ok := referenceStyles[key]
	if !ok {
		return nil, fmt.Errorf("unknown reference style %q", key)
	}
	return fn, nil
}

// ReferenceStyleKeys returns the registry keys, sorted.
func ReferenceStyleKeys() []string {
	keys := make([]string, 0, len(referenceStyles))
	for k := range referenceStyles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render formats fields with the named reference style.
func Render(style string, f Fields, idx int, opts Options) (Rendered, error) {
	fn, err := ReferenceStyle(style)
	if err != nil {
		return Rendered{}, err
	}
	return fn(f, idx, opts), nil
}

// ACS: Authors Title. Journal Year, Volume, Pages. DOI: doi
func formatACS(f Fields, idx int, opts Options) Rendered {
	auth := acsAuthors(f.Authors, opts.MaxAuthors, opts.ReverseAuthors)
	var s segments
	switch f.Kind {
	case KindArticle:
		if opts.OmitTitle {
			s.add(auth + " ")
		} else {
			s.add(auth + " " + f.Title + ". ")
		}
		s.italic(f.Journal)
		s.add(" " + f.Year + ", ")
		s.italic(f.Volume)
		if f.Pages != "" {
			s.add(", " + f.Pages + ".")
		} else {
			s.add(".")
		}
		if f.DOI != "" {
			s.add(" DOI: " + f.DOI)
		}
	case KindBook:
		if opts.OmitTitle {
			s.add(auth + " " + f.Publisher + ": " + f.Address + ", " + f.Year + ".")
		} else {
			s.add(auth + " ")
			s.italic(f.Title)
			s.add("; " + f.Publisher + ": " + f.Address + ", " + f.Year + ".")
		}
	default:
		if opts.OmitTitle {
			s.add(auth + " " + f.Year + ".")
		} else {
			s.add(auth + " " + f.Title + ". " + f.Year + ".")
		}
	}
	return s.render()
}

// APA (7th): Authors (Year). Title. Journal, Volume(Issue), Pages. doi URL
func formatAPA(f Fields, idx int, opts Options) Rendered {
	auth := apaAuthors(f.Authors, opts.MaxAuthors, opts.ReverseAuthors)
	var s segments
	switch f.Kind {
	case KindArticle:
		if opts.OmitTitle {
			s.add(auth + " (" + f.Year + "). ")
		} else {
			s.add(auth + " (" + f.Year + "). " + f.Title + ". ")
		}
		s.italic(f.Journal)
		s.add(", ")
		s.italic(f.volIssue())
		if f.Pages != "" {
			s.add(", " + f.Pages + ".")
		} else {
			s.add(".")
		}
		if f.DOI != "" {
			s.add(" https://doi.org/" + f.DOI)
		}
	case KindBook:
		if opts.OmitTitle {
			s.add(auth + " (" + f.Year + "). " + f.Publisher + ".")
		} else {
			s.add(auth + " (" + f.Year + "). ")
			s.italic(f.Title)
			s.add(". " + f.Publisher + ".")
		}
	default:
		if opts.OmitTitle {
			s.add(auth + " (" + f.Year + ").")
		} else {
			s.add(auth + " (" + f.Year + "). " + f.Title + ".")
		}
	}
	return s.render()
}

// Vancouver: n. Authors. Title. Journal. Year;Volume(Issue):Pages.
// Pages keep ASCII hyphens per the style's convention.
func formatVancouver(f Fields, idx int, opts Options) Rendered {
	auth := vancouverAuthors(f.Authors, opts.MaxAuthors, opts.ReverseAuthors)
	pages := asciiPages(f.Pages)
	var s segments
	switch f.Kind {
	case KindArticle:
		if opts.OmitTitle {
			s.add(fmt.Sprintf("%d. %s. ", idx, auth))
		} else {
			s.add(fmt.Sprintf("%d. %s. %s. ", idx, auth, f.Title))
		}
		s.italic(f.Journal)
		s.add(fmt.Sprintf(". %s;%s:%s.", f.Year, f.volIssue(), pages))
	default:
		if opts.OmitTitle {
			s.add(fmt.Sprintf("%d. %s. %s.", idx, auth, f.Year))
		} else {
			s.add(fmt.Sprintf("%d. %s. %s. %s.", idx, auth, f.Title, f.Year))
		}
	}
	return s.render()
}

// Angewandte: Authors, Journal Year, Volume, Pages. Articles never carry
// the title in this style.
func formatAngewandte(f Fields, idx int, opts Options) Rendered {
	auth := natureAuthors(f.Authors, opts.MaxAuthors, opts.ReverseAuthors)
	var s segments
	switch f.Kind {
	case KindArticle:
		s.add(auth + ", ")
		s.italic(f.Journal)
		s.add(" " + f.Year + ", ")
		s.italic(f.Volume)
		s.add(", " + f.Pages + ".")
		if f.DOI != "" {
			s.add(" DOI: " + f.DOI)
		}
	case KindBook:
		if opts.OmitTitle {
			s.add(auth + ", " + f.Publisher + ", " + f.Address + ", " + f.Year + ".")
		} else {
			s.add(auth + ", ")
			s.italic(f.Title)
			s.add(", " + f.Publisher + ", " + f.Address + ", " + f.Year + ".")
		}
	default:
		if opts.OmitTitle {
			s.add(auth + ", " + f.Year + ".")
		} else {
			s.add(auth + ", " + f.Title + ", " + f.Year + ".")
		}
	}
	return s.render()
}

// RSC: Authors, Journal, Year, Volume, Pages. Volume is bold.
func formatRSC(f Fields, idx int, opts Options) Rendered {
	auth := natureAuthors(f.Authors, opts.MaxAuthors, opts.ReverseAuthors)
	var s segments
	switch f.Kind {
	case KindArticle:
		s.add(auth + ", ")
		s.italic(f.Journal)
		s.add(", " + f.Year + ", ")
		s.bold(f.Volume)
		s.add(", " + f.Pages + ".")
		if f.DOI != "" {
			s.add(" DOI: " + f.DOI)
		}
	case KindBook:
		if opts.OmitTitle {
			s.add(auth + ", " + f.Publisher + ", " + f.Year + ".")
		} else {
			s.add(auth + ", ")
			s.italic(f.Title)
			s.add(", " + f.Publisher + ", " + f.Year + ".")
		}
	default:
		if opts.OmitTitle {
			s.add(auth + ", " + f.Year + ".")
		} else {
			s.add(auth + ", " + f.Title + ", " + f.Year + ".")
		}
	}
	return s.render()
}

// AoA: Authors Title. Journal Year, Volume, Pages. Year is bold.
func formatAoA(f Fields, idx int, opts Options) Rendered {
	auth := acsAuthors(f.Authors, opts.MaxAuthors, opts.ReverseAuthors)
	var s segments
	switch f.Kind {
	case KindArticle:
		if opts.OmitTitle {
			s.add(auth + " ")
		} else {
			s.add(auth + " " + f.Title + ". ")
		}
		s.italic(f.Journal)
		s.add(" ")
		s.bold(f.Year)
		s.add(", ")
		s.italic(f.Volume)
		s.add(", " + f.Pages + ".")
		if f.DOI != "" {
			s.add(" https://doi.org/" + f.DOI)
		}
	default:
		if opts.OmitTitle {
			s.add(auth + " " + f.Year + ".")
		} else {
			s.add(auth + " " + f.Title + ". " + f.Year + ".")
		}
	}
	return s.render()
}

// Nature: n. Authors Title. Journal Volume, Pages (Year). Volume is bold.
func formatNature(f Fields, idx int, opts Options) Rendered {
	auth := natureAuthors(f.Authors, opts.MaxAuthors, opts.ReverseAuthors)
	var s segments
	switch f.Kind {
	case KindArticle:
		if opts.OmitTitle {
			s.add(fmt.Sprintf("%d. %s ", idx, auth))
		} else {
			s.add(fmt.Sprintf("%d. %s %s. ", idx, auth, f.Title))
		}
		s.italic(f.Journal)
		s.add(" ")
		s.bold(f.Volume)
		s.add(", " + f.Pages + " (" + f.Year + ").")
		if f.DOI != "" {
			s.add(" https://doi.org/" + f.DOI)
		}
	case KindBook:
		if opts.OmitTitle {
			s.add(fmt.Sprintf("%d. %s (%s, %s).", idx, auth, f.Publisher, f.Year))
		} else {
			s.add(fmt.Sprintf("%d. %s ", idx, auth))
			s.italic(f.Title)
			s.add(" (" + f.Publisher + ", " + f.Year + ").")
		}
	default:
		if opts.OmitTitle {
			s.add(fmt.Sprintf("%d. %s (%s).", idx, auth, f.Year))
		} else {
			s.add(fmt.Sprintf("%d. %s %s (%s).", idx, auth, f.Title, f.Year))
		}
	}
	return s.render()
}

// IEEE: [n] Authors, "Title," Journal, vol. V, no. N, pp. P, Year.
func formatIEEE(f Fields, idx int, opts Options) Rendered {
	auth := ieeeAuthors(f.Authors, opts.MaxAuthors, opts.ReverseAuthors)
	var s segments
	switch f.Kind {
	case KindArticle:
		var parts []string
		if f.Volume != "" {
			parts = append(parts, "vol. "+f.Volume)
		}
		if f.Issue != "" {
			parts = append(parts, "no. "+f.Issue)
		}
		if f.Pages != "" {
			parts = append(parts, "pp. "+f.Pages)
		}
		detail := strings.Join(parts, ", ")
		if opts.OmitTitle {
			s.add(fmt.Sprintf("[%d] %s, ", idx, auth))
		} else {
			s.add(fmt.Sprintf("[%d] %s, \"%s,\" ", idx, auth, f.Title))
		}
		s.italic(f.Journal)
		s.add(", " + detail + ", " + f.Year + ".")
	case KindBook:
		if opts.OmitTitle {
			s.add(fmt.Sprintf("[%d] %s, %s: %s, %s.", idx, auth, f.Address, f.Publisher, f.Year))
		} else {
			s.add(fmt.Sprintf("[%d] %s, ", idx, auth))
			s.italic(f.Title)
			s.add(". " + f.Address + ": " + f.Publisher + ", " + f.Year + ".")
		}
	default:
		if opts.OmitTitle {
			s.add(fmt.Sprintf("[%d] %s, %s.", idx, auth, f.Year))
		} else {
			s.add(fmt.Sprintf("[%d] %s, \"%s,\" %s.", idx, auth, f.Title, f.Year))
		}
	}
	return s.render()
}

// ISO 690: [n] AUTHORS. Title. Journal. Year, Volume(Issue), Pages.
func formatISO690(f Fields, idx int, opts Options) Rendered {
	auth := iso690Authors(f.Authors, opts.MaxAuthors, opts.ReverseAuthors)
	var s segments
	switch f.Kind {
	case KindArticle:
		if opts.OmitTitle {
			s.add(fmt.Sprintf("[%d] %s. ", idx, auth))
		} else {
			s.add(fmt.Sprintf("[%d] %s. %s. ", idx, auth, f.Title))
		}
		s.italic(f.Journal)
		s.add(fmt.Sprintf(". %s, %s, %s.", f.Year, f.volIssue(), f.Pages))
		if f.DOI != "" {
			s.add(" DOI: " + f.DOI)
		}
	case KindBook:
		if opts.OmitTitle {
			s.add(fmt.Sprintf("[%d] %s. %s: %s, %s.", idx, auth, f.Address, f.Publisher, f.Year))
		} else {
			s.add(fmt.Sprintf("[%d] %s. ", idx, auth))
			s.italic(f.Title)
			s.add(". " + f.Address + ": " + f.Publisher + ", " + f.Year + ".")
		}
		if f.ISBN != "" {
			s.add(" ISBN " + f.ISBN + ".")
		}
	default:
		if opts.OmitTitle {
			s.add(fmt.Sprintf("[%d] %s. %s.", idx, auth, f.Year))
		} else {
			s.add(fmt.Sprintf("[%d] %s. %s. %s.", idx, auth, f.Title, f.Year))
		}
	}
	return s.render()
}

// Harvard: Authors (Year) 'Title', Journal, Volume(Issue), pp. Pages.
func formatHarvard(f Fields, idx int, opts Options) Rendered {
	auth := harvardAuthors(f.Authors, opts.MaxAuthors, opts.ReverseAuthors)
	var s segments
	switch f.Kind {
	case KindArticle:
		if opts.OmitTitle {
			s.add(auth + " (" + f.Year + ") ")
		} else {
			s.add(auth + " (" + f.Year + ") '" + f.Title + "', ")
		}
		s.italic(f.Journal)
		s.add(", " + f.volIssue() + ", pp. " + f.Pages + ".")
		if f.DOI != "" {
			s.add(" doi: " + f.DOI)
		}
	case KindBook:
		edition := ""
		if f.Edition != "" {
			edition = " " + f.Edition + " edn."
		}
		if opts.OmitTitle {
			s.add(auth + " (" + f.Year + ")." + edition + " " + f.Address + ": " + f.Publisher + ".")
		} else {
			s.add(auth + " (" + f.Year + ") ")
			s.italic(f.Title)
			s.add("." + edition + " " + f.Address + ": " + f.Publisher + ".")
		}
	default:
		if opts.OmitTitle {
			s.add(auth + " (" + f.Year + ").")
		} else {
			s.add(auth + " (" + f.Year + ") '" + f.Title + "'.")
		}
	}
	return s.render()
}

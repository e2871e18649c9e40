// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"fmt"
	"sort"
	"strconv"
)

// InTextFunc renders an in-text citation marker for one entry at
// position idx.
type InTextFunc func(f Fields, idx int) Rendered

// inTextStyles is the read-only in-text style registry.
var inTextStyles = map[string]InTextFunc{
	"(Author, Year)": inTextParenthetical,
	"Author (Year)":  inTextNarrative,
	"[n]":            inTextNumbered,
	"Superscript":    inTextSuperscript,
}

// InTextStyle looks up an in-text style by key. An unknown key is a
// caller error; there is no fallback style.
func InTextStyle(key string) (InTextFunc, error) {
	fn, ok := inTextStyles[key]
	if !ok {
		return nil, fmt.Errorf("unknown in-text style %q", key)
	}
	return fn, nil
}

// InTextStyleKeys returns the registry keys, sorted.
func InTextStyleKeys() []string {
	keys := make([]string, 0, len(inTextStyles))
	for k := range inTextStyles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// authorYearTier collapses the author list to the in-text tier: one family
// name, two joined with "&", or the first family plus "et al.". Zero
// authors render as "Unknown".
func authorYearTier(f Fields) (string, string) {
	switch len(f.Authors) {
	case 0:
		return "Unknown", f.Year
	case 1:
		return f.Authors[0].Family, f.Year
	case 2:
		return f.Authors[0].Family + " & " + f.Authors[1].Family, f.Year
	default:
		return f.Authors[0].Family + " et al.", f.Year
	}
}

func inTextParenthetical(f Fields, idx int) Rendered {
	auth, year := authorYearTier(f)
	var s segments
	s.add("(" + auth + ", " + year + ")")
	return s.render()
}

func inTextNarrative(f Fields, idx int) Rendered {
	auth, year := authorYearTier(f)
	var s segments
	s.add(auth + " (" + year + ")")
	return s.render()
}

func inTextNumbered(f Fields, idx int) Rendered {
	var s segments
	s.add("[" + strconv.Itoa(idx) + "]")
	return s.render()
}

func inTextSuperscript(f Fields, idx int) Rendered {
	var s segments
	s.super(strconv.Itoa(idx))
	return s.render()
}

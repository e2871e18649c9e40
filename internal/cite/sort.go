// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kemu-chem/bibcite/pkg/types"
)

// Order selects how entries are arranged before they are numbered.
type Order string

const (
	OrderAppearance Order = "appearance"
	OrderAuthorAsc  Order = "author-asc"
	OrderAuthorDesc Order = "author-desc"
	OrderYearAsc    Order = "year-asc"
	OrderYearDesc   Order = "year-desc"
)

// SortEntries orders entries in place. The author key is the first
// author's family name, case-folded; the year key is numeric, with
// non-numeric years sorting first. The sort is stable, so ties keep their
// order of appearance. An unknown order is a caller error.
func SortEntries(entries []types.Entry, order Order) error {
	switch order {
	case OrderAppearance, "":
		return nil
	case OrderAuthorAsc:
		sort.SliceStable(entries, func(i, j int) bool {
			return authorKey(entries[i]) < authorKey(entries[j])
		})
	case OrderAuthorDesc:
		sort.SliceStable(entries, func(i, j int) bool {
			return authorKey(entries[i]) > authorKey(entries[j])
		})
	case OrderYearAsc:
		sort.SliceStable(entries, func(i, j int) bool {
			return yearKey(entries[i]) < yearKey(entries[j])
		})
	case OrderYearDesc:
		sort.SliceStable(entries, func(i, j int) bool {
			return yearKey(entries[i]) > yearKey(entries[j])
		})
	default:
		return fmt.Errorf("unknown sort order %q", order)
	}
	return nil
}

func authorKey(e types.Entry) string {
	authors := ParseAuthors(e.Field("author"))
	if len(authors) == 0 {
		return ""
	}
	return strings.ToLower(authors[0].Family)
}

func yearKey(e types.Entry) int {
	y, err := strconv.Atoi(strings.TrimSpace(e.Field("year")))
	if err != nil {
		return 0
	}
	return y
}

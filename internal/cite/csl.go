// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"fmt"
	"io"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/kemu-chem/bibcite/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style
// Language) format. The field names follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title,omitempty"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	PublisherPlace string    `yaml:"publisher-place,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	ISBN           string    `yaml:"ISBN,omitempty"`
}

// CSLName represents a person's name in CSL format. Organizational
// authors use the literal field.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// WriteCSL writes entries as a CSL-YAML list to w.
func WriteCSL(entries []types.Entry, w io.Writer) error {
	items := make([]CSLItem, len(entries))
	for i, e := range entries {
		items[i] = toCSLItem(e, i)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts one entry to a CSLItem. Entries without a citekey
// get a positional id.
func toCSLItem(e types.Entry, i int) CSLItem {
	f := ExtractFields(e)

	id := e.Citekey()
	if id == "" {
		id = fmt.Sprintf("ref%d", i+1)
	}

	item := CSLItem{
		ID:             id,
		Type:           cslType(f.Kind),
		Title:          f.Title,
		ContainerTitle: f.Journal,
		Volume:         f.Volume,
		Issue:          f.Issue,
		Page:           asciiPages(f.Pages),
		Publisher:      f.Publisher,
		PublisherPlace: f.Address,
		DOI:            f.DOI,
		ISBN:           f.ISBN,
	}

	for _, a := range f.Authors {
		if a.Given == "" {
			item.Author = append(item.Author, CSLName{Literal: a.Family})
			continue
		}
		item.Author = append(item.Author, CSLName{Family: a.Family, Given: a.Given})
	}

	if y, err := strconv.Atoi(f.Year); err == nil {
		item.Issued = &CSLDate{DateParts: [][]int{{y}}}
	}

	return item
}

// cslType maps an entry kind to the CSL item type vocabulary.
func cslType(kind string) string {
	switch kind {
	case KindArticle:
		return "article-journal"
	case KindBook:
		return "book"
	case "inbook":
		return "chapter"
	case "inproceedings":
		return "paper-conference"
	case "phdthesis", "mastersthesis":
		return "thesis"
	case "techreport":
		return "report"
	default:
		return "document"
	}
}

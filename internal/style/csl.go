// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes the records as a CSL-YAML list to w.
func FormatCSL(records []types.CitationRecord, w io.Writer) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a CitationRecord to a CSLItem.
func toCSLItem(r types.CitationRecord) CSLItem {
	item := CSLItem{
		ID:             CiteKey(r),
		Type:           cslType(r.Type),
		Title:          r.Title,
		ContainerTitle: r.Journal,
		Publisher:      r.Publisher,
		Volume:         r.Volume,
		Issue:          r.Issue,
		Page:           r.Pages,
		DOI:            r.DOI,
		URL:            r.URL,
	}

	for _, a := range r.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if year, err := strconv.Atoi(r.Year); err == nil {
		item.Issued = &CSLDate{DateParts: [][]int{{year}}}
	}

	return item
}

// cslType maps a Crossref-style work type onto a CSL item type.
func cslType(workType string) string {
	switch workType {
	case "book", "monograph", "edited-book":
		return "book"
	case "proceedings-article":
		return "paper-conference"
	case "book-chapter":
		return "chapter"
	default:
		return "article-journal"
	}
}

// parseAuthorName splits a name string into CSL family/given parts. Names
// in "Family, Given" form split on the comma; otherwise the last token is
// family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	if idx := strings.IndexByte(name, ','); idx >= 0 {
		return CSLName{
			Family: strings.TrimSpace(name[:idx]),
			Given:  strings.TrimSpace(name[idx+1:]),
		}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}

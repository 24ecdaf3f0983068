// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// FormatBibTeX renders the record as a BibTeX entry. The entry type is
// derived from the record type, and only populated fields are emitted.
func FormatBibTeX(rec types.CitationRecord) string {
	var fields []string
	add := func(name, value string) {
		if value != "" {
			fields = append(fields, fmt.Sprintf("  %s = {%s}", name, value))
		}
	}

	add("author", strings.Join(rec.Authors, " and "))
	add("title", rec.Title)
	add("journal", rec.Journal)
	add("publisher", rec.Publisher)
	add("year", rec.Year)
	add("volume", rec.Volume)
	add("number", rec.Issue)
	add("pages", rec.Pages)
	add("doi", rec.DOI)
	add("url", rec.URL)

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", bibtexType(rec.Type), CiteKey(rec))
	b.WriteString(strings.Join(fields, ",\n"))
	b.WriteString("\n}")
	return b.String()
}

// bibtexType maps a Crossref-style work type onto a BibTeX entry type.
func bibtexType(workType string) string {
	switch workType {
	case "book", "monograph", "edited-book":
		return "book"
	case "proceedings-article":
		return "inproceedings"
	default:
		return "article"
	}
}

// CiteKey derives a stable citation key from the first author's surname and
// the year, falling back to a short title hash when either is missing.
func CiteKey(rec types.CitationRecord) string {
	if len(rec.Authors) > 0 && rec.Year != "" {
		if surname := surnameOf(rec.Authors[0]); surname != "" {
			return strings.ToLower(surname) + rec.Year
		}
	}
	sum := sha256.Sum256([]byte(rec.Title))
	return "ref" + fmt.Sprintf("%x", sum)[:6]
}

// surnameOf extracts the family name from either "Family, Given" or
// "Given Family" form, keeping letters only.
func surnameOf(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if i := strings.IndexByte(name, ','); i >= 0 {
		name = name[:i]
	} else if i := strings.LastIndexByte(name, ' '); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

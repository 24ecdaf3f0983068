// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package style renders bibliographic records into citation strings for
// the supported output styles.
package style

import (
	"fmt"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// Names of the supported citation styles.
const (
	APA     = "apa"
	MLA     = "mla"
	Chicago = "chicago"
	BibTeX  = "bibtex"
)

// All lists every supported style in output order.
var All = []string{APA, MLA, Chicago, BibTeX}

// Valid reports whether name is a supported style.
func Valid(name string) bool {
	for _, s := range All {
		if s == name {
			return true
		}
	}
	return false
}

// RenderAll formats the record into every supported style and returns the
// results keyed by style name. Records carry all styles; narrowing to a
// subset is a display concern.
func RenderAll(rec types.CitationRecord) map[string]string {
	return map[string]string{
		APA:     FormatAPA(rec),
		MLA:     FormatMLA(rec),
		Chicago: FormatChicago(rec),
		BibTeX:  FormatBibTeX(rec),
	}
}

// FormatAPA renders the record in APA style:
//
//	Doe, J., Roe, R., & Poe, P. (2020). Title of work. Journal, 12(3), 45-67. https://doi.org/...
func FormatAPA(rec types.CitationRecord) string {
	var parts []string

	if a := joinAPA(rec.Authors); a != "" {
		if rec.Year != "" {
			parts = append(parts, fmt.Sprintf("%s (%s).", a, rec.Year))
		} else {
			parts = append(parts, ensurePeriod(a))
		}
	} else if rec.Year != "" {
		parts = append(parts, fmt.Sprintf("(%s).", rec.Year))
	}

	if rec.Title != "" {
		parts = append(parts, ensurePeriod(rec.Title))
	}

	if rec.Journal != "" {
		j := rec.Journal
		if rec.Volume != "" {
			j += ", " + rec.Volume
			if rec.Issue != "" {
				j += "(" + rec.Issue + ")"
			}
		}
		if rec.Pages != "" {
			j += ", " + rec.Pages
		}
		parts = append(parts, j+".")
	}

	if rec.URL != "" {
		parts = append(parts, rec.URL)
	}

	return strings.Join(parts, " ")
}

// FormatMLA renders the record in MLA style:
//
//	Doe, John et al. "Title of Work." Journal, vol. 12, no. 3, 2020, pp. 45-67. DOI: ...
func FormatMLA(rec types.CitationRecord) string {
	var parts []string

	if a := joinMLA(rec.Authors); a != "" {
		parts = append(parts, ensurePeriod(a))
	}

	if rec.Title != "" {
		parts = append(parts, `"`+ensurePeriod(rec.Title)+`"`)
	}

	var tail []string
	if rec.Journal != "" {
		tail = append(tail, rec.Journal)
		if rec.Volume != "" {
			tail = append(tail, "vol. "+rec.Volume)
		}
		if rec.Issue != "" {
			tail = append(tail, "no. "+rec.Issue)
		}
	}
	if rec.Year != "" {
		tail = append(tail, rec.Year)
	}
	if rec.Pages != "" {
		tail = append(tail, "pp. "+rec.Pages)
	}
	if len(tail) > 0 {
		parts = append(parts, strings.Join(tail, ", ")+".")
	}

	if rec.DOI != "" {
		parts = append(parts, "DOI: "+rec.DOI)
	}

	return strings.Join(parts, " ")
}

// FormatChicago renders the record in Chicago (notes-bibliography) style:
//
//	Doe, John, and Jane Roe. "Title of Work." Journal 12, no. 3 (2020): 45-67. https://doi.org/...
func FormatChicago(rec types.CitationRecord) string {
	var parts []string

	if a := joinChicago(rec.Authors); a != "" {
		parts = append(parts, ensurePeriod(a))
	}

	if rec.Title != "" {
		parts = append(parts, `"`+ensurePeriod(rec.Title)+`"`)
	}

	if rec.Journal != "" {
		j := rec.Journal
		if rec.Volume != "" {
			j += " " + rec.Volume
		}
		if rec.Issue != "" {
			j += ", no. " + rec.Issue
		}
		if rec.Year != "" {
			j += " (" + rec.Year + ")"
		}
		if rec.Pages != "" {
			j += ": " + rec.Pages
		}
		parts = append(parts, j+".")
	} else if rec.Year != "" {
		parts = append(parts, rec.Year+".")
	}

	if rec.DOI != "" {
		parts = append(parts, "https://doi.org/"+rec.DOI)
	}

	return strings.Join(parts, " ")
}

// joinAPA joins author names with an ampersand before the final name.
func joinAPA(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	case 2:
		return authors[0] + " & " + authors[1]
	default:
		return strings.Join(authors[:len(authors)-1], ", ") + ", & " + authors[len(authors)-1]
	}
}

// joinMLA abbreviates three or more authors to the first plus "et al.".
func joinMLA(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	case 2:
		return authors[0] + " and " + authors[1]
	default:
		return authors[0] + " et al."
	}
}

// joinChicago spells out every author with "and" before the final name.
func joinChicago(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	default:
		return strings.Join(authors[:len(authors)-1], ", ") + ", and " + authors[len(authors)-1]
	}
}

// ensurePeriod appends a terminating period unless the text already ends
// with sentence punctuation.
func ensurePeriod(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract locates citation mentions in unstructured document text and
// turns them into deduplicated candidates for metadata resolution.
package extract

import (
	"regexp"
	"strings"
)

// MatchKind tags what a pattern match captured, so downstream code can branch
// on the variant instead of inspecting positional capture groups.
type MatchKind int

const (
	// KindAuthorYear carries an author fragment and a 4-digit year.
	KindAuthorYear MatchKind = iota

	// KindYearOnly carries a bare bracketed year with no author.
	KindYearOnly

	// KindNumberedMarker carries a 1-3 digit reference-list number. The
	// author/year pair must be recovered from the matching reference entry.
	KindNumberedMarker
)

// Match is a single pattern hit in the source text.
type Match struct {
	Kind   MatchKind
	Author string // author fragment, KindAuthorYear only
	Year   string // 4-digit year, KindAuthorYear and KindYearOnly
	Number string // marker number, KindNumberedMarker only
	Start  int    // byte offset of the match start
	End    int    // byte offset past the match end
}

// Pattern is a named citation matcher. Patterns are applied independently in
// the order they appear in Patterns; overlapping hits are reconciled later by
// the (author, year) deduplication key.
type Pattern struct {
	Name string
	Kind MatchKind
	re   *regexp.Regexp
}

// Patterns is the pattern library in priority order:
//
//  1. bracketed author+year: (Smith et al., 2019) or [Smith, 2019]
//  2. bracketed bare year: (2019) or [2019]
//  3. two-author form: (Smith and Jones, 2019), (Smith & Jones, 2019)
//  4. numbered marker: [3] or (3), resolved against the reference list
//  5. in-prose mention: "Smith et al. (2019)" or "Smith 2019" outside brackets
//
// Priority matters for deduplication only: candidates from earlier patterns
// win ties on the (author, year) key.
var Patterns = []Pattern{
	{
		Name: "bracketed-author-year",
		Kind: KindAuthorYear,
		re:   regexp.MustCompile(`[(\[]([A-Za-z\-']+(?:\s+(?:&|and|et al\.)?)?(?:,\s+[A-Za-z\-']+)*)(?:,\s+|\s+)(\d{4})[)\]]`),
	},
	{
		Name: "bracketed-year",
		Kind: KindYearOnly,
		re:   regexp.MustCompile(`[(\[](\d{4})[)\]]`),
	},
	{
		Name: "two-author",
		Kind: KindAuthorYear,
		re:   regexp.MustCompile(`[(\[]([A-Za-z\-']+(?:\s+and\s+|\s+&\s+)[A-Za-z\-']+)(?:,\s+|\s+)(\d{4})[)\]]`),
	},
	{
		Name: "numbered-marker",
		Kind: KindNumberedMarker,
		re:   regexp.MustCompile(`[(\[](\d{1,3})[)\]]`),
	},
	{
		Name: "in-prose",
		Kind: KindAuthorYear,
		re:   regexp.MustCompile(`([A-Za-z\-']+(?:\s+et\s+al\.)?)\s+\(?(\d{4})\)?`),
	},
}

// FindAll returns every hit of the pattern in text as tagged matches.
func (p Pattern) FindAll(text string) []Match {
	var matches []Match
	for _, idx := range p.re.FindAllStringSubmatchIndex(text, -1) {
		m := Match{Kind: p.Kind, Start: idx[0], End: idx[1]}
		switch p.Kind {
		case KindYearOnly:
			m.Year = text[idx[2]:idx[3]]
		case KindNumberedMarker:
			m.Number = text[idx[2]:idx[3]]
		default:
			m.Author = strings.TrimSpace(text[idx[2]:idx[3]])
			m.Year = text[idx[4]:idx[5]]
		}
		matches = append(matches, m)
	}
	return matches
}

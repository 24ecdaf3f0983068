// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// contextWindow is how many bytes of surrounding text are kept on each side
// of a match, clamped to the text bounds.
const contextWindow = 150

// Title recovery patterns, tried in order within a context window: curly or
// straight double quotes first, any quoted text second, a "titled/entitled X"
// phrase last.
var anyQuotedRe = regexp.MustCompile(`["']([^"']+)["']`)

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`[“”"]([^“”"]+)[“”"]`),
	anyQuotedRe,
	regexp.MustCompile(`(?:[Tt]itled|[Ee]ntitled)\s+(.+?)(?:\.|,|\s+(?:was|is|which))`),
}

// refAuthorYearRe is the looser author/year matcher used on reference-list
// entries, where author names often carry initials: "Smith, J. (2019)".
var refAuthorYearRe = regexp.MustCompile(`([A-Za-z\-']+(?:\s+et\s+al\.)?)(?:,?\s+(?:[A-Z]\.\s*)+)?,?\s*\(?(\d{4})\)?`)

// refTitleAfterYearTemplate pulls the sentence immediately following the year
// out of a reference entry when no quoted title is present.
const refTitleAfterYearTemplate = `%s\)?\.\s+([^.\n]+)`

// Extract scans text with every pattern in the library, parses the
// references/bibliography section if one is present, and returns deduplicated
// candidates. It is total: malformed or unmatchable text yields fewer or no
// candidates, never an error. In-text mentions are processed before
// reference-list entries, so they win deduplication ties.
func Extract(text string) []types.Candidate {
	var candidates []types.Candidate

	for _, p := range Patterns {
		for _, m := range p.FindAll(text) {
			if cand, ok := candidateFromMatch(text, m); ok {
				candidates = append(candidates, cand)
			}
		}
	}

	candidates = append(candidates, referenceCandidates(text)...)

	return dedupe(candidates)
}

// candidateFromMatch builds a Candidate from a pattern match. Numbered markers
// are resolved against the reference list; a marker with no matching
// reference line (or one without an author/year pair) is discarded.
func candidateFromMatch(text string, m Match) (types.Candidate, bool) {
	cand := types.Candidate{
		AuthorFragment: m.Author,
		Year:           m.Year,
		Context:        contextAround(text, m.Start, m.End),
	}

	if m.Kind == KindNumberedMarker {
		refText, ok := findReferenceLine(text, m.Number)
		if !ok {
			return types.Candidate{}, false
		}
		am := refAuthorYearRe.FindStringSubmatch(refText)
		if am == nil {
			return types.Candidate{}, false
		}
		cand.AuthorFragment = strings.TrimSpace(am[1])
		cand.Year = am[2]
		cand.Context += fmt.Sprintf(" [Reference: %s]", refText)
	}

	if cand.IsEmpty() {
		return types.Candidate{}, false
	}

	cand.TitleFragment = recoverTitle(cand.Context)
	return cand, true
}

// contextAround returns up to contextWindow bytes on each side of the match span.
func contextAround(text string, start, end int) string {
	s := start - contextWindow
	if s < 0 {
		s = 0
	}
	e := end + contextWindow
	if e > len(text) {
		e = len(text)
	}
	return text[s:e]
}

// recoverTitle tries each title pattern against the context window and
// returns the first capture, or "" when none match.
func recoverTitle(context string) string {
	for _, re := range titlePatterns {
		if m := re.FindStringSubmatch(context); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// findReferenceLine locates a reference-list line beginning with "N. " for a
// numbered citation marker.
func findReferenceLine(text, number string) (string, bool) {
	re, err := regexp.Compile(`(?m)^\s*` + regexp.QuoteMeta(number) + `\.\s+(.+)$`)
	if err != nil {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// References-section boundaries. The section starts at a header line and runs
// to the next section header or the end of the text.
var (
	refHeaderRe = regexp.MustCompile(`(?i)^\s*#*\s*(?:references|bibliography|works cited|literature cited)\s*:?\s*$`)
	refEndRe    = regexp.MustCompile(`(?i)^\s*#*\s*(?:appendix|acknowledgements|acknowledgments|supplementary material)\b`)
)

// referenceCandidates locates the references/bibliography block and extracts
// one candidate per entry using the looser reference-entry matcher.
func referenceCandidates(text string) []types.Candidate {
	section := findReferencesSection(text)
	if section == "" {
		return nil
	}

	var candidates []types.Candidate
	for _, entry := range splitReferenceEntries(section) {
		if cand, ok := candidateFromEntry(entry); ok {
			candidates = append(candidates, cand)
		}
	}
	return candidates
}

// findReferencesSection returns the text between a references header and the
// next section header (or end of text), or "" when no header is present.
func findReferencesSection(text string) string {
	var collecting bool
	var lines []string

	for _, line := range strings.Split(text, "\n") {
		if refHeaderRe.MatchString(line) {
			collecting = true
			continue
		}
		if collecting && refEndRe.MatchString(line) {
			break
		}
		if collecting {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// entryStartRe marks lines that begin a new reference entry: a digit-dot
// number, a bracketed number, or a leading capital letter.
var entryStartRe = regexp.MustCompile(`^\s*(?:\d{1,3}\.\s|\[\d{1,3}\]\s?|[A-Z])`)

// splitReferenceEntries splits a references block into individual entries on
// blank lines and entry-start lines. Continuation lines (indented or starting
// lowercase) are folded into the current entry.
func splitReferenceEntries(section string) []string {
	var entries []string
	var current []string

	flush := func() {
		entry := strings.TrimSpace(strings.Join(current, " "))
		if entry != "" {
			entries = append(entries, entry)
		}
		current = nil
	}

	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case entryStartRe.MatchString(line):
			flush()
			current = append(current, trimmed)
		default:
			current = append(current, trimmed)
		}
	}
	flush()

	return entries
}

// candidateFromEntry extracts an author/year pair and a best-effort title
// from a single reference entry. The entry text itself becomes the context.
func candidateFromEntry(entry string) (types.Candidate, bool) {
	m := refAuthorYearRe.FindStringSubmatch(entry)
	if m == nil {
		return types.Candidate{}, false
	}

	cand := types.Candidate{
		AuthorFragment: strings.TrimSpace(m[1]),
		Year:           m[2],
		Context:        entry,
	}
	if cand.IsEmpty() {
		return types.Candidate{}, false
	}

	// Quoted title first, then the sentence immediately after the year.
	if qm := anyQuotedRe.FindStringSubmatch(entry); qm != nil {
		cand.TitleFragment = strings.TrimSpace(qm[1])
	} else if re, err := regexp.Compile(fmt.Sprintf(refTitleAfterYearTemplate, regexp.QuoteMeta(cand.Year))); err == nil {
		if tm := re.FindStringSubmatch(entry); tm != nil {
			cand.TitleFragment = strings.TrimSpace(tm[1])
		}
	}

	return cand, true
}

// dedupe drops candidates whose (author, year) key has been seen before,
// preserving first-occurrence order.
func dedupe(candidates []types.Candidate) []types.Candidate {
	seen := make(map[string]bool, len(candidates))
	deduped := make([]types.Candidate, 0, len(candidates))

	for _, c := range candidates {
		key := c.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, c)
	}
	return deduped
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the citation-engine pipeline.
package types

// Candidate is an unresolved citation mention located in source text by the
// extraction stage. A Candidate is only constructed when at least one of
// AuthorFragment or Year is non-empty.
type Candidate struct {
	// AuthorFragment is the raw text matched as an author name or name list
	// (e.g. "Smith et al.", "Smith and Jones"). May be empty.
	AuthorFragment string `json:"author" yaml:"author"`

	// Year is the 4-digit publication year as matched in the text. May be empty.
	Year string `json:"year" yaml:"year"`

	// TitleFragment is a best-effort title recovered from the surrounding
	// context (quoted text or a "titled X" phrase). May be empty.
	TitleFragment string `json:"title" yaml:"title"`

	// Context is a fixed-size text window around the match, or the full
	// reference-list entry when the candidate came from a references section.
	Context string `json:"context" yaml:"context"`
}

// Key returns the deduplication key for the candidate. Candidates sharing an
// (author fragment, year) pair are the same mention; the first occurrence wins.
func (c Candidate) Key() string {
	return c.AuthorFragment + "\x00" + c.Year
}

// IsEmpty reports whether the candidate carries neither an author nor a year.
// Such candidates are never retained.
func (c Candidate) IsEmpty() bool {
	return c.AuthorFragment == "" && c.Year == ""
}

// CitationRecord is a resolved bibliographic entry. All string fields are
// empty when unknown. Records are immutable after resolution.
type CitationRecord struct {
	// DOI is the bare Digital Object Identifier (no https://doi.org/ prefix).
	DOI string `json:"doi" yaml:"doi"`

	// Title is the work title.
	Title string `json:"title" yaml:"title"`

	// Authors lists author display names in source-API order, each either
	// "Family, Given" or a bare display name.
	Authors []string `json:"authors" yaml:"authors"`

	// Journal is the container title (journal or venue).
	Journal string `json:"journal" yaml:"journal"`

	// Publisher is the publisher name (usually only known from the primary source).
	Publisher string `json:"publisher" yaml:"publisher"`

	// Year is the 4-digit publication year.
	Year string `json:"year" yaml:"year"`

	// Volume, Issue, and Pages locate the work within its container.
	Volume string `json:"volume" yaml:"volume"`
	Issue  string `json:"issue" yaml:"issue"`
	Pages  string `json:"pages" yaml:"pages"`

	// URL is a resolvable link to the work; https://doi.org/<doi> when a DOI
	// is present.
	URL string `json:"url" yaml:"url"`

	// Type is the source-API work type (e.g. "journal-article", "book",
	// "proceedings-article"). Drives BibTeX entry-type selection.
	Type string `json:"type" yaml:"type"`

	// Context is carried over from the originating Candidate.
	Context string `json:"context" yaml:"context"`

	// Formatted maps style name ("apa", "mla", "chicago", "bibtex") to the
	// rendered citation string. All four entries are populated at resolution
	// time, including for degraded records.
	Formatted map[string]string `json:"formatted" yaml:"formatted"`

	// Err carries the resolution error for degraded records, empty otherwise.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}

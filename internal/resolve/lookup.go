// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// Lookup searches a single bibliographic service. Each implementation
// (Crossref, Semantic Scholar) follows the Strategy pattern so the resolver
// and tests can swap services freely.
type Lookup interface {
	Name() string
	Lookup(ctx context.Context, q Query) Result
}

// Result is the tagged outcome of one lookup call. Record is populated only
// when Outcome is OutcomeSuccess; Err is populated for the failure outcomes.
type Result struct {
	Outcome Outcome
	Record  types.CitationRecord
	Err     error
}

// Outcome classifies the result of a single lookup call. The fallback chain
// branches on this tag instead of catching errors.
type Outcome int

const (
	// OutcomeSuccess means the lookup returned a usable record.
	OutcomeSuccess Outcome = iota

	// OutcomeEmpty means the lookup succeeded but matched nothing.
	OutcomeEmpty

	// OutcomeTransient means the lookup failed in a way that may succeed
	// later (network error, 5xx, rate limiting).
	OutcomeTransient

	// OutcomePermanent means the lookup failed in a way retrying will not
	// fix (malformed request, auth failure, unparseable response).
	OutcomePermanent
)

// String returns the outcome name for log messages.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeEmpty:
		return "empty"
	case OutcomeTransient:
		return "transient-failure"
	case OutcomePermanent:
		return "permanent-failure"
	default:
		return "unknown"
	}
}

// Failed reports whether the outcome counts as a service failure for the
// circuit breaker. Empty result sets are not failures.
func (o Outcome) Failed() bool {
	return o == OutcomeTransient || o == OutcomePermanent
}

// Query holds the candidate fragments used to search the lookup services.
type Query struct {
	Title  string
	Author string
	Year   string
}

// IsEmpty reports whether the query carries no searchable terms.
func (q Query) IsEmpty() bool {
	return q.Title == "" && q.Author == "" && q.Year == ""
}

// FreeText joins the non-empty query fields into a single search string, the
// form the secondary lookup expects.
func (q Query) FreeText() string {
	var parts []string
	if q.Title != "" {
		parts = append(parts, q.Title)
	}
	if q.Author != "" {
		parts = append(parts, q.Author)
	}
	if q.Year != "" {
		parts = append(parts, q.Year)
	}
	return strings.Join(parts, " ")
}

// CacheKey returns the normalized form of the query used to key the lookup
// result cache.
func (q Query) CacheKey() string {
	return strings.ToLower(strings.Join(strings.Fields(q.FreeText()), " "))
}

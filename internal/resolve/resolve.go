// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns extracted citation candidates into full
// bibliographic records by querying metadata APIs. Crossref is the primary
// source; Semantic Scholar is the fallback, guarded by a circuit breaker so
// a failing fallback is skipped for a cooldown instead of being retried on
// every candidate.
package resolve

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// Cache stores resolved records keyed by normalized query text. A nil cache
// on the resolver disables caching.
type Cache interface {
	// Get returns the cached record for key and whether it was present
	// and still fresh.
	Get(key string) (types.CitationRecord, bool)
	// Put stores a record under key.
	Put(key string, rec types.CitationRecord) error
}

// Resolver resolves candidates against a primary and an optional secondary
// lookup source. Failures never abort a run: a candidate that cannot be
// resolved yields a degraded record carrying the error text.
type Resolver struct {
	Primary   Lookup
	Secondary Lookup

	// Breaker guards the secondary source. Nil means the secondary is
	// always tried.
	Breaker *Breaker

	// Cache, when non-nil, is consulted before any network lookup and
	// updated on success.
	Cache Cache

	// Warn receives one-line diagnostics for lookup failures and cache
	// write errors. Nil suppresses them.
	Warn io.Writer
}

// Resolve looks up a single candidate and returns its record. Degraded
// records keep the candidate's fragments and carry a non-empty Err.
func (r *Resolver) Resolve(ctx context.Context, cand types.Candidate) types.CitationRecord {
	q := Query{Title: cand.TitleFragment, Author: cand.AuthorFragment, Year: cand.Year}
	if q.IsEmpty() {
		return degradedRecord(cand, "no searchable fields in candidate")
	}

	key := q.CacheKey()
	if r.Cache != nil {
		if rec, ok := r.Cache.Get(key); ok {
			rec.Context = cand.Context
			return rec
		}
	}

	res := r.Primary.Lookup(ctx, q)
	if res.Outcome == OutcomeSuccess {
		return r.finish(cand, key, res.Record)
	}
	r.warnf("%s: %s lookup %s for %q", cand.Key(), r.Primary.Name(), res.Outcome, q.FreeText())

	if r.Secondary != nil {
		if r.Breaker == nil || r.Breaker.Allow() {
			sres := r.Secondary.Lookup(ctx, q)
			switch {
			case sres.Outcome == OutcomeSuccess:
				if r.Breaker != nil {
					r.Breaker.Success()
				}
				return r.finish(cand, key, sres.Record)
			case sres.Outcome.Failed():
				if r.Breaker != nil {
					r.Breaker.Failure()
				}
				r.warnf("%s: %s lookup %s for %q", cand.Key(), r.Secondary.Name(), sres.Outcome, q.FreeText())
			default:
				r.warnf("%s: %s found no match for %q", cand.Key(), r.Secondary.Name(), q.FreeText())
			}
		} else {
			r.warnf("%s: skipping %s, circuit breaker open", cand.Key(), r.Secondary.Name())
		}
	}

	return degradedRecord(cand, fmt.Sprintf("no metadata found for %q", q.FreeText()))
}

// finish attaches the candidate context to a resolved record and stores the
// context-free copy in the cache.
func (r *Resolver) finish(cand types.Candidate, key string, rec types.CitationRecord) types.CitationRecord {
	if r.Cache != nil {
		if err := r.Cache.Put(key, rec); err != nil {
			r.warnf("caching record for %q: %v", key, err)
		}
	}
	rec.Context = cand.Context
	return rec
}

func (r *Resolver) warnf(format string, args ...any) {
	if r.Warn != nil {
		fmt.Fprintf(r.Warn, "Warning: "+format+"\n", args...)
	}
}

// degradedRecord builds a record from the candidate's own fragments when no
// source could resolve it. Such records still flow through formatting.
func degradedRecord(cand types.Candidate, errText string) types.CitationRecord {
	rec := types.CitationRecord{
		Title:   cand.TitleFragment,
		Year:    cand.Year,
		Context: cand.Context,
		Err:     errText,
	}
	if cand.AuthorFragment != "" {
		rec.Authors = []string{cand.AuthorFragment}
	}
	return rec
}

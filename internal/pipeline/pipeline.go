// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the end-to-end citation flow: extract candidates
// from text, resolve each against the metadata APIs, and render the
// resolved records into the requested citation styles.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/citation-engine/internal/extract"
	"github.com/pdiddy/citation-engine/internal/resolve"
	"github.com/pdiddy/citation-engine/internal/style"
	"github.com/pdiddy/citation-engine/pkg/types"
)

// ErrEmptyInput is returned when the input text is empty or whitespace.
var ErrEmptyInput = errors.New("input text is empty")

// Pipeline wires extraction, resolution, and formatting together.
type Pipeline struct {
	resolver *resolve.Resolver
	limiter  *rate.Limiter
	warn     io.Writer
}

// New builds a pipeline around the given resolver. Lookups are spaced at
// least interval apart to stay polite to the metadata APIs; an interval of
// zero or less disables pacing.
func New(resolver *resolve.Resolver, interval time.Duration, warn io.Writer) *Pipeline {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if interval > 0 {
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	return &Pipeline{
		resolver: resolver,
		limiter:  limiter,
		warn:     warn,
	}
}

// Run extracts citation candidates from text and resolves each into a
// record formatted in every supported style. A candidate that cannot be
// resolved produces a degraded record rather than failing the run; only an
// empty input or a cancelled context is an error.
func (p *Pipeline) Run(ctx context.Context, text string) ([]types.CitationRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	candidates := extract.Extract(text)
	if len(candidates) == 0 {
		p.warnf("no citations found in input")
		return []types.CitationRecord{}, nil
	}

	records := make([]types.CitationRecord, 0, len(candidates))
	for _, cand := range candidates {
		if err := p.limiter.Wait(ctx); err != nil {
			return records, err
		}
		rec := p.resolver.Resolve(ctx, cand)
		rec.Formatted = style.RenderAll(rec)
		records = append(records, rec)
	}

	return records, nil
}

func (p *Pipeline) warnf(format string, args ...any) {
	if p.warn != nil {
		fmt.Fprintf(p.warn, "Warning: "+format+"\n", args...)
	}
}

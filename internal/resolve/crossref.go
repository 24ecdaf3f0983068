// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/citation-engine/internal/httputil"
	"github.com/pdiddy/citation-engine/pkg/types"
)

// crossrefAPIBase is the Crossref works search endpoint. Declared as a var so
// tests can substitute an httptest server.
var crossrefAPIBase = "https://api.crossref.org/works"

// crossrefRows bounds how many ranked works are requested; only the most
// relevant one is used.
const crossrefRows = 5

// CrossrefLookup queries the Crossref works API, the primary metadata source.
type CrossrefLookup struct {
	Client *http.Client
	// Mailto is sent as the mailto parameter for polite-pool access.
	Mailto string
	Config types.ResolveConfig
}

// Name returns the lookup identifier.
func (l *CrossrefLookup) Name() string { return "crossref" }

// Lookup searches Crossref for works matching the query, ranked by relevance,
// and maps the top work into a CitationRecord.
func (l *CrossrefLookup) Lookup(ctx context.Context, q Query) Result {
	if q.IsEmpty() {
		return Result{Outcome: OutcomeEmpty}
	}

	params := url.Values{
		"sort":  {"score"},
		"order": {"desc"},
		"rows":  {strconv.Itoa(crossrefRows)},
	}
	if q.Title != "" {
		params.Set("query.title", q.Title)
	}
	if q.Author != "" {
		params.Set("query.author", q.Author)
	}
	if q.Year != "" {
		params.Set("filter", fmt.Sprintf("from-pub-date:%s,until-pub-date:%s", q.Year, q.Year))
	}
	if l.Mailto != "" {
		params.Set("mailto", l.Mailto)
	}

	reqURL := crossrefAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Result{Outcome: OutcomePermanent, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", l.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, l.Client, req, l.Config.MaxRetries)
	if err != nil {
		return Result{Outcome: OutcomeTransient, Err: fmt.Errorf("Crossref API request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Outcome: statusOutcome(resp.StatusCode), Err: fmt.Errorf("Crossref API returned HTTP %d", resp.StatusCode)}
	}

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return Result{Outcome: OutcomePermanent, Err: fmt.Errorf("parsing Crossref response: %w", err)}
	}

	if len(cr.Message.Items) == 0 {
		return Result{Outcome: OutcomeEmpty}
	}

	return Result{Outcome: OutcomeSuccess, Record: mapCrossrefWork(cr.Message.Items[0])}
}

// statusOutcome classifies an HTTP status: 429 and 5xx are transient, other
// non-success statuses are permanent.
func statusOutcome(status int) Outcome {
	if status == http.StatusTooManyRequests || status >= 500 {
		return OutcomeTransient
	}
	return OutcomePermanent
}

// mapCrossrefWork normalizes a Crossref work into a CitationRecord. Authors
// become "Family, Given" display strings in source order; the year is taken
// from the structured published date parts; a DOI yields a doi.org URL.
func mapCrossrefWork(work crossrefWork) types.CitationRecord {
	rec := types.CitationRecord{
		DOI:       work.DOI,
		Publisher: work.Publisher,
		Volume:    work.Volume,
		Issue:     work.Issue,
		Pages:     work.Page,
		Type:      work.Type,
	}

	if len(work.Title) > 0 {
		rec.Title = work.Title[0]
	}
	if len(work.ContainerTitle) > 0 {
		rec.Journal = work.ContainerTitle[0]
	}

	for _, a := range work.Author {
		switch {
		case a.Family != "" && a.Given != "":
			rec.Authors = append(rec.Authors, a.Family+", "+a.Given)
		case a.Name != "":
			rec.Authors = append(rec.Authors, a.Name)
		case a.Family != "":
			rec.Authors = append(rec.Authors, a.Family)
		}
	}

	if parts := work.Published.DateParts; len(parts) > 0 && len(parts[0]) > 0 {
		rec.Year = strconv.Itoa(parts[0][0])
	}

	if rec.DOI != "" {
		rec.URL = "https://doi.org/" + rec.DOI
	}

	return rec
}

// Crossref API JSON structures.
type crossrefResponse struct {
	Status  string          `json:"status"`
	Message crossrefMessage `json:"message"`
}

type crossrefMessage struct {
	TotalResults int            `json:"total-results"`
	Items        []crossrefWork `json:"items"`
}

type crossrefWork struct {
	DOI            string           `json:"DOI"`
	Type           string           `json:"type"`
	Title          []string         `json:"title"`
	ContainerTitle []string         `json:"container-title"`
	Publisher      string           `json:"publisher"`
	Volume         string           `json:"volume"`
	Issue          string           `json:"issue"`
	Page           string           `json:"page"`
	Author         []crossrefAuthor `json:"author"`
	Published      crossrefDate     `json:"published"`
}

type crossrefAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
	Name   string `json:"name"`
}

type crossrefDate struct {
	DateParts [][]int `json:"date-parts"`
}

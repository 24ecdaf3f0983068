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

// semanticAPIBase is the Semantic Scholar paper search endpoint. Declared as
// a var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"

const semanticFields = "title,abstract,authors,externalIds,year,venue,journal,publicationTypes,url"

// SemanticScholarLookup queries the Semantic Scholar API, the fallback
// metadata source. Unlike Crossref it takes a free-text query and returns
// name-only authors, a venue instead of journal/publisher, and a plain year.
type SemanticScholarLookup struct {
	Client *http.Client
	APIKey string
	Config types.ResolveConfig
}

// Name returns the lookup identifier.
func (l *SemanticScholarLookup) Name() string { return "semantic_scholar" }

// Lookup searches Semantic Scholar with a free-text query built from the
// candidate fields, limited to the single best match.
func (l *SemanticScholarLookup) Lookup(ctx context.Context, q Query) Result {
	freeText := q.FreeText()
	if freeText == "" {
		return Result{Outcome: OutcomeEmpty}
	}

	params := url.Values{
		"query":  {freeText},
		"limit":  {"1"},
		"fields": {semanticFields},
	}

	reqURL := semanticAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Result{Outcome: OutcomePermanent, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", l.Config.UserAgent)
	if l.APIKey != "" {
		req.Header.Set("x-api-key", l.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, l.Client, req, l.Config.MaxRetries)
	if err != nil {
		return Result{Outcome: OutcomeTransient, Err: fmt.Errorf("Semantic Scholar API request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Outcome: statusOutcome(resp.StatusCode), Err: fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)}
	}

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return Result{Outcome: OutcomePermanent, Err: fmt.Errorf("parsing Semantic Scholar response: %w", err)}
	}

	if len(sr.Data) == 0 {
		return Result{Outcome: OutcomeEmpty}
	}

	return Result{Outcome: OutcomeSuccess, Record: mapSemanticPaper(sr.Data[0])}
}

// mapSemanticPaper normalizes a Semantic Scholar paper into a CitationRecord.
// The venue is preferred over the journal name for the container; the
// publisher is unknown to this source and stays empty.
func mapSemanticPaper(paper semanticPaper) types.CitationRecord {
	rec := types.CitationRecord{
		DOI:    paper.ExternalIDs.DOI,
		Title:  paper.Title,
		Volume: paper.Journal.Volume,
		Pages:  paper.Journal.Pages,
		URL:    paper.URL,
		Type:   "article",
	}

	for _, a := range paper.Authors {
		if a.Name != "" {
			rec.Authors = append(rec.Authors, a.Name)
		}
	}

	if paper.Venue != "" {
		rec.Journal = paper.Venue
	} else {
		rec.Journal = paper.Journal.Name
	}

	if paper.Year > 0 {
		rec.Year = strconv.Itoa(paper.Year)
	}

	if rec.DOI != "" {
		rec.URL = "https://doi.org/" + rec.DOI
	}

	return rec
}

// Semantic Scholar API JSON structures.
type semanticResponse struct {
	Total  int             `json:"total"`
	Offset int             `json:"offset"`
	Data   []semanticPaper `json:"data"`
}

type semanticPaper struct {
	PaperID     string              `json:"paperId"`
	Title       string              `json:"title"`
	Abstract    string              `json:"abstract"`
	Year        int                 `json:"year"`
	Venue       string              `json:"venue"`
	URL         string              `json:"url"`
	Journal     semanticJournal     `json:"journal"`
	Authors     []semanticAuthor    `json:"authors"`
	ExternalIDs semanticExternalIDs `json:"externalIds"`
}

type semanticJournal struct {
	Name   string `json:"name"`
	Volume string `json:"volume"`
	Pages  string `json:"pages"`
}

type semanticAuthor struct {
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
}

type semanticExternalIDs struct {
	DOI      string `json:"DOI"`
	ArXiv    string `json:"ArXiv"`
	CorpusID int    `json:"CorpusId"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pdiddy/citation-engine/internal/httputil"
	"github.com/pdiddy/citation-engine/pkg/types"
)

func init() {
	// Use a tiny base delay so retry paths finish quickly.
	httputil.RetryBaseDelay = time.Millisecond
}

func testResolveCfg() types.ResolveConfig {
	return types.ResolveConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "citation-engine/test"},
		MaxRetries: 1,
	}
}

const crossrefEmptyBody = `{"status":"ok","message":{"total-results":0,"items":[]}}`

func TestCrossrefRequestParams(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, crossrefEmptyBody)
	}))
	defer ts.Close()

	old := crossrefAPIBase
	crossrefAPIBase = ts.URL
	defer func() { crossrefAPIBase = old }()

	l := &CrossrefLookup{Client: ts.Client(), Mailto: "dev@example.com", Config: testResolveCfg()}
	res := l.Lookup(context.Background(), Query{Title: "Attention Is All You Need", Author: "Vaswani", Year: "2017"})
	if res.Outcome != OutcomeEmpty {
		t.Fatalf("Outcome = %v, want OutcomeEmpty", res.Outcome)
	}

	q := capturedReq.URL.Query()
	if got := q.Get("query.title"); got != "Attention Is All You Need" {
		t.Errorf("query.title = %q", got)
	}
	if got := q.Get("query.author"); got != "Vaswani" {
		t.Errorf("query.author = %q", got)
	}
	if got := q.Get("filter"); got != "from-pub-date:2017,until-pub-date:2017" {
		t.Errorf("filter = %q", got)
	}
	if got := q.Get("sort"); got != "score" {
		t.Errorf("sort = %q", got)
	}
	if got := q.Get("order"); got != "desc" {
		t.Errorf("order = %q", got)
	}
	if got := q.Get("rows"); got != "5" {
		t.Errorf("rows = %q", got)
	}
	if got := q.Get("mailto"); got != "dev@example.com" {
		t.Errorf("mailto = %q", got)
	}
	if got := capturedReq.Header.Get("User-Agent"); got != "citation-engine/test" {
		t.Errorf("User-Agent = %q", got)
	}
}

func TestCrossrefWorkMapping(t *testing.T) {
	body := `{"status":"ok","message":{"total-results":1,"items":[{
		"DOI":"10.5555/attention",
		"type":"proceedings-article",
		"title":["Attention Is All You Need"],
		"container-title":["Advances in Neural Information Processing Systems"],
		"publisher":"Curran Associates",
		"volume":"30",
		"issue":"1",
		"page":"5998-6008",
		"author":[
			{"given":"Ashish","family":"Vaswani"},
			{"name":"The DeepMind Team"},
			{"family":"Shazeer"}
		],
		"published":{"date-parts":[[2017,12]]}
	}]}}`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	defer ts.Close()

	old := crossrefAPIBase
	crossrefAPIBase = ts.URL
	defer func() { crossrefAPIBase = old }()

	l := &CrossrefLookup{Client: ts.Client(), Config: testResolveCfg()}
	res := l.Lookup(context.Background(), Query{Title: "attention"})
	if res.Outcome != OutcomeSuccess {
		t.Fatalf("Outcome = %v, want OutcomeSuccess (err: %v)", res.Outcome, res.Err)
	}

	rec := res.Record
	if rec.DOI != "10.5555/attention" {
		t.Errorf("DOI = %q", rec.DOI)
	}
	if rec.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Journal != "Advances in Neural Information Processing Systems" {
		t.Errorf("Journal = %q", rec.Journal)
	}
	if rec.Publisher != "Curran Associates" {
		t.Errorf("Publisher = %q", rec.Publisher)
	}
	if rec.Year != "2017" {
		t.Errorf("Year = %q", rec.Year)
	}
	if rec.URL != "https://doi.org/10.5555/attention" {
		t.Errorf("URL = %q", rec.URL)
	}
	if rec.Type != "proceedings-article" {
		t.Errorf("Type = %q", rec.Type)
	}

	wantAuthors := []string{"Vaswani, Ashish", "The DeepMind Team", "Shazeer"}
	if len(rec.Authors) != len(wantAuthors) {
		t.Fatalf("Authors = %v, want %v", rec.Authors, wantAuthors)
	}
	for i, want := range wantAuthors {
		if rec.Authors[i] != want {
			t.Errorf("Authors[%d] = %q, want %q", i, rec.Authors[i], want)
		}
	}
}

func TestCrossrefOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       Outcome
	}{
		{"empty result set", http.StatusOK, crossrefEmptyBody, OutcomeEmpty},
		{"rate limited", http.StatusTooManyRequests, "", OutcomeTransient},
		{"server error", http.StatusInternalServerError, "", OutcomeTransient},
		{"bad request", http.StatusBadRequest, "", OutcomePermanent},
		{"malformed json", http.StatusOK, "{not json", OutcomePermanent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			old := crossrefAPIBase
			crossrefAPIBase = ts.URL
			defer func() { crossrefAPIBase = old }()

			l := &CrossrefLookup{Client: ts.Client(), Config: testResolveCfg()}
			res := l.Lookup(context.Background(), Query{Title: "anything"})
			if res.Outcome != tt.want {
				t.Errorf("Outcome = %v, want %v", res.Outcome, tt.want)
			}
		})
	}
}

func TestCrossrefEmptyQuery(t *testing.T) {
	l := &CrossrefLookup{Client: http.DefaultClient, Config: testResolveCfg()}
	res := l.Lookup(context.Background(), Query{})
	if res.Outcome != OutcomeEmpty {
		t.Errorf("Outcome = %v, want OutcomeEmpty", res.Outcome)
	}
}

func TestCrossrefLookupName(t *testing.T) {
	l := &CrossrefLookup{}
	if got := l.Name(); got != "crossref" {
		t.Errorf("Name() = %q, want %q", got, "crossref")
	}
}

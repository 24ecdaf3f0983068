// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"testing"

	"github.com/pdiddy/citation-engine/pkg/types"
)

var articleRecord = types.CitationRecord{
	DOI:     "10.5555/x",
	Title:   "On Testing",
	Authors: []string{"Doe, J.", "Roe, R.", "Poe, P."},
	Journal: "Journal of Tests",
	Year:    "2020",
	Volume:  "12",
	Issue:   "3",
	Pages:   "45-67",
	URL:     "https://doi.org/10.5555/x",
	Type:    "journal-article",
}

func TestFormatAPA(t *testing.T) {
	tests := []struct {
		name string
		rec  types.CitationRecord
		want string
	}{
		{
			"three authors",
			articleRecord,
			"Doe, J., Roe, R., & Poe, P. (2020). On Testing. Journal of Tests, 12(3), 45-67. https://doi.org/10.5555/x",
		},
		{
			"two authors",
			types.CitationRecord{Authors: []string{"Doe, J.", "Roe, R."}, Year: "2020", Title: "On Testing"},
			"Doe, J. & Roe, R. (2020). On Testing.",
		},
		{
			"single author no journal",
			types.CitationRecord{Authors: []string{"Doe, J."}, Year: "2020", Title: "On Testing"},
			"Doe, J. (2020). On Testing.",
		},
		{
			"degraded year only",
			types.CitationRecord{Year: "2019"},
			"(2019).",
		},
		{
			"author without year",
			types.CitationRecord{Authors: []string{"Smith"}, Title: "On Testing"},
			"Smith. On Testing.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAPA(tt.rec); got != tt.want {
				t.Errorf("FormatAPA() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMLA(t *testing.T) {
	tests := []struct {
		name string
		rec  types.CitationRecord
		want string
	}{
		{
			"three authors abbreviate to et al",
			articleRecord,
			`Doe, J. et al. "On Testing." Journal of Tests, vol. 12, no. 3, 2020, pp. 45-67. DOI: 10.5555/x`,
		},
		{
			"two authors spelled out",
			types.CitationRecord{Authors: []string{"Doe, J.", "Roe, R."}, Year: "2020", Title: "On Testing"},
			`Doe, J. and Roe, R. "On Testing." 2020.`,
		},
		{
			"full names abbreviate without comma",
			types.CitationRecord{Authors: []string{"Doe, Jane", "Roe, Richard", "Poe, Pat"}, Year: "2021", Title: "Example Study"},
			`Doe, Jane et al. "Example Study." 2021.`,
		},
		{
			"quoted title kept verbatim",
			types.CitationRecord{Authors: []string{"Doe, J."}, Year: "2020", Title: `Results of "Alpha"`},
			`Doe, J. "Results of "Alpha"." 2020.`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMLA(tt.rec); got != tt.want {
				t.Errorf("FormatMLA() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatChicago(t *testing.T) {
	tests := []struct {
		name string
		rec  types.CitationRecord
		want string
	}{
		{
			"three authors",
			articleRecord,
			`Doe, J., Roe, R., and Poe, P. "On Testing." Journal of Tests 12, no. 3 (2020): 45-67. https://doi.org/10.5555/x`,
		},
		{
			"no journal",
			types.CitationRecord{Authors: []string{"Doe, J."}, Year: "2020", Title: "On Testing"},
			`Doe, J. "On Testing." 2020.`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatChicago(tt.rec); got != tt.want {
				t.Errorf("FormatChicago() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderAll(t *testing.T) {
	out := RenderAll(articleRecord)
	if len(out) != len(All) {
		t.Fatalf("len(out) = %d, want %d: %v", len(out), len(All), out)
	}
	for _, s := range All {
		if out[s] == "" {
			t.Errorf("style %q not rendered", s)
		}
	}
}

func TestRenderAllDegradedRecordSafe(t *testing.T) {
	degraded := types.CitationRecord{
		Authors: []string{"Smith"},
		Year:    "2019",
		Err:     "no metadata found",
	}
	out := RenderAll(degraded)
	for _, s := range All {
		if out[s] == "" {
			t.Errorf("style %q rendered empty for degraded record", s)
		}
	}
}

func TestValid(t *testing.T) {
	for _, s := range All {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false", s)
		}
	}
	if Valid("harvard") {
		t.Error(`Valid("harvard") = true`)
	}
}

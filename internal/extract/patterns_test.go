// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "testing"

func TestBracketedAuthorYearPattern(t *testing.T) {
	p := Patterns[0]
	tests := []struct {
		name       string
		text       string
		wantAuthor string
		wantYear   string
	}{
		{"single author", "as shown in (Smith, 2019) and later", "Smith", "2019"},
		{"et al form", "results (Smith et al., 2020) confirm", "Smith et al.", "2020"},
		{"square brackets", "see [Johnson, 2015] for details", "Johnson", "2015"},
		{"comma-separated list", "the survey (Smith, Jones, 2018) covers", "Smith, Jones", "2018"},
		{"hyphenated name", "per (Lloyd-Jones, 2021) the", "Lloyd-Jones", "2021"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := p.FindAll(tt.text)
			if len(matches) != 1 {
				t.Fatalf("len(matches) = %d, want 1", len(matches))
			}
			m := matches[0]
			if m.Kind != KindAuthorYear {
				t.Errorf("Kind = %v, want KindAuthorYear", m.Kind)
			}
			if m.Author != tt.wantAuthor {
				t.Errorf("Author = %q, want %q", m.Author, tt.wantAuthor)
			}
			if m.Year != tt.wantYear {
				t.Errorf("Year = %q, want %q", m.Year, tt.wantYear)
			}
		})
	}
}

func TestBracketedYearPattern(t *testing.T) {
	p := Patterns[1]

	matches := p.FindAll("the method was introduced in (2017) and refined")
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Kind != KindYearOnly {
		t.Errorf("Kind = %v, want KindYearOnly", matches[0].Kind)
	}
	if matches[0].Year != "2017" {
		t.Errorf("Year = %q, want %q", matches[0].Year, "2017")
	}

	// A bracketed author+year span has no parenthesis directly before the
	// digits, so the year-only pattern must not fire.
	if got := p.FindAll("see (Smith, 2019) here"); len(got) != 0 {
		t.Errorf("matched inside author+year span: %+v", got)
	}
}

func TestTwoAuthorPattern(t *testing.T) {
	p := Patterns[2]
	tests := []struct {
		name       string
		text       string
		wantAuthor string
	}{
		{"ampersand", "shown by (Smith & Jones, 2019) in", "Smith & Jones"},
		{"spelled and", "shown by (Smith and Jones, 2019) in", "Smith and Jones"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := p.FindAll(tt.text)
			if len(matches) != 1 {
				t.Fatalf("len(matches) = %d, want 1", len(matches))
			}
			if matches[0].Author != tt.wantAuthor {
				t.Errorf("Author = %q, want %q", matches[0].Author, tt.wantAuthor)
			}
			if matches[0].Year != "2019" {
				t.Errorf("Year = %q, want %q", matches[0].Year, "2019")
			}
		})
	}
}

func TestNumberedMarkerPattern(t *testing.T) {
	p := Patterns[3]

	matches := p.FindAll("as demonstrated in [3] and extended in [12]")
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches[0].Number != "3" || matches[1].Number != "12" {
		t.Errorf("Numbers = %q, %q, want 3, 12", matches[0].Number, matches[1].Number)
	}
	for _, m := range matches {
		if m.Kind != KindNumberedMarker {
			t.Errorf("Kind = %v, want KindNumberedMarker", m.Kind)
		}
	}

	// Four digits is a year, not a marker.
	if got := p.FindAll("published in [2020] by"); len(got) != 0 {
		t.Errorf("matched a 4-digit year as marker: %+v", got)
	}
}

func TestInProsePattern(t *testing.T) {
	p := Patterns[4]
	tests := []struct {
		name       string
		text       string
		wantAuthor string
		wantYear   string
	}{
		{"name with parenthesized year", "Vaswani (2017) introduced attention", "Vaswani", "2017"},
		{"et al with year", "Smith et al. (2020) showed that", "Smith et al.", "2020"},
		{"bare year", "Goodfellow 2014 proposed the idea", "Goodfellow", "2014"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := p.FindAll(tt.text)
			if len(matches) != 1 {
				t.Fatalf("len(matches) = %d, want 1", len(matches))
			}
			if matches[0].Author != tt.wantAuthor {
				t.Errorf("Author = %q, want %q", matches[0].Author, tt.wantAuthor)
			}
			if matches[0].Year != tt.wantYear {
				t.Errorf("Year = %q, want %q", matches[0].Year, tt.wantYear)
			}
		})
	}
}

func TestMatchOffsets(t *testing.T) {
	text := "prefix (Smith, 2019) suffix"
	matches := Patterns[0].FindAll(text)
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	m := matches[0]
	if text[m.Start:m.End] != "(Smith, 2019)" {
		t.Errorf("span = %q, want %q", text[m.Start:m.End], "(Smith, 2019)")
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-engine/internal/style"
	"github.com/pdiddy/citation-engine/pkg/types"
)

// stylesFromFlags parses and validates the --styles flag. An empty flag
// selects every supported style.
func stylesFromFlags(cmd *cobra.Command) ([]string, error) {
	raw, _ := cmd.Flags().GetString("styles")
	if raw == "" {
		return style.All, nil
	}

	var styles []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if !style.Valid(s) {
			return nil, fmt.Errorf("unknown style %q: use apa, mla, chicago, or bibtex", s)
		}
		styles = append(styles, s)
	}
	if len(styles) == 0 {
		return style.All, nil
	}
	return styles, nil
}

// writeRecords prints the records in the format selected by the --json and
// --csl flags, defaulting to a human-readable listing.
func writeRecords(cmd *cobra.Command, w io.Writer, records []types.CitationRecord, styles []string) error {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if cslOutput, _ := cmd.Flags().GetBool("csl"); cslOutput {
		return style.FormatCSL(records, w)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No citations found.")
		return nil
	}

	for i, rec := range records {
		title := rec.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(w, "%d. %s", i+1, title)
		if rec.Year != "" {
			fmt.Fprintf(w, " (%s)", rec.Year)
		}
		fmt.Fprintln(w)

		if rec.Err != "" {
			fmt.Fprintf(w, "   unresolved: %s\n", rec.Err)
		}
		for _, s := range styles {
			if formatted, ok := rec.Formatted[s]; ok {
				fmt.Fprintf(w, "   %-8s %s\n", s+":", indentContinuation(formatted))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%d citation(s)\n", len(records))
	return nil
}

// indentContinuation indents the continuation lines of multi-line styles
// (BibTeX) to line up under the style label.
func indentContinuation(s string) string {
	return strings.ReplaceAll(s, "\n", "\n            ")
}

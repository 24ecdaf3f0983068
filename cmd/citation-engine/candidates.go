// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-engine/internal/extract"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates [file]",
	Short: "Scan a document for citation candidates without resolving them",
	Long: `Candidates runs only the extraction stage: it scans the input for
citation mentions and reference entries and prints the deduplicated
candidates. No network lookups are made, so this is useful for checking
what the scanner finds before a full extract run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCandidates,
}

func runCandidates(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("input text is empty")
	}

	candidates := extract.Extract(text)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	}

	if len(candidates) == 0 {
		fmt.Println("No citation candidates found.")
		return nil
	}

	fmt.Printf("%-4s  %-25s  %-6s  %s\n", "No.", "Author", "Year", "Title")
	fmt.Println(strings.Repeat("-", 90))
	for i, c := range candidates {
		author := c.AuthorFragment
		if len(author) > 25 {
			author = author[:22] + "..."
		}
		title := c.TitleFragment
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Printf("%-4d  %-25s  %-6s  %s\n", i+1, author, c.Year, title)
	}
	fmt.Printf("\n%d candidate(s)\n", len(candidates))
	return nil
}

func init() {
	candidatesCmd.Flags().Bool("json", false, "output candidates as JSON")

	rootCmd.AddCommand(candidatesCmd)
}

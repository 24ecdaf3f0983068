// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-engine/internal/style"
	"github.com/pdiddy/citation-engine/pkg/types"
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Re-render previously resolved citation records",
	Long: `Format reads a JSON array of citation records (as produced by
extract --json) and re-renders each record in the requested styles. No
network lookups are made, so styles can be changed without re-resolving.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	styles, err := stylesFromFlags(cmd)
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening records file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var records []types.CitationRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return fmt.Errorf("parsing records: %w", err)
	}

	for i := range records {
		records[i].Formatted = style.RenderAll(records[i])
	}

	return writeRecords(cmd, os.Stdout, records, styles)
}

func init() {
	formatCmd.Flags().String("styles", "", "comma-separated styles to render: apa, mla, chicago, bibtex (default: all)")
	formatCmd.Flags().Bool("json", false, "output records as JSON")
	formatCmd.Flags().Bool("csl", false, "output records as CSL-YAML")

	rootCmd.AddCommand(formatCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-engine/internal/cache"
	"github.com/pdiddy/citation-engine/internal/pipeline"
	"github.com/pdiddy/citation-engine/internal/resolve"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract, resolve, and format citations from a document",
	Long: `Extract scans the input text for citation mentions and reference entries,
resolves each candidate against Crossref with Semantic Scholar as fallback,
and prints the resolved records formatted in the requested citation styles.

Reads from the named file, or from stdin when no file is given. Candidates
that cannot be resolved are kept as degraded records with an error note
rather than dropped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	styles, err := stylesFromFlags(cmd)
	if err != nil {
		return err
	}

	cfg := pipelineConfig()
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		cfg.Cache.Disabled = true
	}
	if path, _ := cmd.Flags().GetString("cache-path"); path != "" {
		cfg.Cache.Path = path
	}

	client := &http.Client{Timeout: cfg.Resolve.Timeout}
	resolver := &resolve.Resolver{
		Primary: &resolve.CrossrefLookup{
			Client: client,
			Mailto: cfg.Resolve.CrossrefMailto,
			Config: cfg.Resolve,
		},
		Secondary: &resolve.SemanticScholarLookup{
			Client: client,
			APIKey: cfg.Resolve.SemanticScholarAPIKey,
			Config: cfg.Resolve,
		},
		Breaker: resolve.NewBreaker(cfg.Resolve.BreakerThreshold, cfg.Resolve.BreakerCooldown),
		Warn:    os.Stderr,
	}

	if !cfg.Cache.Disabled {
		store, err := cache.NewStore(cfg.Cache)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache unavailable: %v\n", err)
		} else {
			defer store.Close()
			resolver.Cache = store
		}
	}

	p := pipeline.New(resolver, cfg.LookupInterval, os.Stderr)
	records, err := p.Run(context.Background(), text)
	if err != nil {
		return err
	}

	return writeRecords(cmd, os.Stdout, records, styles)
}

// readInput returns the document text from the file argument, or stdin
// when no file is given (or the argument is "-").
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

func init() {
	extractCmd.Flags().String("styles", "", "comma-separated styles to render: apa, mla, chicago, bibtex (default: all)")
	extractCmd.Flags().Bool("json", false, "output records as JSON")
	extractCmd.Flags().Bool("csl", false, "output records as CSL-YAML")
	extractCmd.Flags().Bool("no-cache", false, "skip the lookup cache")
	extractCmd.Flags().String("cache-path", "", "path to the lookup cache database")

	rootCmd.AddCommand(extractCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citation-engine CLI. It scans
// text for citation mentions, resolves them against bibliographic APIs,
// and formats the results in standard citation styles.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citation-engine/internal/secrets"
	"github.com/pdiddy/citation-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the citation-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "citation-engine",
	Short: "Extract and format citations from academic text",
	Long: `citation-engine scans a document for citation mentions and reference
entries, resolves each against Crossref and Semantic Scholar, and formats
the resolved records in APA, MLA, Chicago, and BibTeX styles.

Use extract for the full pipeline, candidates to inspect what the scanner
found without any network lookups, and format to re-render previously
resolved records.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; a missing file is fine.
		godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citation-engine.yaml or ~/.config/citation-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citation-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citation-engine"))
		}
	}

	viper.SetEnvPrefix("CITATION_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig builds the pipeline configuration: defaults, overridden by
// the config file, with the secrets directory filling keys left unset.
func pipelineConfig() types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	if v := viper.GetString("resolve.crossref_mailto"); v != "" {
		cfg.Resolve.CrossrefMailto = v
	}
	if v := viper.GetInt("resolve.max_retries"); v > 0 {
		cfg.Resolve.MaxRetries = v
	}
	if v := viper.GetDuration("resolve.http_timeout"); v > 0 {
		cfg.Resolve.Timeout = v
	}
	if v := viper.GetString("cache.path"); v != "" {
		cfg.Cache.Path = v
	}
	if v := viper.GetDuration("cache.ttl"); v > 0 {
		cfg.Cache.TTL = v
	}
	if v := viper.GetDuration("lookup_interval"); v > 0 {
		cfg.LookupInterval = v
	}

	cfg.Resolve.CrossrefMailto = secretDefault("crossref-mailto", cfg.Resolve.CrossrefMailto)
	cfg.Resolve.SemanticScholarAPIKey = secretDefault("semantic-scholar-api-key", cfg.Resolve.SemanticScholarAPIKey)

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

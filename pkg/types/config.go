// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "citation-engine/0.1"). Bibliographic APIs route polite,
	// identified clients to less contended pools.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResolveConfig holds settings for the metadata resolution stage.
type ResolveConfig struct {
	HTTPConfig `yaml:",inline"`

	// CrossrefMailto is the contact address sent to Crossref for polite-pool
	// access. Optional.
	CrossrefMailto string `json:"crossref_mailto,omitempty" yaml:"crossref_mailto,omitempty"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits on
	// the fallback lookup.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`

	// MaxRetries is the number of retry attempts on rate-limited or transient
	// HTTP failures (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// BreakerThreshold is the number of consecutive lookup failures after
	// which real lookups are skipped for BreakerCooldown (default 3).
	BreakerThreshold int `json:"breaker_threshold" yaml:"breaker_threshold"`

	// BreakerCooldown is how long lookups stay disabled once the breaker
	// opens (default 1m).
	BreakerCooldown time.Duration `json:"breaker_cooldown" yaml:"breaker_cooldown"`
}

// CacheConfig holds settings for the lookup result cache.
type CacheConfig struct {
	// Path is the SQLite database file for cached lookups
	// (default "cache/citations.db").
	Path string `json:"path" yaml:"path"`

	// TTL is how long a cached lookup stays valid (default 1h).
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// Disabled turns the cache off entirely; every candidate then performs a
	// live lookup.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// PipelineConfig groups all stage configurations for the citation pipeline.
type PipelineConfig struct {
	Resolve ResolveConfig `json:"resolve" yaml:"resolve"`
	Cache   CacheConfig   `json:"cache" yaml:"cache"`

	// LookupInterval is the minimum delay between successive resolver calls,
	// enforced by the pipeline to respect third-party quotas (default 500ms).
	LookupInterval time.Duration `json:"lookup_interval" yaml:"lookup_interval"`
}

// DefaultPipelineConfig returns a PipelineConfig with all defaults applied.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Resolve: ResolveConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "citation-engine/0.1",
			},
			MaxRetries:       3,
			BreakerThreshold: 3,
			BreakerCooldown:  time.Minute,
		},
		Cache: CacheConfig{
			Path: "cache/citations.db",
			TTL:  time.Hour,
		},
		LookupInterval: 500 * time.Millisecond,
	}
}

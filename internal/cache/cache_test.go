// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/citation-engine/pkg/types"
)

func testStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	s, err := NewStore(types.CacheConfig{
		Path: filepath.Join(t.TempDir(), "citations.db"),
		TTL:  ttl,
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord() types.CitationRecord {
	return types.CitationRecord{
		DOI:     "10.5555/x",
		Title:   "On Testing",
		Authors: []string{"Doe, J."},
		Year:    "2020",
	}
}

func TestStorePutGet(t *testing.T) {
	s := testStore(t, time.Hour)

	require.NoError(t, s.Put("on testing doe", testRecord()))

	got, ok := s.Get("on testing doe")
	require.True(t, ok)
	assert.Equal(t, testRecord(), got)
}

func TestStoreMiss(t *testing.T) {
	s := testStore(t, time.Hour)

	_, ok := s.Get("never stored")
	assert.False(t, ok)
}

func TestStorePutReplaces(t *testing.T) {
	s := testStore(t, time.Hour)

	require.NoError(t, s.Put("key", types.CitationRecord{Title: "First"}))
	require.NoError(t, s.Put("key", types.CitationRecord{Title: "Second"}))

	got, ok := s.Get("key")
	require.True(t, ok)
	assert.Equal(t, "Second", got.Title)
}

func TestStoreTTLExpiry(t *testing.T) {
	s := testStore(t, time.Hour)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	require.NoError(t, s.Put("key", testRecord()))

	// Still fresh just inside the TTL.
	s.now = func() time.Time { return base.Add(59 * time.Minute) }
	_, ok := s.Get("key")
	assert.True(t, ok)

	// Expired past the TTL.
	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, ok = s.Get("key")
	assert.False(t, ok, "expired entry should be a miss")
}

func TestStoreZeroTTLNeverExpires(t *testing.T) {
	s := testStore(t, 0)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	require.NoError(t, s.Put("key", testRecord()))

	s.now = func() time.Time { return base.AddDate(1, 0, 0) }
	_, ok := s.Get("key")
	assert.True(t, ok)
}

func TestStorePurge(t *testing.T) {
	s := testStore(t, time.Hour)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	require.NoError(t, s.Put("old", testRecord()))

	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	require.NoError(t, s.Put("fresh", testRecord()))
	require.NoError(t, s.Purge())

	_, ok := s.Get("old")
	assert.False(t, ok, "purged entry should be gone")
	_, ok = s.Get("fresh")
	assert.True(t, ok)
}

func TestStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "citations.db")
	s, err := NewStore(types.CacheConfig{Path: path})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("key", testRecord()))
	_, ok := s.Get("key")
	assert.True(t, ok)
}

func TestStoreReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "citations.db")

	s, err := NewStore(types.CacheConfig{Path: path, TTL: time.Hour})
	require.NoError(t, err)
	require.NoError(t, s.Put("key", testRecord()))
	require.NoError(t, s.Close())

	s2, err := NewStore(types.CacheConfig{Path: path, TTL: time.Hour})
	require.NoError(t, err)
	defer s2.Close()

	got, ok := s2.Get("key")
	require.True(t, ok)
	assert.Equal(t, "On Testing", got.Title)
}

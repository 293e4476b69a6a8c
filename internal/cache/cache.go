// Package cache stores raw monthly time-table batches keyed by
// "times_{subareaID}_{month}_{year}" so repeat lookups within a month avoid
// a provider round trip. The cache is a hint only: a hit that lacks the
// requested day still triggers a fresh fetch, and write failures never fail
// the resolution that produced them.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

// Cache is the contract the resolver depends on. Implementations absorb
// their own IO errors; Get simply misses and Set is best-effort.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// Key builds the monthly batch key for a subarea.
func Key(subareaID string, month, year int) string {
	return fmt.Sprintf("times_%s_%02d_%d", subareaID, month, year)
}

// FileCache keeps the whole cache as one JSON object on disk, loaded at
// startup and rewritten after every store.
type FileCache struct {
	path string

	mu      sync.Mutex
	entries map[string]json.RawMessage
}

// NewFileCache loads path if it exists; a missing or corrupt file yields an
// empty cache, never an error.
func NewFileCache(path string) *FileCache {
	c := &FileCache{path: path, entries: make(map[string]json.RawMessage)}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	if err := json.Unmarshal(raw, &c.entries); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("discarding corrupt cache file")
		c.entries = make(map[string]json.RawMessage)
	}
	return c
}

func (c *FileCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *FileCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = json.RawMessage(value)

	raw, err := json.Marshal(c.entries)
	if err != nil {
		log.Error().Err(err).Msg("marshal cache")
		return
	}
	if err := os.WriteFile(c.path, raw, 0o644); err != nil {
		log.Warn().Err(err).Str("path", c.path).Msg("cache write failed")
	}
}

// Package cache stores processed datasets on disk, keyed by the content of
// their raw sources. Content addressing means a cache entry can never
// outlive a change to the underlying source file or the standardizer rules.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Cache provides caching for processed datasets. Correctness never depends
// on it: a miss simply means re-parsing the raw files.
type Cache struct {
	dir string
}

// New creates a cache instance rooted at the specified directory.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Key derives a cache key from the raw source bytes and the standardizer
// rule fingerprint. Either changing invalidates the entry.
func Key(raw []byte, fingerprint string) string {
	h := sha256.New()
	h.Write(raw)
	h.Write([]byte{0})
	h.Write([]byte(fingerprint))
	return hex.EncodeToString(h.Sum(nil))
}

// Get loads a cached entry into v. The second return is false on a miss.
func (c *Cache) Get(key string, v any) (bool, error) {
	data, err := os.ReadFile(c.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		// A corrupt entry is a miss, not a failure.
		return false, nil
	}
	return true, nil
}

// Put stores v under key, creating the cache directory as needed.
func (c *Cache) Put(key string, v any) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("cache: create dir %s: %w", c.dir, err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}
	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return fmt.Errorf("cache: write %s: %w", key, err)
	}
	return nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

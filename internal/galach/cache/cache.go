// Package cache stores parse results on disk, keyed by the MD5 hash of the
// query string. Put records a result and Get returns it until it expires;
// the cache does not parse anything itself, and the CLI's batch and watch
// commands only write to it, parsing every query each time.
package cache

import (
	"crypto/md5"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/TomasPilar/query-translator/internal/galach/generator/native"
	"github.com/TomasPilar/query-translator/internal/galach/parser"
)

const fileName = "galach_cache.gob"

// Entry is the cached shape of a parse. The AST itself is not stored: its
// node types are an unexported sealed interface, which gob cannot encode
// without registering every concrete type as a public wire format. Instead
// an Entry carries the native-syntax rendering of the tree (sufficient to
// reparse it losslessly) and a flattened summary of the corrections applied.
type Entry struct {
	Rendered        string
	CorrectionKinds []string
	CreatedAt       time.Time
}

// Cache is a size-unbounded, time-bounded on-disk memoization table. It is
// safe for concurrent use.
type Cache struct {
	dir     string
	mutex   sync.RWMutex
	entries map[string]Entry
	maxAge  time.Duration
}

// Open loads (or creates) the cache rooted at dir.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("galach cache: create directory: %w", err)
	}

	c := &Cache{
		dir:     dir,
		entries: make(map[string]Entry),
		maxAge:  24 * time.Hour,
	}
	if err := c.load(); err != nil {
		return nil, fmt.Errorf("galach cache: load: %w", err)
	}
	return c, nil
}

// SetMaxAge overrides the default entry lifetime.
func (c *Cache) SetMaxAge(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.maxAge = d
}

// Get returns the cached entry for query, if present and not expired.
func (c *Cache) Get(query string) (Entry, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, ok := c.entries[hashOf(query)]
	if !ok {
		return Entry{}, false
	}
	if time.Since(e.CreatedAt) > c.maxAge {
		return Entry{}, false
	}
	return e, true
}

// Put stores tree's result for query and persists the cache to disk.
func (c *Cache) Put(query string, tree parser.SyntaxTree) error {
	kinds := make([]string, len(tree.Corrections))
	for i, corr := range tree.Corrections {
		kinds[i] = corr.Kind.String()
	}

	entry := Entry{
		Rendered:        native.Render(tree),
		CorrectionKinds: kinds,
		CreatedAt:       time.Now(),
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[hashOf(query)] = entry
	return c.save()
}

// InvalidateAll drops every cached entry.
func (c *Cache) InvalidateAll() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[string]Entry)
	return c.save()
}

func (c *Cache) path() string {
	return filepath.Join(c.dir, fileName)
}

func (c *Cache) load() error {
	file, err := os.Open(c.path())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewDecoder(file).Decode(&c.entries)
}

func (c *Cache) save() error {
	file, err := os.Create(c.path())
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewEncoder(file).Encode(c.entries)
}

func hashOf(query string) string {
	sum := md5.Sum([]byte(query))
	return fmt.Sprintf("%x", sum)
}

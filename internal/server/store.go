package server

import (
	"sync"

	"github.com/ironsheep/artboard-tools-mcp/internal/document/memdoc"
)

// DocumentStore caches open documents keyed by file path, so several tool
// calls can work on the same in-memory document before it is saved.
//
// The map is safe for concurrent use. Documents themselves are not; the
// server handles one request at a time.
type DocumentStore struct {
	mu   sync.RWMutex
	host *memdoc.Host
	docs map[string]*memdoc.Document
}

// NewDocumentStore creates an empty store whose documents come from host.
func NewDocumentStore(host *memdoc.Host) *DocumentStore {
	return &DocumentStore{
		host: host,
		docs: make(map[string]*memdoc.Document),
	}
}

// Load returns the cached document for path, reading it from disk on first
// use. Different spellings of the same file are cached separately.
func (c *DocumentStore) Load(path string) (*memdoc.Document, error) {
	c.mu.RLock()
	if d, ok := c.docs[path]; ok {
		c.mu.RUnlock()
		return d, nil
	}
	c.mu.RUnlock()

	d, err := c.host.Open(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.docs[path] = d
	c.mu.Unlock()

	return d, nil
}

// Put caches d under path, replacing any previous entry.
func (c *DocumentStore) Put(path string, d *memdoc.Document) {
	c.mu.Lock()
	c.docs[path] = d
	c.mu.Unlock()
}

// Evict drops the cached document for path. Unsaved changes are lost.
func (c *DocumentStore) Evict(path string) {
	c.mu.Lock()
	delete(c.docs, path)
	c.mu.Unlock()
}

// Clear drops every cached document.
func (c *DocumentStore) Clear() {
	c.mu.Lock()
	c.docs = make(map[string]*memdoc.Document)
	c.mu.Unlock()
}

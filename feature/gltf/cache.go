package gltf

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CachedDocument is one parsed document held for reuse across report
// requests.
type CachedDocument struct {
	// Importer is the parsed document.
	Importer *Importer

	// Built is the timestamp when the document was parsed.
	Built time.Time

	// TTL is the time-to-live for this entry.
	TTL time.Duration
}

// IsExpired returns true if this entry has expired based on its TTL.
func (c *CachedDocument) IsExpired() bool {
	if c.TTL == 0 {
		return true // No caching
	}
	return time.Since(c.Built) > c.TTL
}

// documentStore holds all parsed documents keyed by source key.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*CachedDocument
	sf   singleflight.Group
}

// globalDocumentStore is the singleton store for all document lookups.
var globalDocumentStore = &documentStore{
	docs: make(map[string]*CachedDocument),
}

// GetOrParse retrieves the parsed document for the given key from the
// store, or fetches and parses it if it doesn't exist or has expired.
// Uses singleflight to prevent fetch stampedes.
func GetOrParse(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) ([]byte, error)) (*Importer, error) {
	// Fast path: check if the document exists and is fresh
	globalDocumentStore.mu.RLock()
	doc, exists := globalDocumentStore.docs[key]
	globalDocumentStore.mu.RUnlock()

	if exists && !doc.IsExpired() {
		return doc.Importer, nil
	}

	// Slow path: fetch and parse using singleflight to prevent stampedes
	result, err, _ := globalDocumentStore.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		globalDocumentStore.mu.RLock()
		doc, exists := globalDocumentStore.docs[key]
		globalDocumentStore.mu.RUnlock()

		if exists && !doc.IsExpired() {
			return doc.Importer, nil
		}

		data, err := fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch document %s: %w", key, err)
		}
		imp, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse document %s: %w", key, err)
		}

		// Store in cache
		globalDocumentStore.mu.Lock()
		globalDocumentStore.docs[key] = &CachedDocument{
			Importer: imp,
			Built:    time.Now(),
			TTL:      ttl,
		}
		globalDocumentStore.mu.Unlock()

		return imp, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*Importer), nil
}

// InvalidateDocument removes the entry for the given key from the store.
// This is useful for testing or forcing a re-fetch.
func InvalidateDocument(key string) {
	globalDocumentStore.mu.Lock()
	delete(globalDocumentStore.docs, key)
	globalDocumentStore.mu.Unlock()
}

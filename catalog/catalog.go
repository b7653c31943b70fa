// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"sync"
	"time"

	"github.com/skillmesh/skillmesh-core/manifest"
	"github.com/skillmesh/skillmesh-core/topic"
)

// Catalog is an in-memory store of published skills keyed by topic address.
//
// It is safe for concurrent use. Writes for the same address are serialized
// (last writer wins, which is benign because identical addresses carry
// identical payloads), and readers never observe a partially-written record.
// No method performs blocking I/O, so the catalog is safe to touch from
// latency-sensitive request paths.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]*manifest.PublishedSkill
	order   []string

	// now is injectable for deterministic timestamps in tests.
	now func() time.Time
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock overrides the time source used for PublishedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		entries: make(map[string]*manifest.PublishedSkill),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upsert validates the manifest, derives its topic address, and stores (or
// overwrites) the record at that address. Re-publishing the same
// (name, version) collapses to the same slot and does not grow the catalog.
//
// On validation failure it returns an *InvalidManifestError carrying the
// full violation list; nothing is written.
func (c *Catalog) Upsert(m *manifest.SkillManifest, publisher string) (*manifest.PublishedSkill, error) {
	result := manifest.Validate(m)
	if !result.Valid {
		return nil, &InvalidManifestError{Violations: result.Errors}
	}

	record := &manifest.PublishedSkill{
		Manifest:    m.Clone(),
		TopicID:     topic.DeriveAddress(m.Name, m.Version),
		Publisher:   publisher,
		PublishedAt: c.now().UTC(),
		Status:      manifest.StatusPublished,
	}

	c.mu.Lock()
	if _, exists := c.entries[record.TopicID]; !exists {
		c.order = append(c.order, record.TopicID)
	}
	c.entries[record.TopicID] = record
	c.mu.Unlock()

	return record, nil
}

// GetByAddress returns the record stored at the given topic address.
// Unknown addresses, including syntactically well-formed but unpublished
// ones, return (nil, false) rather than an error.
func (c *Catalog) GetByAddress(topicID string) (*manifest.PublishedSkill, bool) {
	c.mu.RLock()
	record, ok := c.entries[topicID]
	c.mu.RUnlock()
	return record, ok
}

// ListAll returns every stored record in insertion order
// (first published first). The result is stable across repeated calls
// with no intervening writes.
func (c *Catalog) ListAll() []*manifest.PublishedSkill {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*manifest.PublishedSkill, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id])
	}
	return out
}

// Count returns the number of distinct addresses currently stored.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

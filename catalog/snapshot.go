// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/skillmesh/skillmesh-core/manifest"
	"github.com/skillmesh/skillmesh-core/topic"
)

// snapshotVersion is the schema version of the snapshot document.
const snapshotVersion = 1

// snapshot is the on-disk representation of a catalog.
type snapshot struct {
	Version int                       `json:"version"`
	Skills  []*manifest.PublishedSkill `json:"skills"`
}

// SnapshotPath returns the catalog snapshot path within the given data home
// directory. This is the injectable, testable form. For the standard XDG
// location, use DefaultSnapshotPath.
func SnapshotPath(dataHome string) string {
	return filepath.Join(dataHome, "skillmesh", "catalog.json")
}

// DefaultSnapshotPath returns the default snapshot path using XDG base
// directory conventions.
func DefaultSnapshotPath() string {
	return SnapshotPath(xdg.DataHome)
}

// WriteSnapshot serializes the catalog to w in insertion order.
// The catalog itself never persists implicitly; snapshots are always an
// explicit caller decision.
func (c *Catalog) WriteSnapshot(w io.Writer) error {
	snap := snapshot{
		Version: snapshotVersion,
		Skills:  c.ListAll(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&snap); err != nil {
		return fmt.Errorf("writing catalog snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads records from a snapshot produced by WriteSnapshot,
// replaying them into the catalog in their original insertion order.
// Records whose stored topic id disagrees with the address derived from
// their manifest are rejected; a snapshot is not a way around addressing.
func (c *Catalog) ReadSnapshot(r io.Reader) error {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("reading catalog snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("unsupported catalog snapshot version %d", snap.Version)
	}

	for i, record := range snap.Skills {
		if record == nil {
			return fmt.Errorf("catalog snapshot entry %d is null", i)
		}
		if result := manifest.Validate(&record.Manifest); !result.Valid {
			return fmt.Errorf("catalog snapshot entry %d: %w", i, &InvalidManifestError{Violations: result.Errors})
		}
		derived := topic.DeriveAddress(record.Manifest.Name, record.Manifest.Version)
		if derived != record.TopicID {
			return fmt.Errorf("catalog snapshot entry %d: topic id %s does not match derived address %s",
				i, record.TopicID, derived)
		}

		restored := &manifest.PublishedSkill{
			Manifest:    record.Manifest.Clone(),
			TopicID:     record.TopicID,
			Publisher:   record.Publisher,
			PublishedAt: record.PublishedAt,
			Status:      manifest.StatusPublished,
		}

		c.mu.Lock()
		if _, exists := c.entries[restored.TopicID]; !exists {
			c.order = append(c.order, restored.TopicID)
		}
		c.entries[restored.TopicID] = restored
		c.mu.Unlock()
	}

	return nil
}

// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"strings"

	"github.com/skillmesh/skillmesh-core/manifest"
)

// Lister is the catalog view the engine reads. *catalog.Catalog satisfies it.
type Lister interface {
	// ListAll returns every stored record in insertion order.
	ListAll() []*manifest.PublishedSkill
}

// Result is the discovery response envelope.
type Result struct {
	// Skills holds the matching records in catalog insertion order.
	Skills []*manifest.PublishedSkill `json:"skills"`
	// Total equals len(Skills); there is no separate approximate count.
	Total int `json:"total"`
	// Query echoes the query that produced this result.
	Query string `json:"query"`
}

// Engine evaluates free-text queries against a catalog.
type Engine struct {
	catalog Lister
}

// NewEngine creates a discovery engine reading from the given catalog.
func NewEngine(catalog Lister) *Engine {
	return &Engine{catalog: catalog}
}

// Discover returns every published skill matching the query, in catalog
// insertion order. Matching is case-insensitive substring search over the
// manifest name, manifest tags, and each contained skill's category and
// name. There is no relevance ranking.
//
// An empty query matches every published skill, consistent with substring
// semantics: the empty string is a substring of everything.
func (e *Engine) Discover(query string) *Result {
	q := strings.ToLower(query)

	matches := make([]*manifest.PublishedSkill, 0)
	for _, record := range e.catalog.ListAll() {
		if recordMatches(record, q) {
			matches = append(matches, record)
		}
	}

	return &Result{
		Skills: matches,
		Total:  len(matches),
		Query:  query,
	}
}

// recordMatches reports whether any searchable field of the record contains
// the lowercased query.
func recordMatches(record *manifest.PublishedSkill, q string) bool {
	m := &record.Manifest

	if strings.Contains(strings.ToLower(m.Name), q) {
		return true
	}
	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for i := range m.Skills {
		s := &m.Skills[i]
		if strings.Contains(strings.ToLower(s.Category), q) {
			return true
		}
		if strings.Contains(strings.ToLower(s.Name), q) {
			return true
		}
	}
	return false
}

// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest contains the core type definitions for the skillmesh registry.
package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Updates to the manifest shape should be reflected in the JSON schema file
// located at manifest/data/skill-manifest.schema.json.
// The schema is used for wire-boundary validation and documentation purposes.

// PublishStatus is the lifecycle state of a catalog record.
type PublishStatus string

const (
	// StatusPublished is the only status produced by the catalog itself.
	// External systems layered on top may introduce additional states
	// (e.g. pending review, revoked), but never through this library.
	StatusPublished PublishStatus = "published"
)

// Pricing describes the cost of invoking a skill.
type Pricing struct {
	// Amount is the price per unit.
	Amount float64 `json:"amount" yaml:"amount"`
	// Token is the settlement token symbol (e.g. "HBAR", "USDC").
	Token string `json:"token" yaml:"token"`
	// Unit is what a single payment buys (e.g. "call", "minute").
	Unit string `json:"unit" yaml:"unit"`
}

// SkillDefinition describes one capability offered by a publisher.
type SkillDefinition struct {
	// Name is the identifier for the skill within its manifest.
	Name string `json:"name" yaml:"name"`
	// Description is a human-readable description of what the skill does.
	Description string `json:"description" yaml:"description"`
	// Category is a coarse classification used for discovery (e.g. "research").
	Category string `json:"category" yaml:"category"`
	// Tags are free-form labels used for discovery and filtering.
	Tags []string `json:"tags" yaml:"tags"`
	// InputSchema is a free-form structured schema describing the skill input.
	InputSchema map[string]any `json:"input_schema" yaml:"input_schema"`
	// OutputSchema is a free-form structured schema describing the skill output.
	OutputSchema map[string]any `json:"output_schema" yaml:"output_schema"`
	// Pricing optionally overrides the manifest-level default pricing.
	Pricing *Pricing `json:"pricing,omitempty" yaml:"pricing,omitempty"`
}

// SkillManifest is a versioned bundle of skills published by one author.
type SkillManifest struct {
	// Name is the catalog-facing identity of the manifest.
	Name string `json:"name" yaml:"name"`
	// Version must satisfy semantic-version syntax MAJOR.MINOR.PATCH[-prerelease][+build].
	Version string `json:"version" yaml:"version"`
	// Description is a human-readable description of the bundle.
	Description string `json:"description" yaml:"description"`
	// Author identifies the publisher of the manifest.
	Author string `json:"author" yaml:"author"`
	// License is the SPDX license identifier of the bundle.
	License string `json:"license" yaml:"license"`
	// Skills is the ordered list of capabilities in this bundle.
	// A valid manifest carries at least one entry.
	Skills []SkillDefinition `json:"skills" yaml:"skills"`
	// Tags are manifest-level labels used for discovery.
	Tags []string `json:"tags" yaml:"tags"`
	// Pricing is the optional manifest-level default pricing.
	Pricing *Pricing `json:"pricing,omitempty" yaml:"pricing,omitempty"`
}

// PublishedSkill is the catalog's stored record for one published manifest version.
// Once stored for a given address the record is immutable; re-publishing the
// same (name, version) overwrites the slot rather than appending.
type PublishedSkill struct {
	// Manifest is the published manifest. The record exclusively owns it.
	Manifest SkillManifest `json:"manifest" yaml:"manifest"`
	// TopicID is the deterministic content-derived address, format "0.0.<n>".
	TopicID string `json:"topic_id" yaml:"topic_id"`
	// Publisher is the identity of the account that performed the publish.
	Publisher string `json:"publisher" yaml:"publisher"`
	// PublishedAt is the time the record was stored.
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`
	// Status is always StatusPublished for records produced by this library.
	Status PublishStatus `json:"status" yaml:"status"`
}

// Clone returns a deep copy of the manifest. The catalog stores clones so
// that callers can keep mutating their own copy after publishing.
func (m *SkillManifest) Clone() SkillManifest {
	if m == nil {
		return SkillManifest{}
	}

	out := *m
	out.Tags = cloneStrings(m.Tags)
	out.Pricing = clonePricing(m.Pricing)

	if m.Skills != nil {
		out.Skills = make([]SkillDefinition, len(m.Skills))
		for i := range m.Skills {
			out.Skills[i] = m.Skills[i].clone()
		}
	}

	return out
}

func (s *SkillDefinition) clone() SkillDefinition {
	out := *s
	out.Tags = cloneStrings(s.Tags)
	out.InputSchema = cloneSchema(s.InputSchema)
	out.OutputSchema = cloneSchema(s.OutputSchema)
	out.Pricing = clonePricing(s.Pricing)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func clonePricing(in *Pricing) *Pricing {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}

// cloneSchema deep-copies a free-form schema object via JSON round-trip.
// Schemas are arbitrary nested maps, so a structural copy is the only safe option.
func cloneSchema(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		// Schemas come from JSON/YAML decoding, so they are always marshalable.
		// Fall back to a shallow copy rather than dropping the schema.
		out := make(map[string]any, len(in))
		for k, v := range in {
			out[k] = v
		}
		return out
	}
	out := make(map[string]any)
	if err := json.Unmarshal(data, &out); err != nil {
		return in
	}
	return out
}

// ParseJSON decodes a SkillManifest from JSON bytes.
// It only checks that the document decodes; use Validate for the semantic rules.
func ParseJSON(data []byte) (*SkillManifest, error) {
	var m SkillManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest JSON: %w", err)
	}
	return &m, nil
}

// ParseYAML decodes a SkillManifest from YAML bytes.
// It only checks that the document decodes; use Validate for the semantic rules.
func ParseYAML(data []byte) (*SkillManifest, error) {
	var m SkillManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest YAML: %w", err)
	}
	return &m, nil
}

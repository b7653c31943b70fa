// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

// DefaultLicense is the license assigned to manifests built from a bare
// skill list when the caller does not provide one.
const DefaultLicense = "MIT"

// AgentSkill is the simpler skill representation used by agent runtimes.
// It is convertible one-way into a SkillDefinition; it is not a catalog
// entity itself.
type AgentSkill struct {
	// Name is the identifier of the capability.
	Name string `json:"name" yaml:"name"`
	// Description is a human-readable description of the capability.
	Description string `json:"description" yaml:"description"`
	// Category is a coarse classification used for discovery.
	Category string `json:"category" yaml:"category"`
	// Tags are free-form labels.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	// InputSchema describes the capability input.
	InputSchema map[string]any `json:"input_schema,omitempty" yaml:"input_schema,omitempty"`
	// OutputSchema describes the capability output.
	OutputSchema map[string]any `json:"output_schema,omitempty" yaml:"output_schema,omitempty"`
}

// ManifestOption configures a manifest built by FromAgentSkills.
type ManifestOption func(*SkillManifest)

// WithAuthor sets the manifest author.
func WithAuthor(author string) ManifestOption {
	return func(m *SkillManifest) {
		m.Author = author
	}
}

// WithLicense overrides the default license.
func WithLicense(license string) ManifestOption {
	return func(m *SkillManifest) {
		m.License = license
	}
}

// WithTags sets the manifest-level discovery tags.
func WithTags(tags ...string) ManifestOption {
	return func(m *SkillManifest) {
		m.Tags = tags
	}
}

// WithPricing sets the manifest-level default pricing.
func WithPricing(p Pricing) ManifestOption {
	return func(m *SkillManifest) {
		m.Pricing = &p
	}
}

// FromAgentSkills builds a SkillManifest from a list of agent skills.
// The license defaults to DefaultLicense unless WithLicense is given.
// Absent schemas become empty objects so the resulting manifest passes
// validation without the caller having to care about schema plumbing.
func FromAgentSkills(name, version, description string, skills []AgentSkill, opts ...ManifestOption) *SkillManifest {
	m := &SkillManifest{
		Name:        name,
		Version:     version,
		Description: description,
		License:     DefaultLicense,
		Skills:      make([]SkillDefinition, 0, len(skills)),
		Tags:        []string{},
	}

	for _, s := range skills {
		def := SkillDefinition{
			Name:         s.Name,
			Description:  s.Description,
			Category:     s.Category,
			Tags:         cloneStrings(s.Tags),
			InputSchema:  cloneSchema(s.InputSchema),
			OutputSchema: cloneSchema(s.OutputSchema),
		}
		if def.Tags == nil {
			def.Tags = []string{}
		}
		if def.InputSchema == nil {
			def.InputSchema = map[string]any{}
		}
		if def.OutputSchema == nil {
			def.OutputSchema = map[string]any{}
		}
		m.Skills = append(m.Skills, def)
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package manifest defines the skill manifest data model and its validation.

A SkillManifest is a versioned, named bundle describing one or more skills
offered by a publisher. Manifests are what the catalog stores, what the
broker mirrors, and what on-chain resolution reconstructs.

# Validation

Validation comes in two layers:

	// Rule validation: the stable, caller-facing contract.
	// Collects every violation; never errors on malformed input.
	result := manifest.Validate(m)
	if !result.Valid {
	    for _, msg := range result.Errors { ... }
	}

	// Schema validation: wire-boundary shape checking of raw JSON.
	err := manifest.ValidateManifestBytes(data)

Rule validation is what the catalog consults before accepting a publish.
Schema validation is for layers that receive untrusted bytes and want to
reject malformed documents before decoding.

# Building manifests

Agent runtimes that carry the simpler AgentSkill representation can build a
publishable manifest without assembling the full structure by hand:

	m := manifest.FromAgentSkills("my-bundle", "1.0.0", "does things",
	    skills, manifest.WithAuthor("0.0.12345"))
*/
package manifest

// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package discovery implements keyword and expression search over the catalog.

Free-text discovery is case-insensitive substring matching on the manifest
name, manifest tags, and each skill's category and name:

	engine := discovery.NewEngine(cat)
	result := engine.Discover("translation")

An empty query matches every published skill; callers that want an explicit
"list everything" should read the catalog directly instead.

For structured queries beyond substrings, compiled CEL filters evaluate a
boolean expression per record:

	f, err := discovery.NewFilter(`"nlp" in skill.tags`)
	result, err := engine.DiscoverFilter(f)

Both paths return results in catalog insertion order with no relevance
ranking, and neither performs any I/O.
*/
package discovery

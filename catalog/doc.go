// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package catalog provides the in-memory store of published skill manifests,
keyed by deterministic topic address.

A publish passes through rule validation, address derivation, and then an
upsert: re-publishing the same (name, version) overwrites the existing slot
instead of appending a second record. Lookups by address are O(1) and absence
is reported as a boolean, not an error. Iteration is in insertion order.

	cat := catalog.New()
	record, err := cat.Upsert(m, "0.0.12345")
	if err != nil {
	    var invalid *catalog.InvalidManifestError
	    if errors.As(err, &invalid) {
	        // invalid.Violations holds the full list
	    }
	}

The catalog lives and dies with the process. For warm restarts, WriteSnapshot
and ReadSnapshot serialize the catalog explicitly; nothing is ever persisted
behind the caller's back.
*/
package catalog

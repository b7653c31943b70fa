// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks

import (
	"context"

	"github.com/skillmesh/skillmesh-core/manifest"
)

// Resolver looks up a skill manifest that was published directly to the
// ledger, independent of the in-memory catalog.
//
// Implementations are expected to be network-bound, with their own latency
// and failure modes; the registry never assumes a resolve succeeds and never
// holds a catalog lock while one is in flight.
type Resolver interface {
	// Resolve fetches the manifest anchored at the given topic address and
	// sequence number. A missing manifest is (nil, false, nil); absence is
	// not a fault. A non-nil error means the lookup itself failed (e.g.
	// transport failure) and is distinct from "not found".
	Resolve(ctx context.Context, address string, sequenceNumber uint64) (*manifest.SkillManifest, bool, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, address string, sequenceNumber uint64) (*manifest.SkillManifest, bool, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(ctx context.Context, address string, sequenceNumber uint64) (*manifest.SkillManifest, bool, error) {
	return f(ctx, address, sequenceNumber)
}

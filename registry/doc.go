// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package registry wires the catalog, discovery engine, broker gateway and
ledger resolver into one service facade.

A Service is constructed explicitly and owns its state; there is no implicit
package-level registry. The broker and ledger are optional collaborators:

	svc := registry.NewService(
	    registry.WithGateway(gw),
	    registry.WithResolver(resolver),
	)

	result, err := svc.Publish(ctx, m, "0.0.12345")
	found := svc.Discover(ctx, "translation")

Publishes always land in the local catalog first; mirroring to the broker
is best-effort. Discovery merges broker results when the broker answers and
degrades to local-only when it does not, with the response labeling which
happened. A broker outage is never surfaced to the caller as a failure when
a local answer exists.
*/
package registry

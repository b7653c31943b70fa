// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package ledger defines the on-chain resolution boundary.

Skill manifests can be anchored on an external immutable ledger under the
same topic addresses the catalog derives. This package holds only the
contract the registry consumes; actual ledger clients (and their transport,
credentials, retry policy) live outside this module and are injected.

The one deliberate subtlety in the contract is the three-way return:
a manifest that is simply not on the ledger is (nil, false, nil), while a
lookup that could not be completed is a real error. Callers must be able to
tell "not found" from "lookup failed".
*/
package ledger

// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"strings"
)

// InvalidManifestError is returned by Upsert when the manifest fails rule
// validation. The full violation list remains inspectable by the caller.
type InvalidManifestError struct {
	// Violations lists every rule the manifest violated, in rule order.
	Violations []string
}

// Error implements the error interface.
func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("Invalid skill manifest: %s", strings.Join(e.Violations, "; "))
}
